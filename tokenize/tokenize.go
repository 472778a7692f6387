// Package tokenize splits chat text into literal runs and inline icon tokens.
package tokenize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sonnes/rangoli/core"
)

// IconPattern matches one icon token such as <TX1A> or <txc00000000AB12>.
var IconPattern = regexp.MustCompile(`(?i)<TX[C]?[0-9A-F]+>`)

var iconExactRE = regexp.MustCompile(`(?i)^<TX[C]?[0-9A-F]+>$`)

// MaxIconRun is the longest run of back-to-back icons the chat client is
// known to display reliably.
const MaxIconRun = 3

// Tokenize splits text into segments in input order. Icon tokens become
// single icon segments; everything between them becomes literal segments.
// Joining the contents reproduces text exactly. Empty text yields nil.
func Tokenize(text string) []core.Segment {
	if text == "" {
		return nil
	}

	var segs []core.Segment
	pos := 0
	for _, loc := range IconPattern.FindAllStringIndex(text, -1) {
		if loc[0] > pos {
			segs = append(segs, core.Segment{Content: text[pos:loc[0]]})
		}
		segs = append(segs, core.Segment{Content: text[loc[0]:loc[1]], IsIcon: true})
		pos = loc[1]
	}
	if pos < len(text) {
		segs = append(segs, core.Segment{Content: text[pos:]})
	}
	return segs
}

// IsIcon reports whether s is exactly one icon token.
func IsIcon(s string) bool {
	return iconExactRE.MatchString(s)
}

// Stats describes the icon content of a segment list.
type Stats struct {
	Icons        int
	LiteralChars int
	// LongestRun is the most icons seen back to back. Whitespace-only literal
	// segments between icons do not break a run.
	LongestRun int
}

// Analyze counts icons and literal characters and measures the longest icon run.
func Analyze(segs []core.Segment) Stats {
	var st Stats
	run := 0
	for _, s := range segs {
		if s.IsIcon {
			st.Icons++
			run++
			st.LongestRun = max(st.LongestRun, run)
			continue
		}
		st.LiteralChars += utf8.RuneCountInString(s.Content)
		if strings.TrimSpace(s.Content) != "" {
			run = 0
		}
	}
	return st
}

// Join concatenates segment contents.
func Join(segs []core.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Content)
	}
	return b.String()
}
