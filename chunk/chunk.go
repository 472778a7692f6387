// Package chunk splits formatted chat markup into messages that fit the chat
// client's length limit without ever cutting through a color or icon tag.
package chunk

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultMaxLen is the chat client's per-message limit.
	DefaultMaxLen = 200
	// DefaultMaxChunks is how many messages are kept; the rest is dropped.
	DefaultMaxChunks = 4

	// breakWindow bounds how far back from the buffer end a space is searched for.
	breakWindow = 20
	// breakFloor is the earliest fraction of the buffer a space may split at.
	breakFloor = 0.8
)

// TagPattern matches a color tag or an icon tag.
var TagPattern = regexp.MustCompile(`<FG[0-9A-Fa-f]{8}>|(?i:<TX[C]?[0-9A-F]+>)`)

// Result is the outcome of Split. Truncated is true when input remained after
// the last allowed chunk was produced.
type Result struct {
	Chunks    []string `json:"chunks"`
	Truncated bool     `json:"truncated"`
}

// unit is an indivisible piece of the input: a whole tag or one rune.
type unit struct {
	text  string
	width int
	tag   bool
}

// Split divides formatted into at most maxChunks chunks of at most maxLen
// runes each. Tags are never split. When a chunk fills up, a space within the
// last few characters is preferred as the break point and is dropped;
// otherwise the chunk is cut hard. Non-positive limits select the defaults.
func Split(formatted string, maxLen, maxChunks int) Result {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}
	if maxChunks <= 0 {
		maxChunks = DefaultMaxChunks
	}
	if formatted == "" {
		return Result{}
	}
	if utf8.RuneCountInString(formatted) <= maxLen {
		return Result{Chunks: []string{formatted}}
	}

	units := split(formatted)
	var (
		res    Result
		buf    []unit
		bufLen int
	)
	flush := func(us []unit) {
		res.Chunks = append(res.Chunks, join(us))
	}

	i := 0
	for i < len(units) {
		if len(res.Chunks) >= maxChunks {
			res.Truncated = true
			break
		}

		u := units[i]
		if u.tag {
			if bufLen > 0 && bufLen+u.width > maxLen {
				flush(buf)
				buf, bufLen = nil, 0
				continue
			}
			buf = append(buf, u)
			bufLen += u.width
			i++
			continue
		}

		if bufLen+u.width <= maxLen {
			buf = append(buf, u)
			bufLen += u.width
			i++
			continue
		}

		// Buffer is full. Prefer a space near the end; otherwise cut here.
		if k := breakPoint(buf, bufLen); k > 0 {
			flush(buf[:k])
			rest := append([]unit(nil), buf[k+1:]...)
			buf, bufLen = rest, widthOf(rest)
			continue
		}
		flush(buf)
		buf, bufLen = nil, 0
	}

	if bufLen > 0 {
		if len(res.Chunks) < maxChunks {
			flush(buf)
		} else {
			res.Truncated = true
		}
	}
	return res
}

// breakPoint returns the index of a space unit in buf usable as a word
// break, or -1. The space must lie within the last breakWindow runes and at
// or beyond breakFloor of the buffer.
func breakPoint(buf []unit, bufLen int) int {
	floor := int(float64(bufLen) * breakFloor)
	offset := bufLen
	for k := len(buf) - 1; k >= 0; k-- {
		offset -= buf[k].width
		if bufLen-offset > breakWindow || offset < floor {
			return -1
		}
		if !buf[k].tag && buf[k].text == " " {
			return k
		}
	}
	return -1
}

// split breaks s into tags and single runes.
func split(s string) []unit {
	units := make([]unit, 0, len(s))
	pos := 0
	addRunes := func(text string) {
		for _, r := range text {
			units = append(units, unit{text: string(r), width: 1})
		}
	}
	for _, loc := range TagPattern.FindAllStringIndex(s, -1) {
		addRunes(s[pos:loc[0]])
		tag := s[loc[0]:loc[1]]
		units = append(units, unit{text: tag, width: utf8.RuneCountInString(tag), tag: true})
		pos = loc[1]
	}
	addRunes(s[pos:])
	return units
}

func join(us []unit) string {
	n := 0
	for _, u := range us {
		n += len(u.text)
	}
	b := make([]byte, 0, n)
	for _, u := range us {
		b = append(b, u.text...)
	}
	return string(b)
}

func widthOf(us []unit) int {
	n := 0
	for _, u := range us {
		n += u.width
	}
	return n
}

// Span locates one tag in a formatted string, as byte offsets.
type Span struct {
	Start, End int
}

// Tags returns the byte spans of every color and icon tag in s.
func Tags(s string) []Span {
	locs := TagPattern.FindAllStringIndex(s, -1)
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// Intact reports whether chunks appear in order within formatted with no
// chunk starting or ending inside a tag.
func Intact(formatted string, chunks []string) bool {
	spans := Tags(formatted)
	inside := func(off int) bool {
		for _, sp := range spans {
			if off > sp.Start && off < sp.End {
				return true
			}
		}
		return false
	}

	cursor := 0
	for _, c := range chunks {
		idx := strings.Index(formatted[cursor:], c)
		if idx < 0 {
			return false
		}
		start := cursor + idx
		end := start + len(c)
		if inside(start) || inside(end) {
			return false
		}
		cursor = end
	}
	return true
}
