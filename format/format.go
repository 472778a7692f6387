// Package format assigns gradient colors to tokenized text and renders the
// result as chat markup.
//
// Markup grammar: a color tag is "<FG" + RRGGBBAA + ">" and colors every
// following character until the next tag. There is no closing tag. Icon tokens
// are copied through verbatim and never colored.
package format

import (
	"strings"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/gradient"
)

// ColorTagPrefix opens every color tag.
const ColorTagPrefix = "<FG"

// ColorTag returns the markup tag for c.
func ColorTag(c core.Color) string {
	return ColorTagPrefix + c.Hex() + ">"
}

// ApplyGradient returns one ColoredChar per literal character and one per
// icon token. Gradient positions run over literal characters only, so icons
// neither take a color nor shift the positions of the text around them.
func ApplyGradient(segs []core.Segment, style core.Style, startAlpha, endAlpha int) []core.ColoredChar {
	total := 0
	for _, s := range segs {
		if !s.IsIcon {
			total += len([]rune(s.Content))
		}
	}

	var g *gradient.Gradient
	if total > 0 {
		g = gradient.New(style, startAlpha, endAlpha)
	}

	out := make([]core.ColoredChar, 0, total+len(segs))
	idx := 0
	for _, s := range segs {
		if s.IsIcon {
			out = append(out, core.ColoredChar{Char: s.Content})
			continue
		}
		for _, r := range s.Content {
			out = append(out, core.ColoredChar{
				Char:  string(r),
				Color: g.At(position(idx, total)).Hex(),
			})
			idx++
		}
	}
	return out
}

// position maps the i-th of n literal characters onto [0,1]. A single
// character sits at 0.
func position(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Render turns colored characters into markup.
//
// In gradient mode every literal character gets its own tag. In solid mode
// solidColor and solidAlpha are packed once and each run of literal
// characters between icons shares a single tag. An invalid solidColor renders
// as core.FallbackColor.
func Render(chars []core.ColoredChar, mode core.OutputMode, solidColor string, solidAlpha int) string {
	var b strings.Builder

	if mode != core.ModeSolid {
		for _, c := range chars {
			if c.IsIcon() {
				b.WriteString(c.Char)
				continue
			}
			b.WriteString(ColorTagPrefix)
			b.WriteString(c.Color)
			b.WriteByte('>')
			b.WriteString(c.Char)
		}
		return b.String()
	}

	solid, err := core.ParseHex(solidColor)
	if err != nil {
		solid = core.FallbackColor
	} else {
		solid = solid.WithAlpha(core.ClampAlpha(solidAlpha))
	}
	tag := ColorTag(solid)

	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		b.WriteString(tag)
		b.WriteString(run.String())
		run.Reset()
	}
	for _, c := range chars {
		if c.IsIcon() {
			flush()
			b.WriteString(c.Char)
			continue
		}
		run.WriteString(c.Char)
	}
	flush()
	return b.String()
}
