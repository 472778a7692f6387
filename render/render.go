// Package render defines the interface for writing a generated result in
// various output formats.
package render

import (
	"io"
	"strconv"

	"github.com/sonnes/rangoli/core"
)

// Renderer writes a result to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, r *core.Result) error
}

// Cell is one unit of a visual preview: a literal character with the color
// it will show in, or an icon token shown as-is.
type Cell struct {
	Text  string
	Color core.Color
	Icon  bool
}

// Preview returns the cells a chat client would display for r. In solid
// mode every literal character takes the solid color.
func Preview(r *core.Result) []Cell {
	var solid core.Color
	if r.Output == core.ModeSolid {
		c, err := core.ParseHex(r.SolidColor)
		if err != nil {
			solid = core.FallbackColor
		} else {
			solid = c.WithAlpha(r.SolidAlpha)
		}
	}

	cells := make([]Cell, 0, len(r.Chars))
	for _, ch := range r.Chars {
		if ch.IsIcon() {
			cells = append(cells, Cell{Text: ch.Char, Icon: true})
			continue
		}
		c := solid
		if r.Output != core.ModeSolid {
			c = parsePacked(ch.Color)
		}
		cells = append(cells, Cell{Text: ch.Char, Color: c})
	}
	return cells
}

// parsePacked decodes an RRGGBBAA string. Malformed input yields the
// fallback color.
func parsePacked(s string) core.Color {
	if len(s) != 8 {
		return core.FallbackColor
	}
	c, err := core.ParseHex(s[:6])
	if err != nil {
		return core.FallbackColor
	}
	a, err := strconv.ParseUint(s[6:], 16, 8)
	if err != nil {
		return core.FallbackColor
	}
	return c.WithAlpha(uint8(a))
}
