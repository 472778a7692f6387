// Package terminal renders a result as a truecolor preview followed by its
// chat-ready chunks.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/gradient"
	"github.com/sonnes/rangoli/render"
)

const defaultWidth = 100

// Renderer pretty-prints a result to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the preview, gradient summary, stats and chunks to w.
func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	width := r.termWidth()

	writeHeader(w, res)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  "+preview(render.Preview(res)))
	fmt.Fprintln(w)
	writeStats(w, res)

	for i, c := range res.Chunks {
		writeSeparator(w, width)
		label := fmt.Sprintf("%d/%d", i+1, len(res.Chunks))
		fmt.Fprintln(w, styleChunkNo.Render(label)+"  "+styleMeta.Render(formatNumber(len([]rune(c)))+" chars"))
		fmt.Fprintln(w, c)
	}

	var notes []string
	if res.Truncated {
		notes = append(notes, "output was truncated to fit the chunk limit")
	}
	for _, c := range gradient.New(res.Style, 255, 255).Stops() {
		if !core.Readable(c) {
			notes = append(notes, fmt.Sprintf("#%s has low contrast on a dark chat background", c.RGBHex()))
		}
	}
	if len(notes) > 0 {
		fmt.Fprintln(w)
		for _, n := range notes {
			fmt.Fprintln(w, styleWarn.Render("! "+n))
		}
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeHeader renders the stops as swatches with the mode and alpha range.
func writeHeader(w io.Writer, res *core.Result) {
	g := gradient.New(res.Style, int(res.StartAlpha), int(res.EndAlpha))

	var swatches []string
	for _, c := range g.Stops() {
		swatches = append(swatches, lipgloss.NewStyle().Foreground(lipgloss.Color("#"+c.RGBHex())).Render("██"))
	}
	row1 := styleTitle.Render(string(res.Output))
	if len(swatches) > 0 {
		row1 += "  " + strings.Join(swatches, "")
	}
	fmt.Fprintln(w, row1)

	parts := []string{string(g.Mode())}
	if res.Output == core.ModeSolid {
		parts = append(parts, "#"+strings.TrimPrefix(res.SolidColor, "#"),
			fmt.Sprintf("alpha %d%%", core.AlphaToPercent(res.SolidAlpha)))
	} else {
		parts = append(parts, fmt.Sprintf("alpha %d%% → %d%%",
			core.AlphaToPercent(res.StartAlpha), core.AlphaToPercent(res.EndAlpha)))
	}
	if !g.Valid() {
		parts = append(parts, "fallback color")
	}
	fmt.Fprintln(w, styleMeta.Render(strings.Join(parts, "  ")))
}

// writeStats renders counters in two rows: values then labels.
func writeStats(w io.Writer, res *core.Result) {
	type stat struct {
		value int
		label string
	}
	stats := []stat{
		{res.Stats.LiteralChars, "CHARS"},
		{res.Stats.Icons, "ICONS"},
		{res.Stats.FormattedLength, "MARKUP"},
		{len(res.Chunks), "CHUNKS"},
	}

	var values, labels []string
	for _, s := range stats {
		formatted := formatNumber(s.value)
		colWidth := max(len(formatted), len(s.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, s.label))
	}

	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

// preview renders each cell in its color as it would appear over the chat
// background.
func preview(cells []render.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Icon {
			b.WriteString(styleIcon.Render(c.Text))
			continue
		}
		fg := lipgloss.Color(composite(c.Color))
		b.WriteString(lipgloss.NewStyle().Foreground(fg).Render(c.Text))
	}
	return b.String()
}

// composite blends c over core.ChatBackground by its alpha and returns an
// opaque "#rrggbb" string.
func composite(c core.Color) string {
	bg := toColorful(core.ChatBackground)
	return bg.BlendRgb(toColorful(c), float64(c.A)/255).Clamped().Hex()
}

func toColorful(c core.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
