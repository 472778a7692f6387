package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, req pipeline.Request) string {
	t.Helper()
	r := &Renderer{Width: 80}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, pipeline.Run(req)))
	return ansi.Strip(buf.String())
}

func TestRenderPreviewAndChunks(t *testing.T) {
	out := renderString(t, pipeline.Request{
		Text:       "Hello<TX1A>",
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   128,
	})

	assert.Contains(t, out, "Hello<TX1A>", "preview keeps literal text and icons in order")
	assert.Contains(t, out, "gradient")
	assert.Contains(t, out, "smooth")
	assert.Contains(t, out, "alpha 100% → 50%")
	assert.Contains(t, out, "1/1")
	assert.Contains(t, out, "<FGFF0000FF>H")
	assert.Contains(t, out, "CHARS")
	assert.Contains(t, out, "ICONS")
	assert.NotContains(t, out, "truncated")
}

func TestRenderSolid(t *testing.T) {
	out := renderString(t, pipeline.Request{
		Text:       "Hi",
		Style:      core.Style{Stops: []string{"#00FF00", "#0000FF"}},
		StartAlpha: 128,
		EndAlpha:   255,
		Output:     core.ModeSolid,
	})
	assert.Contains(t, out, "#00FF00")
	assert.Contains(t, out, "alpha 50%")
	assert.Contains(t, out, "<FG00FF0080>Hi")
}

func TestRenderTruncationNotice(t *testing.T) {
	out := renderString(t, pipeline.Request{
		Text:       strings.Repeat("a", 100),
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})
	assert.Contains(t, out, "4/4")
	assert.Contains(t, out, "truncated")
}

func TestRenderLowContrastNotice(t *testing.T) {
	out := renderString(t, pipeline.Request{
		Text:       "dark",
		Style:      core.Style{Stops: []string{"#101010", "#FFFFFF"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})
	assert.Contains(t, out, "#101010 has low contrast")
	assert.NotContains(t, out, "#FFFFFF has low contrast")
}

func TestRenderFallback(t *testing.T) {
	out := renderString(t, pipeline.Request{
		Text:       "x",
		Style:      core.Style{Stops: []string{"nope"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})
	assert.Contains(t, out, "fallback color")
	assert.Contains(t, out, "<FG000000FF>x")
}

func TestRenderEmpty(t *testing.T) {
	out := renderString(t, pipeline.Request{Style: core.DefaultStyle, StartAlpha: 255, EndAlpha: 255})
	assert.NotContains(t, out, "1/1")
}

func TestComposite(t *testing.T) {
	assert.Equal(t, "#ff0000", composite(core.Color{R: 255, A: 255}))
	assert.Equal(t, "#14141e", composite(core.Color{R: 255, A: 0}))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1273, "1,273"},
		{1228873, "1,228,873"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in), "formatNumber(%d)", tt.in)
	}
}
