package pipeline

import (
	"strings"
	"testing"

	"github.com/sonnes/rangoli/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGradient(t *testing.T) {
	res := Run(Request{
		Text:       "Hi<TX1A>Bye",
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})

	assert.Equal(t, core.ModeGradient, res.Output)
	assert.Equal(t, core.Smooth, res.Style.Interpolation)
	assert.Equal(t, []core.Segment{
		{Content: "Hi"},
		{Content: "<TX1A>", IsIcon: true},
		{Content: "Bye"},
	}, res.Segments)
	require.Len(t, res.Chars, 6)
	assert.True(t, strings.HasPrefix(res.Formatted, "<FGFF0000FF>H"))
	assert.Contains(t, res.Formatted, "<TX1A>")
	assert.True(t, strings.HasSuffix(res.Formatted, "<FG0000FFFF>e"))
	assert.Equal(t, []string{res.Formatted}, res.Chunks)
	assert.False(t, res.Truncated)

	assert.Equal(t, core.Stats{
		LiteralChars:    5,
		Icons:           1,
		LongestIconRun:  1,
		FormattedLength: 5*13 + 6,
		ValidStops:      2,
	}, res.Stats)
}

func TestRunSolidDefaultsToFirstStop(t *testing.T) {
	res := Run(Request{
		Text:       "gg<TX2>wp",
		Style:      core.Style{Stops: []string{"#ff8800", "#0000FF"}},
		StartAlpha: 128,
		EndAlpha:   255,
		Output:     core.ModeSolid,
	})
	assert.Equal(t, "<FGFF880080>gg<TX2><FGFF880080>wp", res.Formatted)
	assert.Equal(t, "FF8800", res.SolidColor)
}

func TestRunSolidExplicit(t *testing.T) {
	alpha := 255
	res := Run(Request{
		Text:       "ok",
		Style:      core.DefaultStyle,
		Output:     core.ModeSolid,
		SolidColor: "#123456",
		SolidAlpha: &alpha,
	})
	assert.Equal(t, "<FG123456FF>ok", res.Formatted)
}

func TestRunInvalidStops(t *testing.T) {
	res := Run(Request{
		Text:       "abc",
		Style:      core.Style{Stops: []string{"notacolor", "alsobad"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})
	assert.Equal(t, "<FG000000FF>a<FG000000FF>b<FG000000FF>c", res.Formatted)
	assert.Zero(t, res.Stats.ValidStops)
}

func TestRunChunksLongText(t *testing.T) {
	res := Run(Request{
		Text:       strings.Repeat("long message ", 30),
		Style:      core.DefaultStyle,
		StartAlpha: 255,
		EndAlpha:   255,
	})
	assert.Len(t, res.Chunks, 4)
	assert.True(t, res.Truncated)
}

func TestRunCustomLimits(t *testing.T) {
	res := Run(Request{
		Text:       strings.Repeat("a", 30),
		Style:      core.DefaultStyle,
		StartAlpha: 255,
		EndAlpha:   255,
		Output:     core.ModeSolid,
		MaxLen:     10,
		MaxChunks:  10,
	})
	require.NotEmpty(t, res.Chunks)
	for _, c := range res.Chunks {
		assert.LessOrEqual(t, len(c), 12)
	}
}

func TestRunIdempotent(t *testing.T) {
	req := Request{
		Text:       "Rainbow <TX1F> road " + strings.Repeat("x", 40),
		Style:      core.Style{Stops: []string{"#FF0000", "#FFFF00", "#00FF00", "#00FFFF", "#FF00FF"}},
		StartAlpha: 30,
		EndAlpha:   220,
	}
	assert.Equal(t, Run(req), Run(req))
}

func TestRunEmpty(t *testing.T) {
	res := Run(Request{Style: core.DefaultStyle, StartAlpha: 255, EndAlpha: 255})
	assert.Empty(t, res.Formatted)
	assert.Empty(t, res.Chunks)
	assert.Empty(t, res.Chars)
}
