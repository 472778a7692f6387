package render

import (
	"testing"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewGradient(t *testing.T) {
	res := pipeline.Run(pipeline.Request{
		Text:       "A<TX1>B",
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   128,
	})

	cells := Preview(res)
	require.Len(t, cells, 3)
	assert.Equal(t, Cell{Text: "A", Color: core.Color{R: 255, A: 255}}, cells[0])
	assert.Equal(t, Cell{Text: "<TX1>", Icon: true}, cells[1])
	assert.Equal(t, Cell{Text: "B", Color: core.Color{B: 255, A: 128}}, cells[2])
}

func TestPreviewSolid(t *testing.T) {
	alpha := 64
	res := pipeline.Run(pipeline.Request{
		Text:       "Hi",
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   255,
		Output:     core.ModeSolid,
		SolidColor: "#00FF00",
		SolidAlpha: &alpha,
	})

	for _, c := range Preview(res) {
		assert.Equal(t, core.Color{G: 255, A: 64}, c.Color)
	}
}

func TestParsePacked(t *testing.T) {
	assert.Equal(t, core.Color{R: 0x12, G: 0x34, B: 0x56, A: 0x78}, parsePacked("12345678"))
	assert.Equal(t, core.FallbackColor, parsePacked("123456"))
	assert.Equal(t, core.FallbackColor, parsePacked("ZZ345678"))
	assert.Equal(t, core.FallbackColor, parsePacked("123456ZZ"))
}
