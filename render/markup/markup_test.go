package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(text string) *core.Result {
	return pipeline.Run(pipeline.Request{
		Text:       text,
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})
}

func TestRenderFormatted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, run("Hi")))
	assert.Equal(t, "<FGFF0000FF>H<FG0000FFFF>i\n", buf.String())
}

func TestRenderChunks(t *testing.T) {
	res := run(strings.Repeat("a", 40))
	require.Len(t, res.Chunks, 3)

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{Chunks: true}).Render(&buf, res))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, res.Chunks, lines)
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, run("")))
	require.NoError(t, (&Renderer{Chunks: true}).Render(&buf, run("")))
	assert.Empty(t, buf.String())
}
