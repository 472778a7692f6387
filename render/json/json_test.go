package json

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRoundTrip(t *testing.T) {
	res := pipeline.Run(pipeline.Request{
		Text:       "Hi<TX1>",
		Style:      core.Style{Stops: []string{"#FF0000", "#0000FF"}},
		StartAlpha: 255,
		EndAlpha:   255,
	})

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, res))
	assert.Contains(t, buf.String(), `"formatted":"<FGFF0000FF>H<FG0000FFFF>i<TX1>"`, "tags are not HTML-escaped")

	var got core.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, res.Formatted, got.Formatted)
	assert.Equal(t, res.Chunks, got.Chunks)
	assert.Equal(t, 1, got.Stats.Icons)
}

func TestRenderIndent(t *testing.T) {
	res := pipeline.Run(pipeline.Request{Text: "a", Style: core.DefaultStyle, StartAlpha: 255, EndAlpha: 255})

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{Indent: true}).Render(&buf, res))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \""))
}
