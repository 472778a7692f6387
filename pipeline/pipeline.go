// Package pipeline runs tokenize, gradient, format and chunk in sequence to
// produce a complete core.Result.
package pipeline

import (
	"unicode/utf8"

	"github.com/sonnes/rangoli/chunk"
	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/format"
	"github.com/sonnes/rangoli/gradient"
	"github.com/sonnes/rangoli/tokenize"
)

// Request holds every input of one run.
type Request struct {
	Text       string
	Style      core.Style
	StartAlpha int
	EndAlpha   int
	Output     core.OutputMode

	// SolidColor and SolidAlpha are used in solid mode. An empty SolidColor
	// means the first stop; a nil SolidAlpha means StartAlpha.
	SolidColor string
	SolidAlpha *int

	// MaxLen and MaxChunks bound chunking; zero selects the chunk defaults.
	MaxLen    int
	MaxChunks int
}

// Run computes the result for req. It has no side effects and the same
// request always yields the same result.
func Run(req Request) *core.Result {
	if req.Output == "" {
		req.Output = core.ModeGradient
	}
	if req.Style.Interpolation == "" {
		req.Style.Interpolation = core.Smooth
	}

	segs := tokenize.Tokenize(req.Text)
	chars := format.ApplyGradient(segs, req.Style, req.StartAlpha, req.EndAlpha)

	res := &core.Result{
		Text:       req.Text,
		Style:      req.Style,
		StartAlpha: core.ClampAlpha(req.StartAlpha),
		EndAlpha:   core.ClampAlpha(req.EndAlpha),
		Output:     req.Output,
		Segments:   segs,
		Chars:      chars,
	}

	if req.Output == core.ModeSolid {
		solidColor, solidAlpha := solid(req)
		res.SolidColor = solidColor
		res.SolidAlpha = core.ClampAlpha(solidAlpha)
		res.Formatted = format.Render(chars, core.ModeSolid, solidColor, solidAlpha)
	} else {
		res.Formatted = format.Render(chars, core.ModeGradient, "", 0)
	}

	split := chunk.Split(res.Formatted, req.MaxLen, req.MaxChunks)
	res.Chunks = split.Chunks
	res.Truncated = split.Truncated

	st := tokenize.Analyze(segs)
	res.Stats = core.Stats{
		LiteralChars:    st.LiteralChars,
		Icons:           st.Icons,
		LongestIconRun:  st.LongestRun,
		FormattedLength: utf8.RuneCountInString(res.Formatted),
		ValidStops:      len(gradient.New(req.Style, 0, 0).Stops()),
	}
	return res
}

// solid resolves the single color and alpha used in solid mode.
func solid(req Request) (string, int) {
	alpha := req.StartAlpha
	if req.SolidAlpha != nil {
		alpha = *req.SolidAlpha
	}
	if req.SolidColor != "" {
		return req.SolidColor, alpha
	}
	stops := gradient.New(req.Style, 0, 0).Stops()
	if len(stops) == 0 {
		return core.FallbackColor.RGBHex(), alpha
	}
	return stops[0].RGBHex(), alpha
}
