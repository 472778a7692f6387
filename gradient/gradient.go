// Package gradient maps normalized positions in [0,1] to colors across an
// ordered list of color stops.
//
// Smooth gradients blend adjacent stops in HSL space, taking the shorter way
// around the hue wheel. Discrete gradients give every stop an equal band and
// never blend. Alpha is always a straight line from the start alpha to the end
// alpha, whichever color mode is used.
package gradient

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sonnes/rangoli/core"
)

// Gradient is an immutable, validated gradient. It is safe for concurrent use.
type Gradient struct {
	stops      []core.Color
	hsl        []hsl
	mode       core.Interpolation
	startAlpha uint8
	endAlpha   uint8
}

type hsl struct{ h, s, l float64 }

// New validates the style's stops and returns a Gradient. Invalid stops are
// dropped. With fewer than two valid stops the gradient is still usable and
// returns core.FallbackColor everywhere.
func New(style core.Style, startAlpha, endAlpha int) *Gradient {
	g := &Gradient{
		mode:       style.Interpolation,
		startAlpha: core.ClampAlpha(startAlpha),
		endAlpha:   core.ClampAlpha(endAlpha),
	}
	if g.mode == "" {
		g.mode = core.Smooth
	}
	for _, s := range style.Stops {
		c, err := core.ParseHex(s)
		if err != nil {
			continue
		}
		g.stops = append(g.stops, c)
		g.hsl = append(g.hsl, toHSL(c))
	}
	return g
}

// ColorAt is shorthand for New(style, startAlpha, endAlpha).At(position).
func ColorAt(position float64, style core.Style, startAlpha, endAlpha int) core.Color {
	return New(style, startAlpha, endAlpha).At(position)
}

// Valid reports whether the gradient has at least two usable stops.
func (g *Gradient) Valid() bool { return len(g.stops) >= 2 }

// Stops returns the validated stops.
func (g *Gradient) Stops() []core.Color {
	out := make([]core.Color, len(g.stops))
	copy(out, g.stops)
	return out
}

// Mode returns the interpolation mode.
func (g *Gradient) Mode() core.Interpolation { return g.mode }

// Alpha returns the interpolated alpha at position.
func (g *Gradient) Alpha(position float64) uint8 {
	p := clamp01(position)
	a := float64(g.startAlpha) + (float64(g.endAlpha)-float64(g.startAlpha))*p
	return core.ClampChannel(a)
}

// At returns the color at position. Positions outside [0,1] are clamped.
func (g *Gradient) At(position float64) core.Color {
	if !g.Valid() {
		return core.FallbackColor
	}
	p := clamp01(position)

	var c core.Color
	switch g.mode {
	case core.Discrete:
		c = g.stops[g.band(p)]
	default:
		c = g.smooth(p)
	}
	return c.WithAlpha(g.Alpha(p))
}

// Colors samples n evenly spaced positions from 0 to 1. A single sample is
// the first stop at the start alpha.
func (g *Gradient) Colors(n int) []core.Color {
	if n <= 0 {
		return nil
	}
	out := make([]core.Color, n)
	if n == 1 {
		out[0] = g.first()
		return out
	}
	for i := range n {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

func (g *Gradient) first() core.Color {
	if !g.Valid() {
		return core.FallbackColor
	}
	return g.stops[0].WithAlpha(g.startAlpha)
}

// band picks the stop for a discrete gradient. Stops own equal bands of
// width 1/N; a position on a boundary belongs to the higher band.
func (g *Gradient) band(p float64) int {
	n := len(g.stops)
	return max(0, min(int(math.Floor(p*float64(n))), n-1))
}

// segment returns the adjacent stop pair covering p and the ratio within it.
func (g *Gradient) segment(p float64) (int, float64) {
	segments := len(g.stops) - 1
	width := 1 / float64(segments)
	idx := max(0, min(int(math.Floor(p/width)), segments-1))
	ratio := (p - float64(idx)*width) / width
	return idx, clamp01(ratio)
}

func (g *Gradient) smooth(p float64) core.Color {
	idx, ratio := g.segment(p)
	if ratio <= 0 {
		return g.stops[idx]
	}
	if ratio >= 1 {
		return g.stops[idx+1]
	}
	return fromHSL(lerpHSL(g.hsl[idx], g.hsl[idx+1], ratio))
}

// lerpHSL blends two HSL triples, moving hue along the shorter arc. An
// achromatic end has no meaningful hue and borrows the other end's.
func lerpHSL(a, b hsl, t float64) hsl {
	if a.s == 0 && b.s != 0 {
		a.h = b.h
	} else if b.s == 0 && a.s != 0 {
		b.h = a.h
	}

	dh := b.h - a.h
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	h := math.Mod(a.h+dh*t, 360)
	if h < 0 {
		h += 360
	}
	return hsl{
		h: h,
		s: a.s + (b.s-a.s)*t,
		l: a.l + (b.l-a.l)*t,
	}
}

func toHSL(c core.Color) hsl {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()
	return hsl{h: h, s: s, l: l}
}

func fromHSL(v hsl) core.Color {
	cf := colorful.Hsl(v.h, v.s, v.l).Clamped()
	return core.Color{
		R: core.ClampChannel(cf.R * 255),
		G: core.ClampChannel(cf.G * 255),
		B: core.ClampChannel(cf.B * 255),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
