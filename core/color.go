package core

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for anything other than six hex digits.
var ErrInvalidHex = errors.New("invalid hex color")

var hexColorRE = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// FallbackColor is used for every position when a gradient has fewer than two
// valid stops.
var FallbackColor = Color{R: 0, G: 0, B: 0, A: 255}

// ParseHex parses "#RRGGBB" or "RRGGBB" (any case) into an opaque Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if !hexColorRE.MatchString(h) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ValidHex reports whether s is a well-formed color stop.
func ValidHex(s string) bool {
	_, err := ParseHex(s)
	return err == nil
}

// NormalizeHex returns s as uppercase "RRGGBB" without the leading '#'.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.RGBHex(), nil
}

// Hex packs the color as uppercase RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// RGBHex packs the color as uppercase RRGGBB, dropping alpha.
func (c Color) RGBHex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// ClampAlpha clamps v to [0,255].
func ClampAlpha(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// ClampChannel rounds v and clamps it to [0,255].
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// AlphaToPercent converts an alpha value to a whole opacity percentage.
func AlphaToPercent(a uint8) int {
	return int(math.Round(float64(a) / 255 * 100))
}

// PercentToAlpha converts an opacity percentage to an alpha value. p is
// clamped to [0,100].
func PercentToAlpha(p int) uint8 {
	p = max(0, min(100, p))
	return uint8(math.Round(float64(p) / 100 * 255))
}

// ParseAlpha accepts either a raw alpha ("128") or an opacity percentage
// ("50%"). Out-of-range values are clamped.
func ParseAlpha(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if p, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, fmt.Errorf("invalid opacity %q: %w", s, err)
		}
		return PercentToAlpha(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid alpha %q: %w", s, err)
	}
	return ClampAlpha(n), nil
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1
// (identical luminance) to 21 (black on white). Alpha is ignored.
func ContrastRatio(a, b Color) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05)
}

func relativeLuminance(c Color) float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}
