package core

import (
	"fmt"
	"strings"
)

// Interpolation selects how colors between stops are computed.
type Interpolation string

const (
	// Smooth blends adjacent stops in HSL space along the shorter hue arc.
	Smooth Interpolation = "smooth"
	// Discrete gives each stop an equal band with no blending.
	Discrete Interpolation = "discrete"
)

// ParseInterpolation maps a name to an Interpolation. The empty string is Smooth.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Smooth):
		return Smooth, nil
	case string(Discrete):
		return Discrete, nil
	default:
		return "", fmt.Errorf("unknown interpolation %q (want smooth or discrete)", s)
	}
}

// OutputMode selects how colored characters are rendered to markup.
type OutputMode string

const (
	// ModeGradient emits one color tag per literal character.
	ModeGradient OutputMode = "gradient"
	// ModeSolid emits one color tag per run of literal characters.
	ModeSolid OutputMode = "solid"
)

// ParseOutputMode maps a name to an OutputMode. The empty string is ModeGradient.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeGradient):
		return ModeGradient, nil
	case string(ModeSolid):
		return ModeSolid, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want gradient or solid)", s)
	}
}

// Style is an ordered list of color stops plus an interpolation mode. Stops
// are raw strings; invalid entries are filtered by the interpolator.
type Style struct {
	Stops         []string      `json:"stops"`
	Interpolation Interpolation `json:"interpolation,omitempty"`
}

// DefaultStyle is the warm orange-to-yellow gradient used when nothing else is configured.
var DefaultStyle = Style{
	Stops:         []string{"#FF3300", "#FFFF00"},
	Interpolation: Smooth,
}

// ChatBackground is the dark background chat text is usually shown on, used
// for previews and contrast checks.
var ChatBackground = Color{R: 0x14, G: 0x14, B: 0x1E, A: 255}

// MinContrast is the contrast ratio against ChatBackground below which
// colored text is hard to read.
const MinContrast = 1.5

// Readable reports whether c stands out enough from ChatBackground.
func Readable(c Color) bool {
	return ContrastRatio(c, ChatBackground) >= MinContrast
}

// MaxTextLength is the practical input bound enforced by callers, not the core.
const MaxTextLength = 500
