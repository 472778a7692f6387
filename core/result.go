// Package core defines the data model shared by the tokenizer, interpolator,
// formatter, chunker and renderers.
package core

// Segment is one piece of tokenized input: either a literal text run or a
// single icon token.
type Segment struct {
	Content string `json:"content"`
	IsIcon  bool   `json:"is_icon"`
}

// ColoredChar is one rendered unit. For literal text Char is a single
// character and Color is packed RRGGBBAA. For icon tokens Char is the whole
// token and Color is empty.
type ColoredChar struct {
	Char  string `json:"char"`
	Color string `json:"color"`
}

// IsIcon reports whether the unit is an uncolored icon token.
func (c ColoredChar) IsIcon() bool { return c.Color == "" }

// Stats summarizes a generated result.
type Stats struct {
	LiteralChars    int `json:"literal_chars"`
	Icons           int `json:"icons"`
	LongestIconRun  int `json:"longest_icon_run"`
	FormattedLength int `json:"formatted_length"`
	ValidStops      int `json:"valid_stops"`
}

// Result is the full output of one pipeline run. It is derived fresh from
// its inputs and never mutated after construction.
type Result struct {
	Text       string        `json:"text"`
	Style      Style         `json:"style"`
	StartAlpha uint8         `json:"start_alpha"`
	EndAlpha   uint8         `json:"end_alpha"`
	Output     OutputMode    `json:"output"`
	SolidColor string        `json:"solid_color,omitempty"`
	SolidAlpha uint8         `json:"solid_alpha,omitempty"`
	Segments   []Segment     `json:"segments"`
	Chars      []ColoredChar `json:"chars"`
	Formatted  string        `json:"formatted"`
	Chunks     []string      `json:"chunks"`
	Truncated  bool          `json:"truncated"`
	Stats      Stats         `json:"stats"`
}
