// Package json renders results as JSON (serializes core.Result as-is).
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/rangoli/core"
)

// Renderer renders a result to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// Render writes res to w as a single JSON document followed by a newline.
func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(res)
}
