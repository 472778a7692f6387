// Package markup writes the chat-ready color markup with no decoration.
package markup

import (
	"fmt"
	"io"

	"github.com/sonnes/rangoli/core"
)

// Renderer writes formatted markup to w.
type Renderer struct {
	// Chunks writes one chunk per line instead of the full formatted string.
	Chunks bool
}

// Render writes the formatted string, or each chunk on its own line. An
// empty result writes nothing.
func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	if !r.Chunks {
		if res.Formatted == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, res.Formatted)
		return err
	}
	for _, c := range res.Chunks {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
