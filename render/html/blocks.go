package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/render"
	"github.com/yuin/goldmark"
)

// renderPreview renders cells as colored spans. Alpha maps to CSS rgba so the
// page background shows through the same way the chat background does.
func renderPreview(cells []render.Cell) template.HTML {
	var b strings.Builder
	for _, c := range cells {
		text := template.HTMLEscapeString(c.Text)
		if c.Icon {
			b.WriteString(`<span class="icon text-violet-400 text-xs align-middle">` + text + `</span>`)
			continue
		}
		b.WriteString(`<span style="color: ` + rgba(c.Color) + `">` + text + `</span>`)
	}
	return template.HTML(b.String())
}

// renderChunk highlights one chunk as a fenced code block. The xml lexer
// colors the tags apart from the text between them.
func renderChunk(md goldmark.Markdown, chunk string) template.HTML {
	var buf bytes.Buffer
	fenced := "```xml\n" + chunk + "\n```"
	if err := md.Convert([]byte(fenced), &buf); err != nil {
		return template.HTML(`<pre class="px-4 py-3 text-xs font-mono overflow-x-auto">` + template.HTMLEscapeString(chunk) + `</pre>`)
	}
	return template.HTML(buf.String())
}

func rgba(c core.Color) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
