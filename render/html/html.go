// Package html renders results as standalone HTML pages styled with
// Tailwind CSS v4 (CDN), with chunk markup highlighted via goldmark + chroma.
package html

import (
	"html/template"
	"io"
	"unicode/utf8"

	"github.com/sonnes/rangoli/core"
	"github.com/sonnes/rangoli/gradient"
	"github.com/sonnes/rangoli/render"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// Renderer renders a result to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	tmpl := template.Must(
		template.New("page.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the top-level template data passed to page.html.
type pageData struct {
	Result     *core.Result
	Background string // chat background as "#rrggbb"
	Swatches   []string
	Preview    template.HTML
	Chunks     []chunkData
	LowContrast []string
}

// chunkData is one chat message ready to paste.
type chunkData struct {
	Index  int
	Length int
	Markup template.HTML
}

// Render writes the result as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, res *core.Result) error {
	data := pageData{
		Result:     res,
		Background: "#" + core.ChatBackground.RGBHex(),
		Preview:    renderPreview(render.Preview(res)),
	}

	for _, c := range gradient.New(res.Style, 255, 255).Stops() {
		data.Swatches = append(data.Swatches, "#"+c.RGBHex())
		if !core.Readable(c) {
			data.LowContrast = append(data.LowContrast, "#"+c.RGBHex())
		}
	}

	for i, c := range res.Chunks {
		data.Chunks = append(data.Chunks, chunkData{
			Index:  i + 1,
			Length: utf8.RuneCountInString(c),
			Markup: renderChunk(r.md, c),
		})
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", data)
}
