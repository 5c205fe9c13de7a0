package web

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused. The goldmark
// configuration never changes and the Markdown value is safe to share;
// each Convert call creates its own parse state.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// renderMarkdown converts markdown (person notes, event descriptions,
// the intro and acknowledgments blocks) to HTML. Raw HTML in the source
// is escaped by goldmark's defaults; the data files are local and
// trusted, but there is no reason to allow script injection from them.
// Conversion failures fall back to the escaped source text so the page
// still renders.
func renderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
