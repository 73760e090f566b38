package fieldtype

import (
	"bytes"
	"context"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// ImportMarkdown renders legacy Markdown content to HTML and normalizes it
// like any stored value.
func (f *Field) ImportMarkdown(ctx context.Context, markdown string) (Value, error) {
	var buf bytes.Buffer
	if err := f.markdown.Convert([]byte(markdown), &buf); err != nil {
		return Value{}, wrapMarkdownError(err)
	}
	return f.NormalizeValue(ctx, buf.String()), nil
}
