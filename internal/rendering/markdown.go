package rendering

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Without html.WithUnsafe, raw HTML in summaries is omitted from the output.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// RenderSummaryHTML converts summary markdown to an HTML fragment.
func RenderSummaryHTML(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", &RenderError{Result: "summary", Message: "failed to convert markdown", Cause: err}
	}
	return template.HTML(buf.String()), nil //nolint:gosec
}
