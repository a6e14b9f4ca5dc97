package conv

import (
	"bytes"
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	textPolicy = bluemonday.UGCPolicy()
)

// MarkdownToHTML renders md and strips anything a document should not
// carry, such as scripts and event handlers.
func MarkdownToHTML(md []byte) []byte {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse(md), renderer)

	return textPolicy.SanitizeBytes(unsafeHTML)
}

// MarkdownToText renders md as plain text for a terminal.
func MarkdownToText(md []byte) (string, error) {
	text, err := html2text.FromReader(bytes.NewReader(MarkdownToHTML(md)), html2text.Options{
		OmitLinks:    false,
		PrettyTables: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return text, nil
}
