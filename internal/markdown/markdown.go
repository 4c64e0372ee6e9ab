// Package markdown renders Markdown source into HTML for the document
// view pages.
// Package markdown 将 Markdown 源渲染为 HTML 供文档查看页使用。
package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer wraps a shared goldmark engine. The engine is stateless, so a
// single Renderer is safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer 创建渲染器，启用 GFM 扩展并允许原始 HTML 透传
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				// Authenticated authors write the documents, raw HTML
				// passes through unsanitised.
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts Markdown source into HTML.
func (r *Renderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, errors.Wrap(err, "markdown render")
	}
	return buf.Bytes(), nil
}
