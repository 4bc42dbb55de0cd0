package ini

import (
	"context"
	"fmt"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/renderer"
)

// Backend 组合 INI 解析器与导出渲染器。
type Backend struct {
	parser   renderer.Parser[*ast.Document]
	renderer renderer.Renderer[*ast.Document]
}

// New 构造 Backend。
func New(p renderer.Parser[*ast.Document], r renderer.Renderer[*ast.Document]) *Backend {
	return &Backend{
		parser:   p,
		renderer: r,
	}
}

// Name returns the backend identifier, e.g. "ini+json".
func (b *Backend) Name() string {
	return "ini+" + b.renderer.Format()
}

// Decode parses src into a document.
func (b *Backend) Decode(ctx context.Context, src *gerbilini.Source, opts gerbilini.ParseOptions) (*ast.Document, error) {
	doc, err := b.parser.Parse(ctx, src, opts)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Label(), err)
	}
	return doc, nil
}

// Export parses src and renders the result with the backend's renderer.
func (b *Backend) Export(ctx context.Context, src *gerbilini.Source, parseOpts gerbilini.ParseOptions, renderOpts gerbilini.RenderOptions) ([]byte, error) {
	doc, err := b.Decode(ctx, src, parseOpts)
	if err != nil {
		return nil, err
	}
	return b.Render(ctx, doc, renderOpts)
}

// Render exports an already parsed document.
func (b *Backend) Render(ctx context.Context, doc *ast.Document, opts gerbilini.RenderOptions) ([]byte, error) {
	payload, err := b.renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", b.renderer.Format(), err)
	}
	return payload, nil
}
