package renderer

import (
	"context"

	"github.com/honeybbq/gerbilini/pkg/gerbilini"
)

// Renderer 将解析后的文档导出为其他格式，使用泛型约束文档类型。
type Renderer[T any] interface {
	Format() string
	Render(ctx context.Context, doc T, opts gerbilini.RenderOptions) ([]byte, error)
}

// Parser 将 INI 文本解析成文档。
type Parser[T any] interface {
	Parse(ctx context.Context, src *gerbilini.Source, opts gerbilini.ParseOptions) (T, error)
}
