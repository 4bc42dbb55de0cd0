package yaml

import (
	"bytes"
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/nxerrors"
)

// PlainRenderer 将 INI 文档导出为 YAML，section 和 key 均按字典序排列。
// 所有值都以字符串输出，必要时加引号。
type PlainRenderer struct{}

func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) Format() string {
	return "yaml"
}

// Render 实现 renderer.Renderer。Pretty 在 YAML 中无效果，只使用 Indent 的宽度。
func (r *PlainRenderer) Render(ctx context.Context, doc *ast.Document, opts gerbilini.RenderOptions) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nxerrors.New(nxerrors.KindRender, fmt.Errorf("ini document is nil"))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(opts.IndentOrDefault()))
	if err := enc.Encode(ToNode(doc)); err != nil {
		return nil, nxerrors.New(nxerrors.KindRender, fmt.Errorf("encode yaml: %w", err))
	}
	if err := enc.Close(); err != nil {
		return nil, nxerrors.New(nxerrors.KindRender, fmt.Errorf("encode yaml: %w", err))
	}
	return buf.Bytes(), nil
}

// ToNode builds an ordered YAML mapping of section mappings.
func ToNode(doc *ast.Document) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range doc.SectionNames() {
		section, _ := doc.GetSection(name)
		values := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range section.Keys() {
			value, _ := section.Get(key)
			values.Content = append(values.Content, stringNode(key), stringNode(value))
		}
		root.Content = append(root.Content, stringNode(name), values)
	}
	return root
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
