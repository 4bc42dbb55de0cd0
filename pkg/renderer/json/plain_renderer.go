package json

import (
	"context"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/nxerrors"
)

// PlainRenderer 将 INI 文档导出为 JSON：section 对象嵌套字符串值。
// 输出经 protojson 编码，空白字符不保证稳定，比较时应先反序列化。
type PlainRenderer struct{}

func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Format 实现 renderer.Renderer。
func (r *PlainRenderer) Format() string {
	return "json"
}

// Render 实现 renderer.Renderer。
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

	st, err := ToStruct(doc)
	if err != nil {
		return nil, err
	}

	marshal := protojson.MarshalOptions{}
	if opts.Pretty {
		marshal.Multiline = true
		marshal.Indent = opts.IndentOrDefault()
	}
	payload, err := marshal.Marshal(st)
	if err != nil {
		return nil, nxerrors.New(nxerrors.KindRender, fmt.Errorf("encode json: %w", err))
	}
	return payload, nil
}

// ToStruct converts the document into a protobuf Struct of section Structs.
// Values that are not valid UTF-8 cannot be represented and fail with KindRender.
func ToStruct(doc *ast.Document) (*structpb.Struct, error) {
	st := &structpb.Struct{Fields: make(map[string]*structpb.Value, doc.Len())}
	for _, name := range doc.SectionNames() {
		section, _ := doc.GetSection(name)
		fields := make(map[string]any, section.Len())
		for key, value := range section.Map() {
			fields[key] = value
		}
		sv, err := structpb.NewStruct(fields)
		if err != nil {
			return nil, nxerrors.New(nxerrors.KindRender, fmt.Errorf("section %q: %w", name, err))
		}
		st.Fields[name] = structpb.NewStructValue(sv)
	}
	return st, nil
}
