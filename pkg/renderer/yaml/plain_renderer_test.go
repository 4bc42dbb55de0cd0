package yaml

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/nxerrors"
)

func sampleDoc() *ast.Document {
	b := ast.NewBuilder()
	b.AddSection("server")
	b.AddEntry("port", "8080")
	b.AddEntry("enabled", "true")
	b.AddEntry("empty", "")
	b.AddEntry("note", "a: b # c")
	b.AddSection("Another Section")
	b.AddEntry("key10", "x")
	b.AddEntry("key2", "y")
	return b.Document()
}

func TestRenderKeepsValuesAsStrings(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), sampleDoc(), gerbilini.RenderOptions{})
	require.NoError(t, err)

	var out map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(payload, &out))
	assert.Equal(t, map[string]map[string]any{
		"server": {
			"port":    "8080",
			"enabled": "true",
			"empty":   "",
			"note":    "a: b # c",
		},
		"Another Section": {"key10": "x", "key2": "y"},
	}, out)
}

func TestRenderOrdinalOrder(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), sampleDoc(), gerbilini.RenderOptions{})
	require.NoError(t, err)

	text := string(payload)
	assert.Less(t, strings.Index(text, "Another Section"), strings.Index(text, "server"))
	assert.Less(t, strings.Index(text, "key10"), strings.Index(text, "key2"))
}

func TestRenderEmptyDocument(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), ast.NewBuilder().Document(), gerbilini.RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(payload))
}

func TestRenderNilDocument(t *testing.T) {
	_, err := NewPlainRenderer().Render(context.Background(), nil, gerbilini.RenderOptions{})
	assert.ErrorIs(t, err, nxerrors.ErrRender)
	assert.Equal(t, "yaml", NewPlainRenderer().Format())
}
