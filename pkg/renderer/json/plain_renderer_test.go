package json

import (
	"context"
	stdjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/nxerrors"
)

func sampleDoc() *ast.Document {
	b := ast.NewBuilder()
	b.AddSection("My Section")
	b.AddEntry("some KEY", "This is a value!")
	b.AddEntry("port", "8080")
	b.AddSection("empty")
	return b.Document()
}

func decode(t *testing.T, payload []byte) map[string]map[string]string {
	t.Helper()
	var out map[string]map[string]string
	require.NoError(t, stdjson.Unmarshal(payload, &out))
	return out
}

func TestRenderCompact(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), sampleDoc(), gerbilini.RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]string{
		"My Section": {"some KEY": "This is a value!", "port": "8080"},
		"empty":      {},
	}, decode(t, payload))
	assert.NotContains(t, string(payload), "\n")
}

func TestRenderPretty(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), sampleDoc(), gerbilini.RenderOptions{Pretty: true})
	require.NoError(t, err)

	assert.Contains(t, string(payload), "\n")
	assert.Len(t, decode(t, payload), 2)
}

func TestRenderEmptyDocument(t *testing.T) {
	payload, err := NewPlainRenderer().Render(context.Background(), ast.NewBuilder().Document(), gerbilini.RenderOptions{})
	require.NoError(t, err)
	assert.Empty(t, decode(t, payload))
}

func TestRenderNilDocument(t *testing.T) {
	_, err := NewPlainRenderer().Render(context.Background(), nil, gerbilini.RenderOptions{})
	assert.ErrorIs(t, err, nxerrors.ErrRender)
}

func TestRenderInvalidUTF8(t *testing.T) {
	b := ast.NewBuilder()
	b.AddSection("s")
	b.AddEntry("k", "\xff\xfe")

	_, err := NewPlainRenderer().Render(context.Background(), b.Document(), gerbilini.RenderOptions{})
	assert.ErrorIs(t, err, nxerrors.ErrRender)
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPlainRenderer().Render(ctx, sampleDoc(), gerbilini.RenderOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestToStruct(t *testing.T) {
	st, err := ToStruct(sampleDoc())
	require.NoError(t, err)

	section := st.GetFields()["My Section"].GetStructValue()
	require.NotNil(t, section)
	assert.Equal(t, "8080", section.GetFields()["port"].GetStringValue())
	assert.Equal(t, "json", NewPlainRenderer().Format())
}
