package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	inibackend "github.com/honeybbq/gerbilini/backend/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	iniparser "github.com/honeybbq/gerbilini/pkg/parser/ini"
	jsonrenderer "github.com/honeybbq/gerbilini/pkg/renderer/json"
	yamlrenderer "github.com/honeybbq/gerbilini/pkg/renderer/yaml"
)

// fixturePath 返回 testdata/ini 下的文件路径
func fixturePath(name string) string {
	return filepath.Join("..", "testdata", "ini", name)
}

// loadSource 读取 fixture 作为解析输入
func loadSource(name string) (*gerbilini.Source, error) {
	data, err := os.ReadFile(fixturePath(name))
	if err != nil {
		return nil, err
	}
	return &gerbilini.Source{Name: name, Content: data}, nil
}

// exportFixture 按指定模式解析 fixture 并导出为 json 或 yaml
func exportFixture(name, format string, mode gerbilini.Mode) ([]byte, error) {
	src, err := loadSource(name)
	if err != nil {
		return nil, err
	}
	var backend *inibackend.Backend
	switch format {
	case "json":
		backend = inibackend.New(iniparser.NewParser(), jsonrenderer.NewPlainRenderer())
	case "yaml":
		backend = inibackend.New(iniparser.NewParser(), yamlrenderer.NewPlainRenderer())
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return backend.Export(context.Background(), src, gerbilini.ParseOptions{Mode: mode}, gerbilini.RenderOptions{Pretty: true})
}

// normalizeConfig 标准化输出文本用于比较
// 1. 去除首尾空白
// 2. 统一换行符
func normalizeConfig(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text
}

// compareConfigs 比较输出内容，忽略不重要的空白差异
func compareConfigs(got, want string) bool {
	return normalizeConfig(got) == normalizeConfig(want)
}

// formatConfigDiff 格式化差异信息
func formatConfigDiff(got, want string) string {
	gotNorm := normalizeConfig(got)
	wantNorm := normalizeConfig(want)

	if gotNorm == wantNorm {
		return "configs match (after normalization)"
	}

	gotLines := strings.Split(gotNorm, "\n")
	wantLines := strings.Split(wantNorm, "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "config mismatch (got %d lines, want %d lines)\n", len(gotLines), len(wantLines))
	fmt.Fprintf(&b, "--- got (normalized) ---\n%s\n", gotNorm)
	fmt.Fprintf(&b, "--- want (normalized) ---\n%s\n", wantNorm)

	maxLines := max(len(gotLines), len(wantLines))

	fmt.Fprintf(&b, "--- line-by-line diff ---\n")
	for i := 0; i < maxLines; i++ {
		var gotLine, wantLine string
		if i < len(gotLines) {
			gotLine = gotLines[i]
		}
		if i < len(wantLines) {
			wantLine = wantLines[i]
		}

		if gotLine != wantLine {
			fmt.Fprintf(&b, "Line %d differs:\n", i+1)
			fmt.Fprintf(&b, "  got:  %q\n", gotLine)
			fmt.Fprintf(&b, "  want: %q\n", wantLine)
		}
	}

	return b.String()
}
