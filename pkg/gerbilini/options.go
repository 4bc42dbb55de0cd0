package gerbilini

import (
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects the whitespace handling of the key=value grammar.
// Both modes share the same section/comment rules.
type Mode int

const (
	// ModeSimple passes keys and values through exactly as delimited.
	//
	// Restrictions:
	//   - keys, values and section titles cannot span lines
	//   - keys cannot contain '='
	//   - keys cannot start with ';', '#' or '['
	//   - comments must start at the first column
	ModeSimple Mode = iota

	// ModeSimpleTrimmed is ModeSimple with whitespace around '=' removed:
	// `key = value` has the same meaning as `key=value`.
	// Keys therefore cannot end with whitespace and values cannot begin with it.
	ModeSimpleTrimmed
)

// String 返回模式名称，可被 ParseMode 解析回来。
func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeSimpleTrimmed:
		return "simple-trimmed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == ModeSimple || m == ModeSimpleTrimmed
}

// ParseMode 将命令行或环境变量中的模式名称转换为 Mode。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple":
		return ModeSimple, nil
	case "simple-trimmed", "simpletrimmed", "trimmed":
		return ModeSimpleTrimmed, nil
	default:
		return ModeSimple, fmt.Errorf("unknown mode %q (use simple|simple-trimmed)", s)
	}
}

// ParseOptions controls the parsing process (INI text → Document).
type ParseOptions struct {
	Mode   Mode         // Whitespace handling around '='
	Logger *slog.Logger // Optional; receives a debug summary per parse
}

// RenderOptions controls exporting a parsed Document to another format.
type RenderOptions struct {
	Pretty bool   // Multi-line output where the format supports it
	Indent string // Indentation used when Pretty is set (default two spaces)
}

// IndentOrDefault returns Indent, falling back to two spaces.
func (o RenderOptions) IndentOrDefault() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}
