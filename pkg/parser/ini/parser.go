package ini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	"github.com/honeybbq/gerbilini/pkg/nxerrors"
)

// ctxCheckInterval is how many lines are scanned between context checks.
const ctxCheckInterval = 1024

// Parse 解析整段 INI 文本。任何错误都会终止解析，不返回部分结果。
func Parse(text string, mode gerbilini.Mode) (*ast.Document, error) {
	return parse(context.Background(), text, mode)
}

// Parser 实现 renderer.Parser[*ast.Document]。
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse 实现 renderer.Parser。
func (p *Parser) Parse(ctx context.Context, src *gerbilini.Source, opts gerbilini.ParseOptions) (*ast.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if src == nil {
		return nil, nxerrors.New(nxerrors.KindInvalidInput, errors.New("source is nil"))
	}

	doc, err := parse(ctx, string(src.Content), opts.Mode)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Debug("ini parse failed",
				"component", "parser", "source", src.Label(), "mode", opts.Mode.String(), "error", err)
		}
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Debug("ini parsed",
			"component", "parser", "source", src.Label(), "mode", opts.Mode.String(),
			"sections", doc.Len(), "bytes", len(src.Content))
	}
	return doc, nil
}

func parse(ctx context.Context, text string, mode gerbilini.Mode) (*ast.Document, error) {
	if !mode.Valid() {
		return nil, nxerrors.New(nxerrors.KindInvalidInput, fmt.Errorf("unsupported mode %s", mode))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := ast.NewBuilder()
	lineNumber := 0
	for len(text) > 0 {
		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}
		line = strings.TrimSuffix(line, "\r")
		lineNumber++

		if lineNumber%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := parseLine(b, line, lineNumber, mode); err != nil {
			return nil, err
		}
	}
	return b.Document(), nil
}

func parseLine(b *ast.Builder, line string, lineNumber int, mode gerbilini.Mode) error {
	if isSkipped(line) {
		return nil
	}

	if line[0] == '[' {
		end := strings.IndexByte(line, ']')
		if end < 0 {
			return nxerrors.AtLine(nxerrors.KindBrokenSectionTitle, lineNumber)
		}
		title := line[1:end]
		if !b.AddSection(title) {
			return &nxerrors.Error{Kind: nxerrors.KindDuplicateSection, Line: lineNumber, Section: title}
		}
		return nil
	}

	section := b.Current()
	if section == nil {
		return nxerrors.AtLine(nxerrors.KindExpectedSectionTitle, lineNumber)
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return nxerrors.AtLine(nxerrors.KindMissingEquals, lineNumber)
	}
	key, value := line[:eq], line[eq+1:]
	if mode == gerbilini.ModeSimpleTrimmed {
		key = strings.TrimRightFunc(key, unicode.IsSpace)
		value = strings.TrimLeftFunc(value, unicode.IsSpace)
	}

	if !b.AddEntry(key, value) {
		return &nxerrors.Error{
			Kind:    nxerrors.KindDuplicateSectionKey,
			Line:    lineNumber,
			Section: section.Name(),
			Key:     key,
		}
	}
	return nil
}

// isSkipped reports blank, whitespace-only and comment lines.
// Only the first character is checked for a comment delimiter.
func isSkipped(line string) bool {
	if line == "" || line[0] == ';' || line[0] == '#' {
		return true
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace) == ""
}
