package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	inibackend "github.com/honeybbq/gerbilini/backend/ini"
	ast "github.com/honeybbq/gerbilini/pkg/ast/ini"
	"github.com/honeybbq/gerbilini/pkg/gerbilini"
	iniparser "github.com/honeybbq/gerbilini/pkg/parser/ini"
	"github.com/honeybbq/gerbilini/pkg/renderer"
	jsonrenderer "github.com/honeybbq/gerbilini/pkg/renderer/json"
	yamlrenderer "github.com/honeybbq/gerbilini/pkg/renderer/yaml"
)

const (
	envMode   = "GERBILINI_MODE"
	envFormat = "GERBILINI_FORMAT"
)

// errNotFound 表示查询的 section 或 key 不存在。
var errNotFound = errors.New("not found")

type options struct {
	mode    string
	format  string
	input   string
	output  string
	section string
	key     string
	list    bool
	pretty  bool
	verbose bool
}

func main() {
	// .env 仅提供默认值，不存在时忽略
	_ = godotenv.Load()

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		exitWithError(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	mode, err := gerbilini.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	registry := buildRegistry()
	entry, ok := registry[strings.ToLower(opts.format)]
	if !ok {
		return fmt.Errorf("unknown format %q (use json|yaml)", opts.format)
	}
	if opts.key != "" && opts.section == "" {
		return errors.New("-key requires -section")
	}

	src, err := readInput(opts.input, stdin)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	backend := inibackend.New(iniparser.NewParser(), entry)
	doc, err := backend.Decode(ctx, src, gerbilini.ParseOptions{Mode: mode, Logger: logger})
	if err != nil {
		return err
	}
	logger.Debug("document loaded", "component", "cli", "backend", backend.Name(), "sections", doc.Len())

	switch {
	case opts.list:
		names, err := listNames(doc, opts.section)
		if err != nil {
			return err
		}
		return writeOutput(opts.output, stdout, []byte(strings.Join(names, "\n")))
	case opts.key != "":
		value, err := lookup(doc, opts.section, opts.key)
		if err != nil {
			return err
		}
		return writeOutput(opts.output, stdout, []byte(value))
	case opts.section != "":
		if _, ok := doc.GetSection(opts.section); !ok {
			return fmt.Errorf("section %q %w", opts.section, errNotFound)
		}
		doc = onlySection(doc, opts.section)
	}

	payload, err := backend.Render(ctx, doc, gerbilini.RenderOptions{Pretty: opts.pretty})
	if err != nil {
		return err
	}
	return writeOutput(opts.output, stdout, payload)
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("gerbilini", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", envOr(envMode, gerbilini.ModeSimple.String()), "parse mode: simple | simple-trimmed")
	fs.StringVar(&opts.format, "format", envOr(envFormat, "json"), "export format: json | yaml")
	fs.StringVar(&opts.input, "input", "", "input path (default: stdin)")
	fs.StringVar(&opts.output, "output", "", "output path (default: stdout)")
	fs.StringVar(&opts.section, "section", "", "restrict output to one section")
	fs.StringVar(&opts.key, "key", "", "print a single value from -section")
	fs.BoolVar(&opts.list, "list", false, "list section names, or keys of -section")
	fs.BoolVar(&opts.pretty, "pretty", true, "pretty print exported documents")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func buildRegistry() map[string]renderer.Renderer[*ast.Document] {
	return map[string]renderer.Renderer[*ast.Document]{
		"json": jsonrenderer.NewPlainRenderer(),
		"yaml": yamlrenderer.NewPlainRenderer(),
		"yml":  yamlrenderer.NewPlainRenderer(),
	}
}

func listNames(doc *ast.Document, section string) ([]string, error) {
	if section == "" {
		return doc.SectionNames(), nil
	}
	s, ok := doc.GetSection(section)
	if !ok {
		return nil, fmt.Errorf("section %q %w", section, errNotFound)
	}
	return s.Keys(), nil
}

func lookup(doc *ast.Document, section, key string) (string, error) {
	s, ok := doc.GetSection(section)
	if !ok {
		return "", fmt.Errorf("section %q %w", section, errNotFound)
	}
	value, ok := s.Get(key)
	if !ok {
		return "", fmt.Errorf("key %q %w in section %q", key, errNotFound, section)
	}
	return value, nil
}

// onlySection 复制出只包含指定 section 的文档。
func onlySection(doc *ast.Document, name string) *ast.Document {
	b := ast.NewBuilder()
	s, _ := doc.GetSection(name)
	b.AddSection(name)
	for _, key := range s.Keys() {
		value, _ := s.Get(key)
		b.AddEntry(key, value)
	}
	return b.Document()
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func readInput(path string, stdin io.Reader) (*gerbilini.Source, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		return &gerbilini.Source{Name: "stdin", Content: data}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &gerbilini.Source{Name: path, Content: data}, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func exitWithError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
