// Command htmldoc converts forum/CMS HTML into Markdown via a semantic
// document model.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/htmldoc"
	"github.com/fwojciec/htmldoc/goquery"
	htmlparse "github.com/fwojciec/htmldoc/html"
	"github.com/fwojciec/htmldoc/htmltomarkdown"
	"github.com/fwojciec/htmldoc/minify"
	"github.com/fwojciec/htmldoc/readability"
	hslog "github.com/fwojciec/htmldoc/slog"
	"github.com/fwojciec/htmldoc/sqlite"
	"github.com/fwojciec/htmldoc/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Conversion cache path. Set before calling Run().
	CachePath string

	// SQLite database backing the conversion cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath: defaultCachePath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmldoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmldoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the native pipeline.
	docParser := htmldoc.NewParser(htmlparse.NewTokenizer(), minify.NewMinifier())
	docParser.Theme = cli.Convert.Theme

	var logger *slog.Logger
	if cli.Convert.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		docParser.Logger = logger
	}

	deps.Parser = docParser
	deps.Converters = map[string]htmldoc.Converter{
		"native":     docParser,
		"commonmark": htmltomarkdown.NewConverter(),
	}
	deps.Extractors = map[string]htmldoc.Extractor{
		"goquery":     goquery.NewExtractor(),
		"trafilatura": trafilatura.NewExtractor(),
		"readability": readability.NewExtractor(),
	}

	if logger != nil {
		for name, conv := range deps.Converters {
			deps.Converters[name] = hslog.NewLoggingConverter(conv, logger)
		}
		for name, ext := range deps.Extractors {
			deps.Extractors[name] = hslog.NewLoggingExtractor(ext, logger)
		}
	}

	// The conversion cache is only needed by convert --cache.
	if cmd == "convert" && cli.Convert.Cache {
		m.DB = sqlite.NewDB(m.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HTMLDOC_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", m.CachePath, err)
		}
		defer m.Close()

		deps.DB = m.DB
		deps.Cache = sqlite.NewCacheService(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("HTMLDOC_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "htmldoc.db"
	}
	dir := filepath.Join(home, ".htmldoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "htmldoc.db")
}
