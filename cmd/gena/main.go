package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	gena "github.com/sunes26/Gena"
	"github.com/sunes26/Gena/extract"
	genahttp "github.com/sunes26/Gena/http"
	"github.com/sunes26/Gena/pdfcpu"
	"github.com/sunes26/Gena/rod"
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
	// Headless browser shared by browser-rendered sources.
	// Launched lazily in Run when --browser is set.
	Browser *rod.Browser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Browser != nil {
		return m.Browser.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gena"),
		kong.Description("Readable article text extraction for web pages and PDFs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'gena --help' for usage")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Extract.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Limiter = extract.NewDomainLimiter(cli.Extract.RPS)

	// Wire the document source factory based on rendering mode
	if cli.Extract.Browser {
		browser, err := rod.NewBrowser()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Browser = browser
		defer m.Close()

		deps.OpenSource = func(ctx context.Context, pageURL string) (gena.DocumentSource, func(), error) {
			source, err := browser.Open(ctx, pageURL)
			if err != nil {
				return nil, func() {}, err
			}
			return source, func() { _ = source.Close() }, nil
		}
	} else {
		deps.OpenSource = func(ctx context.Context, pageURL string) (gena.DocumentSource, func(), error) {
			source := genahttp.NewSource(pageURL)
			return source, func() { _ = source.Close() }, nil
		}
	}

	deps.NewPDF = func(pageURL string) gena.PDFExtractor {
		return pdfcpu.NewExtractor(pageURL)
	}

	return kongCtx.Run(deps)
}
