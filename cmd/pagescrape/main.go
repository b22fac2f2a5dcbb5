// Command pagescrape fetches a single web page, extracts structured content
// (metadata, headings, paragraphs, links, images, tables, lists, code
// blocks, full text), prints a summary, and writes the result as JSON.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
	psgoquery "github.com/fwojciec/pagescrape/goquery"
	pshttp "github.com/fwojciec/pagescrape/http"
	pszerolog "github.com/fwojciec/pagescrape/zerolog"
	"github.com/rs/zerolog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagescrape"),
		kong.Description("Fetch a web page and extract its structured content to JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if cli.Quiet {
		logger = logger.Level(zerolog.ErrorLevel)
	}

	// Wire dependencies
	timeout := cli.Timeout
	if timeout == 0 {
		timeout = pshttp.DefaultFetchTimeout
	}
	opts := []pshttp.Option{pshttp.WithTimeout(timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, pshttp.WithUserAgent(cli.UserAgent))
	}

	fetcher := pshttp.NewFetcher(opts...)
	defer fetcher.Close()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Scraper: &pagescrape.Scraper{
			Fetcher:   pszerolog.NewLoggingFetcher(fetcher, logger),
			Extractor: psgoquery.NewExtractor(),
		},
		Writer: fs.NewWriter(),
	}

	cmd := &ScrapeCmd{
		URL:    cli.URL,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	UserAgent string        `help:"Override the User-Agent header"`
	Quiet     bool          `short:"q" help:"Suppress progress logging"`
	URL       string        `arg:"" required:"" help:"Page URL to scrape"`
	Output    string        `arg:"" optional:"" help:"Output file (default: <host>_scraped_data.json)"`
}
