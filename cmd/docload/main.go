package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/docload/docload"
	"github.com/docload/docload/fs"
	"github.com/docload/docload/gemini"
	"github.com/docload/docload/goquery"
	"github.com/docload/docload/htmltomarkdown"
	dochttp "github.com/docload/docload/http"
	"github.com/docload/docload/load"
	"github.com/docload/docload/readability"
	"github.com/docload/docload/retrieve"
	docslog "github.com/docload/docload/slog"
	"github.com/docload/docload/trafilatura"
	"google.golang.org/genai"
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
		kong.Name("docload"),
		kong.Description("Load the external links of a documentation set by priority tier"),
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

	filter, err := docload.CompileFilter(cli.Include, cli.Exclude)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var store docload.DocumentStore = fs.NewStore()
	if logger != nil {
		store = docslog.NewLoggingStore(store, logger)
	}

	timeout := cli.Timeout
	if timeout <= 0 {
		timeout = dochttp.DefaultFetchTimeout
	}
	var fetcher docload.Fetcher = dochttp.NewFetcher(dochttp.WithTimeout(timeout))
	if logger != nil {
		fetcher = docslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	retriever := &retrieve.Retriever{
		Fetcher:   fetcher,
		Extractor: trafilatura.NewExtractor(),
		Fallback:  readability.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
	}

	// The condenser and token counter need Gemini; preview and offline
	// runs work without either.
	var tokens docload.TokenCounter
	if !cli.Preview && !cli.Offline {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set (use --offline to fetch without condensing)")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		retriever.Condenser = gemini.NewCondenser(client)

		tokenCounter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		tokens = tokenCounter
	}

	var ret docload.Retriever = retriever
	if logger != nil {
		ret = docslog.NewLoggingRetriever(ret, logger)
	}

	deps.Loader = &load.Loader{
		Store:     store,
		Retriever: ret,
		HTMLLinks: goquery.NewLinkExtractor(),
		Tokens:    tokens,
	}
	if cli.RPS > 0 {
		deps.Loader.Limiter = load.NewDomainLimiter(cli.RPS)
	}

	out := cli.Out
	if out == "" {
		out = os.Getenv("DOCLOAD_OUT")
	}
	if out != "" {
		deps.Writer = fs.NewWriter(out)
	}

	cmd := &LoadCmd{
		Input: docload.RunInput{
			Scope:       docload.NormalizeScope(cli.Scope),
			DocsRoot:    cli.Root,
			Concurrency: cli.Concurrency,
			P0Cap:       cli.P0Cap,
			P1Cap:       cli.P1Cap,
			TimeBudget:  cli.Budget,
			Filter:      filter,
		},
		Preview: cli.Preview,
		JSON:    cli.JSON,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Preview     bool          `short:"p" help:"Classify links without fetching anything"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit within a sub-batch"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Budget      time.Duration `short:"b" help:"Overall time budget for the run (0 = none)"`
	P0Cap       int           `name:"p0-cap" default:"6" help:"Maximum links admitted to tier P0"`
	P1Cap       int           `name:"p1-cap" default:"6" help:"Maximum links admitted to tier P1"`
	RPS         float64       `name:"rps" default:"1" help:"Max requests per second per domain (0 = unlimited)"`
	Include     []string      `short:"i" help:"Only consider URLs matching this regex (repeatable)"`
	Exclude     []string      `short:"x" help:"Skip URLs matching this regex (repeatable)"`
	Out         string        `short:"o" help:"Write fetched pages under this directory"`
	JSON        bool          `name:"json" help:"Print the report as JSON"`
	Offline     bool          `help:"Fetch without Gemini condensing or token counts"`
	Verbose     bool          `short:"v" help:"Log operations to stderr"`
	Root        string        `arg:"" required:"" help:"Documentation directory to scan"`
	Scope       string        `arg:"" optional:"" default:"core" help:"Load scope: core, all, or a feature name"`
}
