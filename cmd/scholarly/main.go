package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/analyze"
	"github.com/fwojciec/scholarly/fs"
	"github.com/fwojciec/scholarly/gemini"
	"github.com/fwojciec/scholarly/goquery"
	schttp "github.com/fwojciec/scholarly/http"
	"github.com/fwojciec/scholarly/openai"
	"github.com/fwojciec/scholarly/pdf"
	"github.com/fwojciec/scholarly/rod"
	scslog "github.com/fwojciec/scholarly/slog"
	"github.com/fwojciec/scholarly/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Stdin is read by commands that accept "-" as a file argument.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	AnalysisService scholarly.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scholarly"),
		kong.Description("Analyze academic profile pages and personalise outreach emails"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scholarly --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	// Open database
	if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SCHOLARLY_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService
	if cli.Debug {
		deps.Analyses = scslog.NewLoggingAnalysisService(m.AnalysisService, logger)
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "analyze":
		closeFetcher, err := m.wireAnalyzer(deps, logger, cli.Debug, analyzerConfig{
			browser: cli.Analyze.Browser,
			timeout: cli.Analyze.Timeout,
			top:     cli.Analyze.Top,
			save:    !cli.Analyze.NoSave,
		})
		if err != nil {
			return err
		}
		defer closeFetcher()

		if cli.Analyze.Export != "" {
			switch cli.Analyze.ExportFormat {
			case "pdf":
				deps.Exporter = pdf.NewExporter(cli.Analyze.Export)
			default:
				deps.Exporter = fs.NewExporter(cli.Analyze.Export)
			}
		}

	case "email":
		closeFetcher, err := m.wireAnalyzer(deps, logger, cli.Debug, analyzerConfig{
			browser: cli.Email.Browser,
			timeout: cli.Email.Timeout,
			save:    true,
		})
		if err != nil {
			return err
		}
		defer closeFetcher()

		composer, err := newComposer(ctx, &cli.Email, stderr)
		if err != nil {
			return err
		}
		deps.Composer = composer
		if cli.Debug {
			deps.Composer = scslog.NewLoggingComposer(composer, logger)
		}
	}

	return kongCtx.Run(deps)
}

type analyzerConfig struct {
	browser bool
	timeout time.Duration
	top     int
	save    bool
}

// wireAnalyzer builds the analyzer and returns a function releasing its fetcher.
func (m *Main) wireAnalyzer(deps *Dependencies, logger *slog.Logger, debug bool, cfg analyzerConfig) (func(), error) {
	browserOpts := []rod.Option{
		rod.WithFetchTimeout(cfg.timeout),
		rod.WithUserAgent(schttp.DefaultUserAgent),
	}

	// Without --browser, a headless browser is launched only for blocked pages.
	var fetcher, fallback scholarly.Fetcher
	if cfg.browser {
		rodFetcher, err := rod.NewFetcher(browserOpts...)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = schttp.NewFetcher(schttp.WithTimeout(cfg.timeout))
		fallback = rod.NewLazyFetcher(browserOpts...)
	}

	var extractor scholarly.ProfileExtractor = goquery.NewExtractor()
	if debug {
		fetcher = scslog.NewLoggingFetcher(fetcher, logger)
		if fallback != nil {
			fallback = scslog.NewLoggingFetcher(fallback, logger)
		}
		extractor = scslog.NewLoggingExtractor(extractor, logger)
	}

	a := &analyze.Analyzer{
		Fetcher:    fetcher,
		Fallback:   fallback,
		Extractor:  extractor,
		Detector:   goquery.NewDetector(goquery.ScholarLayout()),
		Summarizer: scholarly.Summarizer{MaxPublications: cfg.top},
	}
	if cfg.save {
		a.Analyses = deps.Analyses
	}
	if debug {
		a.Log = func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}
	}
	deps.Analyzer = a

	return func() {
		_ = fetcher.Close()
		if fallback != nil {
			_ = fallback.Close()
		}
	}, nil
}

// newComposer returns the email composer for the configured provider.
func newComposer(ctx context.Context, c *EmailCmd, stderr io.Writer) (scholarly.EmailComposer, error) {
	switch c.Provider {
	case "openai":
		if c.OpenAIAPIKey == "" && c.OpenAIBaseURL == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Set OPENAI_BASE_URL to use a local OpenAI-compatible server.")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(c.OpenAIAPIKey, c.OpenAIBaseURL)
		return openai.NewComposer(client, openai.WithModel(c.Model)), nil

	default:
		if c.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.GeminiAPIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		opts := []gemini.Option{gemini.WithModel(c.Model)}
		if c.MaxTokens > 0 {
			model := c.Model
			if model == "" {
				model = gemini.DefaultModel
			}
			counter, err := gemini.NewTokenCounter(model)
			if err != nil {
				return nil, fmt.Errorf("failed to create token counter: %w", err)
			}
			opts = append(opts, gemini.WithTokenLimit(counter, c.MaxTokens))
		}
		return gemini.NewComposer(client, opts...), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("SCHOLARLY_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "scholarly.db"
	}
	return filepath.Join(home, ".scholarly", "scholarly.db")
}
