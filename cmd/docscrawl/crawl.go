package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"docscrawl/internal/config"
	"docscrawl/internal/crawler"
	"docscrawl/internal/database"
	"docscrawl/internal/fetch"
	"docscrawl/internal/log"
	"docscrawl/internal/model"
	"docscrawl/internal/report"
	"docscrawl/internal/sink"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [start-url]",
		Short: "Crawl a documentation site and export its content as JSONL",
		Long: `Crawl walks a documentation site breadth-first starting from the given
URL, staying within the start URL's host and the configured path prefix.
Each page is rendered in a headless browser, converted to markdown, and
appended to pages.jsonl. Images and video links are deduplicated across
the whole crawl and written to their own files.

Examples:
  # Crawl the English docs subtree, at most 50 pages
  docscrawl crawl https://docs.example.org/en/ --prefix /en/ --max-pages 50

  # Authenticated crawl with a saved browser session
  docscrawl crawl https://docs.example.org/en/ --cookies-file session.json

  # Unbounded crawl with screenshots
  docscrawl crawl https://docs.example.org/ --max-pages 0 --screenshots

Configuration file (.docscrawl) example:
  start_url: https://docs.example.org/en/
  path_prefix: /en/
  max_pages: 100
  delay: 1s
  screenshots: true`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCrawlCmd,
	}

	// Scope flags
	cmd.Flags().StringP("prefix", "p", "",
		"Path prefix URLs must start with to be crawled (default: whole site)")

	// Crawl behavior flags
	cmd.Flags().IntP("max-pages", "n", config.DefaultMaxPages,
		"Maximum number of pages to process (0 = unlimited)")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of pages rendered per batch")
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Pause between batches")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Per-page render deadline")
	cmd.Flags().Bool("screenshots", false,
		"Capture a full-page screenshot of every page")

	// Session flags
	cmd.Flags().String("cookies-file", "",
		"JSON cookie file for authenticated crawls (storage-state export or bare cookie array)")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent sent with every page load")

	// Output flags
	cmd.Flags().StringP("out-dir", "o", config.DefaultOutputDir,
		"Directory for JSONL outputs and screenshots")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output the run summary as Markdown instead of plain text")
	cmd.Flags().String("report", "",
		"Write the run summary to the specified file instead of stdout")
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory for the run-history database (empty to disable history)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .docscrawl in current or home directory)")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Load session cookies after validation so a bad start URL is reported
	// before a bad credential file.
	if cfg.CredentialFile != "" {
		cfg.Cookies, err = config.LoadCredentialFile(cfg.CredentialFile)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// YAML defaults file. Flags the user passed explicitly win over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.StartURL = args[0]
	}

	var err error
	if cfg.PathPrefix, err = cmd.Flags().GetString("prefix"); err != nil {
		return nil, err
	}
	if cfg.MaxPages, err = cmd.Flags().GetInt("max-pages"); err != nil {
		return nil, err
	}
	if cfg.Concurrency, err = cmd.Flags().GetInt("concurrency"); err != nil {
		return nil, err
	}
	if cfg.Delay, err = cmd.Flags().GetDuration("delay"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.Screenshots, err = cmd.Flags().GetBool("screenshots"); err != nil {
		return nil, err
	}
	if cfg.CredentialFile, err = cmd.Flags().GetString("cookies-file"); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return nil, err
	}
	if cfg.OutputDir, err = cmd.Flags().GetString("out-dir"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("report"); err != nil {
		return nil, err
	}
	if cfg.DBDir, err = cmd.Flags().GetString("db-dir"); err != nil {
		return nil, err
	}
	if cfg.ConfigFilePath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	// Apply YAML defaults for anything not set on the command line.
	// An explicitly named config file must exist; the implicit search may
	// come up empty.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.ApplyTo(cfg, cmd.Flags().Changed); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runCrawl executes the crawl: browser session, fetch pool, sink, engine.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start, err := url.Parse(cfg.StartURL)
	if err != nil {
		return fmt.Errorf("invalid start URL: %w", err)
	}
	scope := crawler.NewScope(start, cfg.PathPrefix)

	fmt.Printf("Crawling %s (scope: %s%s)...\n", cfg.StartURL, scope.Host, scope.PathPrefix)
	startedAt := time.Now()

	session, err := fetch.NewSession(ctx,
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithCookies(cfg.Cookies),
	)
	if err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer session.Close()

	pool := fetch.NewPool(session,
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithScreenshots(cfg.Screenshots),
		fetch.WithLogger(logger),
	)

	writer, err := sink.New(cfg.OutputDir, cfg.Screenshots)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("failed to close output files", "error", err)
		}
	}()

	engine := crawler.New(pool, writer, scope,
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithMaxConcurrent(cfg.Concurrency),
		crawler.WithDelay(cfg.Delay),
		crawler.WithScreenshots(cfg.Screenshots),
		crawler.WithLogger(logger),
		crawler.WithProgressFunc(func(p model.Progress) {
			fmt.Printf("Processed %d pages (%d ok, %d failed, %d queued)\n",
				p.Processed, p.Succeeded, p.Failed, p.Queued)
		}),
	)

	progress, runErr := engine.Run(ctx, cfg.StartURL)
	finishedAt := time.Now()

	run := model.RunSummary{
		ID:            uuid.NewString(),
		StartURL:      cfg.StartURL,
		PathPrefix:    cfg.PathPrefix,
		OutputDir:     cfg.OutputDir,
		StartedAt:     startedAt,
		FinishedAt:    finishedAt,
		Processed:     progress.Processed,
		Succeeded:     progress.Succeeded,
		Failed:        progress.Failed,
		UniqueYoutube: progress.UniqueYoutube,
		UniqueImages:  progress.UniqueImages,
	}

	// History and summary are written even for an interrupted crawl; the
	// records already on disk are valid and worth accounting for.
	if cfg.DBDir != "" {
		if err := saveRun(ctx, cfg.DBDir, run, logger); err != nil {
			logger.Error("failed to save run history", "error", err)
		}
	}
	if err := outputReport(cfg, run); err != nil {
		logger.Error("failed to write summary", "error", err)
	}

	if runErr != nil {
		return fmt.Errorf("crawl aborted: %w", runErr)
	}
	fmt.Printf("Crawl completed in %s\n", finishedAt.Sub(startedAt).Round(time.Millisecond))
	return nil
}

// saveRun records the run in the history database.
func saveRun(ctx context.Context, dbDir string, run model.RunSummary, logger *slog.Logger) error {
	db, err := database.Open(dbDir)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Saving must survive Ctrl-C, which cancels ctx.
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := db.SaveRun(saveCtx, run); err != nil {
		return err
	}
	logger.Info("run saved to history", "id", run.ID, "db", db.Path())
	return nil
}

// outputReport writes the run summary in the requested format.
func outputReport(cfg *config.Config, run model.RunSummary) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		output = f
	} else {
		output = os.Stdout
	}

	var writer report.Writer
	if cfg.MarkdownReport {
		writer = report.NewMarkdownWriter(output)
	} else {
		writer = report.NewSimpleWriter(output)
	}
	_, err := writer.Write(run)
	return err
}
