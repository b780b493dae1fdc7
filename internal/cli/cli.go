package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pfrederiksen/parkrun-stats/internal/config"
	"github.com/pfrederiksen/parkrun-stats/internal/fetch"
	"github.com/pfrederiksen/parkrun-stats/internal/logger"
	"github.com/pfrederiksen/parkrun-stats/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess   = 0
	ExitError     = 1
	ExitNewEvents = 2
)

var (
	flagConfig  string
	flagDataDir string
	flagFormat  string
	flagVerbose bool

	flagFile   string
	flagURL    string
	flagFilter string
	flagOut    string
	flagEvent  string
	flagRefresh bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parkrun-stats",
		Short: "Extract and summarize parkrun event history data",
		Long: `A CLI tool to extract parkrun event history data and derive statistics.
Reads a saved event history HTML file or fetches the page directly, then
computes popularity, competitive and cadence statistics for the event.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for snapshots (overrides config)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "", "Output format: text or json (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// loadConfig layers config sources and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("invalid format: %s (must be 'text' or 'json')", cfg.Format)
	}
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}
	return cfg, nil
}

// loadSource resolves the input markup from --file or --url. The returned
// name is the event name from the URL, empty for file input (callers fall
// back to the page title).
func loadSource(ctx context.Context, cfg *config.Config) (html, name string, err error) {
	switch {
	case flagFile == "" && flagURL == "":
		return "", "", errors.New("either --file or --url is required")
	case flagFile != "" && flagURL != "":
		return "", "", errors.New("--file and --url are mutually exclusive")
	case flagFile != "":
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", "", fmt.Errorf("reading input file: %w", err)
		}
		return string(data), "", nil
	default:
		url, name, err := fetch.ParseURL(flagURL)
		if err != nil {
			return "", "", err
		}
		logger.Info("fetching event history", logger.Fields{"url": url})
		f := fetch.New(cfg.UserAgent, cfg.FetchTimeout())
		html, err := f.Fetch(ctx, url)
		if err != nil {
			return "", "", err
		}
		return html, name, nil
	}
}

// extract runs the table extractor and surfaces parse-quality warnings.
func extract(html string) (*scraper.Extraction, error) {
	ext, err := scraper.Extract(html)
	if err != nil {
		if errors.Is(err, scraper.ErrTableNotFound) {
			return nil, fmt.Errorf("%w - re-check that the input is an event history page", err)
		}
		if errors.Is(err, scraper.ErrEmptyTable) {
			return nil, fmt.Errorf("%w - the event may have no history yet", err)
		}
		return nil, err
	}

	total := len(ext.Records) + ext.SkippedRows
	if ext.SkippedRows > 0 {
		fields := logger.Fields{"skipped": ext.SkippedRows, "kept": len(ext.Records)}
		if ext.SkippedRows*10 >= total {
			logger.Warn("large fraction of rows failed to parse; the page markup may have drifted", fields)
		} else {
			logger.Debug("skipped unparsable rows", fields)
		}
	}
	if ext.DuplicateRows > 0 {
		logger.Debug("dropped duplicate rows", logger.Fields{"duplicates": ext.DuplicateRows})
	}

	return ext, nil
}

// eventName picks the snapshot/display name: URL-derived when fetching,
// --event override, then the page title.
func eventName(urlName string, ext *scraper.Extraction) string {
	if flagEvent != "" {
		return flagEvent
	}
	if urlName != "" {
		return urlName
	}
	if ext.Page != nil {
		return ext.Page.Title
	}
	return ""
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
