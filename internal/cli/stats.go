package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/filter"
	"github.com/pfrederiksen/parkrun-stats/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compute the statistics bundle for an event history page",
		RunE:  runStats,
	}

	cmd.Flags().StringVar(&flagFile, "file", "", "Path to a saved event history HTML file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Event URL, e.g. https://www.parkrun.org.uk/bushy/")
	cmd.Flags().StringVar(&flagFilter, "filter", "", `Record filter, e.g. "from:2024-01-01 saturdays"`)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	html, urlName, err := loadSource(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	ext, err := extract(html)
	if err != nil {
		return err
	}

	flt, err := filter.Parse(flagFilter)
	if err != nil {
		return fmt.Errorf("parsing filter: %w", err)
	}
	records := flt.Apply(ext.Records)

	result := &Result{
		GeneratedAt:   time.Now().UTC(),
		Event:         eventName(urlName, ext),
		SkippedRows:   ext.SkippedRows,
		DuplicateRows: ext.DuplicateRows,
		Stats:         stats.Aggregate(records, ext.Page),
	}

	if err := WriteOutput(os.Stdout, result, OutputFormat(cfg.Format)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
