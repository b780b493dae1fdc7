package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/logger"
	"github.com/pfrederiksen/parkrun-stats/internal/storage"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report results published since the last check",
		Long: `Extracts the event history, compares it against the stored snapshot and
reports newly published results. The snapshot is updated afterwards.
Exit code 2 means new results were found.`,
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&flagFile, "file", "", "Path to a saved event history HTML file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Event URL, e.g. https://www.parkrun.org.uk/bushy/")
	cmd.Flags().StringVar(&flagEvent, "event", "", "Snapshot name override (useful with --file)")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh snapshot without reporting new results")

	return cmd
}

// checkResult is the JSON shape of the check command's output.
type checkResult struct {
	CheckedAt  time.Time       `json:"checked_at"`
	Event      string          `json:"event"`
	NewRecords []*event.Record `json:"new_records"`
	NewCount   int             `json:"new_count"`
}

func runCheck(cmd *cobra.Command, args []string) error {
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
	name := eventName(urlName, ext)

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	var previous *event.Snapshot
	if !flagRefresh {
		previous, err = store.LoadSnapshot(name)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		logger.Debug("loaded previous snapshot", logger.Fields{"event": name, "records": len(previous.Records)})
	}

	diff := event.Diff(previous, ext.Records)

	if err := store.CreateSnapshotFromRecords(ext.Records, name); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagRefresh {
		fmt.Println("Snapshot refreshed successfully.")
		return nil
	}

	result := &checkResult{
		CheckedAt:  time.Now().UTC(),
		Event:      name,
		NewRecords: diff.NewRecords,
		NewCount:   len(diff.NewRecords),
	}
	if err := writeCheckOutput(result, OutputFormat(cfg.Format)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(diff.NewRecords) > 0 {
		os.Exit(ExitNewEvents)
	}
	os.Exit(ExitSuccess)
	return nil
}

func writeCheckOutput(result *checkResult, format OutputFormat) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if result.NewCount == 0 {
		fmt.Println("No new results found.")
		return nil
	}
	for _, rec := range result.NewRecords {
		fmt.Printf("NEW: event #%d on %s (%d finishers, %d volunteers)\n",
			rec.Number, event.FormatDate(rec.Date), rec.Finishers, rec.Volunteers)
	}
	fmt.Printf("\nTotal: %d new results\n", result.NewCount)
	return nil
}
