package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/parkrun-stats/internal/export"
	"github.com/pfrederiksen/parkrun-stats/internal/filter"
	"github.com/pfrederiksen/parkrun-stats/internal/logger"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the event record sequence to a tabular file",
		Long: `Writes the extracted record sequence to a tabular file.
The output format follows the file extension: .csv or .xlsx.`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&flagFile, "file", "", "Path to a saved event history HTML file")
	cmd.Flags().StringVar(&flagURL, "url", "", "Event URL, e.g. https://www.parkrun.org.uk/bushy/")
	cmd.Flags().StringVar(&flagFilter, "filter", "", `Record filter, e.g. "from:2024-01-01 saturdays"`)
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path ending in .csv or .xlsx (required)")
	cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(flagOut)) {
	case ".csv":
		if err := export.WriteCSV(out, records); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("closing output file: %w", err)
		}
		verifyCSV(flagOut, len(records))
	case ".xlsx":
		if err := export.WriteXLSX(out, records, eventName(urlName, ext)); err != nil {
			return fmt.Errorf("writing XLSX: %w", err)
		}
		if err := out.Close(); err != nil {
			return fmt.Errorf("closing output file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output extension %q (use .csv or .xlsx)", filepath.Ext(flagOut))
	}

	fmt.Printf("Wrote %d events to %s\n", len(records), flagOut)
	return nil
}

// verifyCSV re-parses the file just written and checks the record count
// survives the round trip. Failures are logged, not fatal: the file is
// already on disk for the user to inspect.
func verifyCSV(path string, want int) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("could not re-open export for verification", logger.Fields{"path": path})
		return
	}
	defer f.Close()

	records, skipped, err := export.ReadCSV(f)
	if err != nil || skipped > 0 || len(records) != want {
		logger.Warn("export round-trip mismatch", logger.Fields{
			"path": path, "wrote": want, "read": len(records), "skipped": skipped,
		})
		return
	}
	logger.Debug("export round-trip verified", logger.Fields{"path": path, "records": want})
}
