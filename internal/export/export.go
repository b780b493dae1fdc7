package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/scraper"
)

// Columns is the tabular layout, matching the canonical cell order the row
// parser expects.
var Columns = []string{
	"Event Number", "Date", "Finishers", "Volunteers",
	"Male 1st Name", "Male 1st Athlete ID", "Male 1st Seconds",
	"Female 1st Name", "Female 1st Athlete ID", "Female 1st Seconds",
}

// recordCells flattens one record into export cells. Absent winner fields
// become empty cells, never sentinel text.
func recordCells(rec *event.Record) []string {
	cells := []string{
		strconv.Itoa(rec.Number),
		event.FormatDate(rec.Date),
		strconv.Itoa(rec.Finishers),
		strconv.Itoa(rec.Volunteers),
	}
	for _, w := range []*event.Winner{rec.MaleFirst, rec.FemaleFirst} {
		if w == nil {
			cells = append(cells, "", "", "")
			continue
		}
		id, secs := "", ""
		if w.AthleteID != nil {
			id = strconv.Itoa(*w.AthleteID)
		}
		if w.Seconds != nil {
			secs = strconv.Itoa(*w.Seconds)
		}
		cells = append(cells, w.Name, id, secs)
	}
	return cells
}

// WriteCSV writes the record sequence as CSV with a header row.
func WriteCSV(w io.Writer, records []*event.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(recordCells(rec)); err != nil {
			return fmt.Errorf("writing event %d: %w", rec.Number, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses an exported CSV back into a record sequence through the
// same row parser used for HTML rows. The second return value is the count
// of rows that failed to parse and were skipped.
func ReadCSV(r io.Reader) ([]*event.Record, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading CSV: %w", err)
	}

	var records []*event.Record
	skipped := 0
	seen := make(map[int]bool)
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		rec, err := scraper.ParseRow(scraper.SliceCells(row))
		if err != nil {
			skipped++
			continue
		}
		if seen[rec.Number] {
			continue
		}
		seen[rec.Number] = true
		records = append(records, rec)
	}
	event.SortByDate(records)
	return records, skipped, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && row[0] == Columns[0]
}
