package export

import (
	"fmt"
	"io"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/xuri/excelize/v2"
)

const maxSheetNameLength = 31

// WriteXLSX writes the record sequence as a single-sheet workbook with a
// bold header row. title names the sheet; empty falls back to a generic one.
func WriteXLSX(w io.Writer, records []*event.Record, title string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := sheetRow(rec)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing event %d: %w", rec.Number, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// sheetRow keeps numeric cells numeric rather than flattening all values to
// text the way the CSV does.
func sheetRow(rec *event.Record) []interface{} {
	row := []interface{}{rec.Number, event.FormatDate(rec.Date), rec.Finishers, rec.Volunteers}
	for _, w := range []*event.Winner{rec.MaleFirst, rec.FemaleFirst} {
		if w == nil {
			row = append(row, nil, nil, nil)
			continue
		}
		var id, secs interface{}
		if w.AthleteID != nil {
			id = *w.AthleteID
		}
		if w.Seconds != nil {
			secs = *w.Seconds
		}
		row = append(row, w.Name, id, secs)
	}
	return row
}

func sheetName(title string) string {
	if title == "" {
		return "Event History"
	}
	name := title + " parkrun"
	if len(name) > maxSheetNameLength {
		name = name[:maxSheetNameLength]
	}
	return name
}
