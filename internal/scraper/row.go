package scraper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/normalize"
)

// Row-level errors. Rows failing with these are skipped and counted, never
// fatal to the extraction.
var (
	ErrMalformedRow = errors.New("malformed row")
	ErrMissingKey   = errors.New("missing event number or date")
)

// Canonical cell layout shared by the HTML table and the tabular export.
const (
	colNumber = iota
	colDate
	colFinishers
	colVolunteers
	colMaleName
	colMaleID
	colMaleTime
	colFemaleName
	colFemaleID
	colFemaleTime

	columnCount = 10
	minColumns  = 4
)

// CellReader provides nth-cell text over one table row. It insulates the
// row parser from the markup shape; there is one implementation per shape.
type CellReader interface {
	Cells() int
	Cell(i int) string
}

// SliceCells adapts an in-memory cell slice (e.g. a CSV record) to CellReader.
type SliceCells []string

func (s SliceCells) Cells() int { return len(s) }

func (s SliceCells) Cell(i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}

// ParseRow converts one row of cells into a Record.
//
// Event number and date are required; without them the row cannot be ordered
// or aggregated, so it is rejected with ErrMissingKey. Unparsable finisher or
// volunteer counts default to zero and mark the record Degraded instead of
// rejecting it. Winner fields are each independently optional.
func ParseRow(r CellReader) (*event.Record, error) {
	if r.Cells() < minColumns {
		return nil, fmt.Errorf("%w: got %d cells, want at least %d", ErrMalformedRow, r.Cells(), minColumns)
	}

	number, err := strconv.Atoi(strings.TrimSpace(r.Cell(colNumber)))
	if err != nil || number <= 0 {
		return nil, fmt.Errorf("%w: event number %q", ErrMissingKey, r.Cell(colNumber))
	}

	date := event.ParseDate(strings.TrimSpace(r.Cell(colDate)))
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date %q", ErrMissingKey, r.Cell(colDate))
	}

	finishers, finOK := normalize.ParseCount(r.Cell(colFinishers))
	volunteers, volOK := normalize.ParseCount(r.Cell(colVolunteers))

	return &event.Record{
		Number:      number,
		Date:        date,
		Finishers:   finishers,
		Volunteers:  volunteers,
		MaleFirst:   parseWinner(r, colMaleName),
		FemaleFirst: parseWinner(r, colFemaleName),
		Degraded:    !finOK || !volOK,
	}, nil
}

// parseWinner reads the name/ID/time cell triple starting at base.
// Returns nil when all three are absent.
func parseWinner(r CellReader, base int) *event.Winner {
	w := &event.Winner{
		Name: normalize.CleanName(r.Cell(base)),
	}

	if id, err := strconv.Atoi(strings.TrimSpace(r.Cell(base + 1))); err == nil && id > 0 {
		w.AthleteID = &id
	}

	if secs, ok := parseSecondsCell(r.Cell(base + 2)); ok {
		w.Seconds = &secs
	}

	if w.IsZero() {
		return nil
	}
	return w
}

// parseSecondsCell accepts both the page's clock forms ("16:45", "1:02:03")
// and the export's plain integer seconds.
func parseSecondsCell(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	if strings.Contains(text, ":") {
		return normalize.ParseElapsed(text)
	}
	secs, err := strconv.Atoi(text)
	if err != nil || secs < 0 {
		return 0, false
	}
	return secs, true
}
