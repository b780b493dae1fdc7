package scraper

import (
	"errors"
	"testing"
	"time"
)

func fullRow() []string {
	return []string{
		"42", "06/01/2024", "250", "20",
		"John Smith", "1001", "16:45",
		"Jane Doe", "2002", "18:30",
	}
}

func TestParseRowComplete(t *testing.T) {
	rec, err := ParseRow(SliceCells(fullRow()))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	if rec.Number != 42 {
		t.Errorf("expected event 42, got %d", rec.Number)
	}
	if !rec.Date.Equal(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", rec.Date)
	}
	if rec.Finishers != 250 || rec.Volunteers != 20 {
		t.Errorf("unexpected counts: %d/%d", rec.Finishers, rec.Volunteers)
	}
	if rec.Degraded {
		t.Error("complete row should not be degraded")
	}

	if rec.MaleFirst == nil || rec.MaleFirst.Name != "John Smith" {
		t.Fatalf("unexpected male first: %+v", rec.MaleFirst)
	}
	if rec.MaleFirst.AthleteID == nil || *rec.MaleFirst.AthleteID != 1001 {
		t.Errorf("unexpected male athlete ID: %v", rec.MaleFirst.AthleteID)
	}
	if rec.MaleFirst.Seconds == nil || *rec.MaleFirst.Seconds != 1005 {
		t.Errorf("unexpected male seconds: %v", rec.MaleFirst.Seconds)
	}
	if rec.FemaleFirst == nil || rec.FemaleFirst.Seconds == nil || *rec.FemaleFirst.Seconds != 1110 {
		t.Errorf("unexpected female first: %+v", rec.FemaleFirst)
	}
}

func TestParseRowErrors(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected error
	}{
		{"too few cells", []string{"42", "06/01/2024"}, ErrMalformedRow},
		{"empty row", nil, ErrMalformedRow},
		{"missing event number", []string{"", "06/01/2024", "250", "20"}, ErrMissingKey},
		{"non-numeric event number", []string{"abc", "06/01/2024", "250", "20"}, ErrMissingKey},
		{"zero event number", []string{"0", "06/01/2024", "250", "20"}, ErrMissingKey},
		{"missing date", []string{"42", "", "250", "20"}, ErrMissingKey},
		{"garbage date", []string{"42", "soon", "250", "20"}, ErrMissingKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRow(SliceCells(tt.cells))
			if !errors.Is(err, tt.expected) {
				t.Errorf("ParseRow() error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestParseRowDegradedCounts(t *testing.T) {
	cells := fullRow()
	cells[2] = "n/a" // finishers unparsable

	rec, err := ParseRow(SliceCells(cells))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	if !rec.Degraded {
		t.Error("expected degraded marker when finishers fail to parse")
	}
	if rec.Finishers != 0 {
		t.Errorf("expected defaulted finishers 0, got %d", rec.Finishers)
	}
	if rec.Volunteers != 20 {
		t.Errorf("expected volunteers still parsed, got %d", rec.Volunteers)
	}
	// A record degraded on counts still contributes its winner time
	if rec.MaleFirst == nil || rec.MaleFirst.Seconds == nil {
		t.Error("expected winner data to survive count degradation")
	}
}

func TestParseRowPlaceholderWinners(t *testing.T) {
	cells := []string{"42", "06/01/2024", "250", "20", "Unknown", "", "", "", "", ""}

	rec, err := ParseRow(SliceCells(cells))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	if rec.MaleFirst != nil {
		t.Errorf("expected placeholder male winner to be absent, got %+v", rec.MaleFirst)
	}
	if rec.FemaleFirst != nil {
		t.Errorf("expected empty female winner to be absent, got %+v", rec.FemaleFirst)
	}
}

func TestParseRowUnknownNameWithTime(t *testing.T) {
	// Placeholder name but a real time: absent for leaderboards, present
	// for time averages.
	cells := []string{"42", "06/01/2024", "250", "20", "Unknown", "", "17:11", "", "", ""}

	rec, err := ParseRow(SliceCells(cells))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	if rec.MaleFirst == nil {
		t.Fatal("expected winner entry to exist when a time is present")
	}
	if rec.MaleFirst.Name != "" {
		t.Errorf("expected absent name, got %q", rec.MaleFirst.Name)
	}
	if rec.MaleFirst.Seconds == nil || *rec.MaleFirst.Seconds != 1031 {
		t.Errorf("unexpected seconds: %v", rec.MaleFirst.Seconds)
	}
}

func TestParseRowPlainSecondsCell(t *testing.T) {
	// Re-imported exports carry plain integer seconds.
	cells := fullRow()
	cells[6] = "1005"

	rec, err := ParseRow(SliceCells(cells))
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	if rec.MaleFirst == nil || rec.MaleFirst.Seconds == nil || *rec.MaleFirst.Seconds != 1005 {
		t.Errorf("unexpected seconds: %+v", rec.MaleFirst)
	}
}

func TestParseRowIsPure(t *testing.T) {
	cells := SliceCells(fullRow())

	first, err := ParseRow(cells)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}
	second, err := ParseRow(cells)
	if err != nil {
		t.Fatalf("ParseRow failed: %v", err)
	}

	if first.Number != second.Number || !first.Date.Equal(second.Date) ||
		first.Finishers != second.Finishers || first.Volunteers != second.Volunteers {
		t.Error("expected identical records from identical input")
	}
	if (first.MaleFirst == nil) != (second.MaleFirst == nil) {
		t.Error("expected identical winner presence from identical input")
	}
}
