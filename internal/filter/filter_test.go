package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayp(s string) *time.Time {
	d := day(s)
	return &d
}

func rec(number int, date string) *event.Record {
	return &event.Record{Number: number, Date: day(date), Finishers: 100, Volunteers: 10}
}

func TestFilterIsEmpty(t *testing.T) {
	if !(&Filter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (&Filter{SaturdaysOnly: true}).IsEmpty() {
		t.Error("filter with criteria should not be empty")
	}
	if (&Filter{DateFrom: dayp("2024-01-01")}).IsEmpty() {
		t.Error("filter with date bound should not be empty")
	}
}

func TestFilterMatches(t *testing.T) {
	degraded := rec(3, "2024-01-20")
	degraded.Degraded = true

	tests := []struct {
		name     string
		filter   Filter
		record   *event.Record
		expected bool
	}{
		{"empty matches all", Filter{}, rec(1, "2024-01-06"), true},
		{"within range", Filter{DateFrom: dayp("2024-01-01"), DateTo: dayp("2024-01-31")}, rec(1, "2024-01-06"), true},
		{"before from", Filter{DateFrom: dayp("2024-01-10")}, rec(1, "2024-01-06"), false},
		{"after to", Filter{DateTo: dayp("2024-01-10")}, rec(2, "2024-01-13"), false},
		{"on from boundary", Filter{DateFrom: dayp("2024-01-06")}, rec(1, "2024-01-06"), true},
		{"on to boundary", Filter{DateTo: dayp("2024-01-06")}, rec(1, "2024-01-06"), true},
		{"saturdays keeps saturday", Filter{SaturdaysOnly: true}, rec(1, "2024-01-06"), true},
		{"saturdays drops monday", Filter{SaturdaysOnly: true}, rec(1, "2024-01-01"), false},
		{"complete drops degraded", Filter{CompleteOnly: true}, degraded, false},
		{"complete keeps intact", Filter{CompleteOnly: true}, rec(1, "2024-01-06"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.record); got != tt.expected {
				t.Errorf("Matches() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	records := []*event.Record{
		rec(1, "2024-01-06"),
		rec(2, "2024-01-13"),
		rec(3, "2024-01-20"),
	}

	f := &Filter{DateFrom: dayp("2024-01-10")}
	kept := f.Apply(records)

	if len(kept) != 2 {
		t.Fatalf("expected 2 records, got %d", len(kept))
	}
	if kept[0].Number != 2 || kept[1].Number != 3 {
		t.Errorf("unexpected order: %d, %d", kept[0].Number, kept[1].Number)
	}
	if len(records) != 3 {
		t.Error("Apply must not modify the input slice")
	}
}

func TestFilterApplyEmptyPassthrough(t *testing.T) {
	records := []*event.Record{rec(1, "2024-01-06")}
	kept := (&Filter{}).Apply(records)
	if len(kept) != 1 {
		t.Fatalf("expected passthrough, got %d records", len(kept))
	}
}
