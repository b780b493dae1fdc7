package filter

import (
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
)

// Filter represents record filtering criteria. The zero value matches
// everything.
type Filter struct {
	// Date range, inclusive on both ends.
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// SaturdaysOnly drops special-day events, leaving the weekly cadence.
	SaturdaysOnly bool `json:"saturdays_only,omitempty"`

	// CompleteOnly drops records whose counts were defaulted during
	// parsing.
	CompleteOnly bool `json:"complete_only,omitempty"`
}

// IsEmpty checks if the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil && f.DateTo == nil && !f.SaturdaysOnly && !f.CompleteOnly
}

// Matches checks if a record passes all active criteria.
func (f *Filter) Matches(rec *event.Record) bool {
	if f.DateFrom != nil && rec.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && rec.Date.After(*f.DateTo) {
		return false
	}
	if f.SaturdaysOnly && rec.Date.Weekday() != time.Saturday {
		return false
	}
	if f.CompleteOnly && rec.Degraded {
		return false
	}
	return true
}

// Apply returns the subsequence of records matching the filter. Input order
// is preserved; the input slice is not modified.
func (f *Filter) Apply(records []*event.Record) []*event.Record {
	if f.IsEmpty() {
		return records
	}
	kept := make([]*event.Record, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			kept = append(kept, rec)
		}
	}
	return kept
}
