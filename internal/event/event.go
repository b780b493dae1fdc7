package event

import (
	"sort"
	"time"
)

// Winner is the first finisher of one category at a single event.
// AthleteID is nil for unregistered or guest athletes, Seconds is nil when
// the finish time could not be parsed. Name is empty when the source carried
// a placeholder ("Unknown") instead of a real name.
type Winner struct {
	Name      string `json:"name,omitempty"`
	AthleteID *int   `json:"athlete_id,omitempty"`
	Seconds   *int   `json:"seconds,omitempty"`
}

// IsZero reports whether the winner carries no information at all.
func (w *Winner) IsZero() bool {
	return w == nil || (w.Name == "" && w.AthleteID == nil && w.Seconds == nil)
}

// Record represents one completed occurrence of the recurring event.
type Record struct {
	Number     int       `json:"number"`
	Date       time.Time `json:"date"`
	Finishers  int       `json:"finishers"`
	Volunteers int       `json:"volunteers"`
	MaleFirst  *Winner   `json:"male_first,omitempty"`
	FemaleFirst *Winner  `json:"female_first,omitempty"`

	// Degraded marks records whose finisher/volunteer counts failed to
	// parse and were defaulted to zero. Count-based averages skip them.
	Degraded bool `json:"degraded,omitempty"`
}

// SortByDate orders records by date ascending, with event number as the
// tiebreaker so ordering is total and deterministic.
func SortByDate(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].Number < records[j].Number
	})
}

// PageStats holds the overall figures published alongside the history table
// (the page's summary panel). These cover the full participant population,
// which the per-event rows do not expose. All fields are optional; a zero
// value means the panel did not carry that figure.
type PageStats struct {
	Title             string `json:"title,omitempty"`
	Finishes          int    `json:"finishes,omitempty"`
	Finishers         int    `json:"finishers,omitempty"`
	Volunteers        int    `json:"volunteers,omitempty"`
	PersonalBests     int    `json:"personal_bests,omitempty"`
	Groups            int    `json:"groups,omitempty"`
	MeanFinishSeconds int    `json:"mean_finish_seconds,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
}
