package stats

import (
	"math"
	"sort"
	"strconv"
	"time"

	mathstats "github.com/montanaflynn/stats"
	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/normalize"
)

// leaderboardSize caps the most-frequent-winners lists.
const leaderboardSize = 10

// CourseRecord is the fastest first-place time for one category, together
// with the event it was set at.
type CourseRecord struct {
	Winner      event.Winner `json:"winner"`
	EventNumber int          `json:"event_number"`
	Date        time.Time    `json:"date"`
}

// LeaderboardEntry is one athlete's win count in a category leaderboard.
type LeaderboardEntry struct {
	Name      string `json:"name,omitempty"`
	AthleteID *int   `json:"athlete_id,omitempty"`
	Wins      int    `json:"wins"`
}

// Bundle is the full derived statistics set for one record sequence.
// Numeric fields are zero when the underlying data is insufficient; pointer
// and slice fields are nil or empty. A Bundle is immutable once produced.
type Bundle struct {
	// Popularity. Degraded records are excluded from these four figures,
	// never from the totals or the competitive metrics.
	MeanFinishers    float64 `json:"mean_finishers"`
	MedianFinishers  float64 `json:"median_finishers"`
	MeanVolunteers   float64 `json:"mean_volunteers"`
	MedianVolunteers float64 `json:"median_volunteers"`

	// Competitive.
	MaleRecord             *CourseRecord      `json:"male_record,omitempty"`
	FemaleRecord           *CourseRecord      `json:"female_record,omitempty"`
	MeanFirstMaleSeconds   int                `json:"mean_first_male_seconds,omitempty"`
	MeanFirstFemaleSeconds int                `json:"mean_first_female_seconds,omitempty"`
	MaleLeaderboard        []LeaderboardEntry `json:"male_leaderboard,omitempty"`
	FemaleLeaderboard      []LeaderboardEntry `json:"female_leaderboard,omitempty"`

	// General.
	EventCount       int     `json:"event_count"`
	CancellationRate float64 `json:"cancellation_rate"`
	TotalFinishes    int     `json:"total_finishes"`

	// Population figures from the page summary side-channel; zero/empty
	// when the panel was not captured.
	UniqueFinishers   int    `json:"unique_finishers,omitempty"`
	UniqueVolunteers  int    `json:"unique_volunteers,omitempty"`
	Groups            int    `json:"groups,omitempty"`
	PersonalBests     int    `json:"personal_bests,omitempty"`
	MeanFinishSeconds int    `json:"mean_finish_seconds,omitempty"`
	ContactEmail      string `json:"contact_email,omitempty"`
}

// Aggregate computes the bundle for a record sequence. It never errors: an
// empty sequence yields a zero-valued bundle, so it stays safe to call
// standalone even though the extractor already guards against empty tables.
// page may be nil when the summary side-channel is unavailable.
func Aggregate(records []*event.Record, page *event.PageStats) *Bundle {
	b := &Bundle{EventCount: len(records)}

	var finishers, volunteers []float64
	for _, rec := range records {
		// The finishes total keeps every record: a defaulted count adds
		// zero, and a record degraded only on volunteers still carries a
		// real finishers count.
		b.TotalFinishes += rec.Finishers
		if rec.Degraded {
			continue
		}
		finishers = append(finishers, float64(rec.Finishers))
		volunteers = append(volunteers, float64(rec.Volunteers))
	}
	b.MeanFinishers, b.MedianFinishers = meanMedian(finishers)
	b.MeanVolunteers, b.MedianVolunteers = meanMedian(volunteers)

	b.MaleRecord, b.MeanFirstMaleSeconds, b.MaleLeaderboard = firstFinisherStats(records, func(r *event.Record) *event.Winner { return r.MaleFirst })
	b.FemaleRecord, b.MeanFirstFemaleSeconds, b.FemaleLeaderboard = firstFinisherStats(records, func(r *event.Record) *event.Winner { return r.FemaleFirst })

	b.CancellationRate = cancellationRate(records)

	if page != nil {
		b.UniqueFinishers = page.Finishers
		b.UniqueVolunteers = page.Volunteers
		b.Groups = page.Groups
		b.PersonalBests = page.PersonalBests
		b.MeanFinishSeconds = page.MeanFinishSeconds
		b.ContactEmail = page.ContactEmail
		if page.Finishes > 0 {
			// The panel's finishes total covers the event's whole
			// lifetime; prefer it over the per-row sum when present.
			b.TotalFinishes = page.Finishes
		}
	}

	return b
}

func meanMedian(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean, _ := mathstats.Mean(values)
	median, _ := mathstats.Median(values)
	return mean, median
}

// firstFinisherStats derives the course record, mean first time and win
// leaderboard for one category.
func firstFinisherStats(records []*event.Record, pick func(*event.Record) *event.Winner) (*CourseRecord, int, []LeaderboardEntry) {
	var best *CourseRecord
	var seconds []float64

	wins := make(map[string]*LeaderboardEntry)

	for _, rec := range records {
		w := pick(rec)
		if w == nil {
			continue
		}

		if w.Seconds != nil {
			seconds = append(seconds, float64(*w.Seconds))
			// Strict less-than plus the date check keeps the record
			// with the first athlete to achieve the time.
			if best == nil || *w.Seconds < *best.Winner.Seconds ||
				(*w.Seconds == *best.Winner.Seconds && rec.Date.Before(best.Date)) {
				best = &CourseRecord{Winner: *w, EventNumber: rec.Number, Date: rec.Date}
			}
		}

		// Athlete IDs are the true identity; names can collide. Fall
		// back to the case-folded name only when no ID is present, and
		// never count placeholder winners.
		key := ""
		switch {
		case w.AthleteID != nil:
			key = "id:" + strconv.Itoa(*w.AthleteID)
		case w.Name != "":
			key = "name:" + normalize.GroupKey(w.Name)
		default:
			continue
		}
		e := wins[key]
		if e == nil {
			e = &LeaderboardEntry{Name: w.Name, AthleteID: w.AthleteID}
			wins[key] = e
		}
		e.Wins++
		if e.Name == "" {
			e.Name = w.Name
		}
	}

	board := make([]LeaderboardEntry, 0, len(wins))
	for _, e := range wins {
		board = append(board, *e)
	}
	sort.Slice(board, func(i, j int) bool {
		if board[i].Wins != board[j].Wins {
			return board[i].Wins > board[j].Wins
		}
		return normalize.GroupKey(board[i].Name) < normalize.GroupKey(board[j].Name)
	})
	if len(board) > leaderboardSize {
		board = board[:leaderboardSize]
	}
	if len(board) == 0 {
		board = nil
	}

	meanSeconds := 0
	if len(seconds) > 0 {
		mean, _ := mathstats.Mean(seconds)
		meanSeconds = int(math.Round(mean))
	}

	return best, meanSeconds, board
}

// cancellationRate measures missed Saturdays between the first and last
// Saturday event. Non-Saturday special events are left out of both sides of
// the ratio; only the weekly cadence is measured. Known skew: an extended
// suspension inflates the rate, which matches the documented policy.
func cancellationRate(records []*event.Record) float64 {
	saturdays := make(map[time.Time]bool)
	var first, last time.Time
	for _, rec := range records {
		if rec.Date.Weekday() != time.Saturday {
			continue
		}
		saturdays[rec.Date] = true
		if first.IsZero() || rec.Date.Before(first) {
			first = rec.Date
		}
		if rec.Date.After(last) {
			last = rec.Date
		}
	}
	if len(saturdays) < 2 {
		return 0
	}

	expected := int(last.Sub(first).Hours()/24)/7 + 1
	return 1 - float64(len(saturdays))/float64(expected)
}
