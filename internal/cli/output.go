package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/normalize"
	"github.com/pfrederiksen/parkrun-stats/internal/stats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// leaderboardDisplay caps the winners shown in text output; JSON carries the
// full leaderboard.
const leaderboardDisplay = 3

// Result contains data to be output by the stats command
type Result struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Event         string        `json:"event,omitempty"`
	SkippedRows   int           `json:"skipped_rows,omitempty"`
	DuplicateRows int           `json:"duplicate_rows,omitempty"`
	Stats         *stats.Bundle `json:"stats"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *Result) error {
	b := result.Stats

	if result.Event != "" {
		fmt.Fprintf(w, "%s parkrun - Statistics\n\n", result.Event)
	}

	fmt.Fprintf(w, "Mean finishers: %.1f\n", b.MeanFinishers)
	fmt.Fprintf(w, "Median finishers: %.0f\n", b.MedianFinishers)
	fmt.Fprintf(w, "Mean volunteers: %.1f\n", b.MeanVolunteers)
	fmt.Fprintf(w, "Median volunteers: %.0f\n", b.MedianVolunteers)

	fmt.Fprintf(w, "Male course record: %s\n", courseRecordLine(b.MaleRecord))
	fmt.Fprintf(w, "Female course record: %s\n", courseRecordLine(b.FemaleRecord))
	if b.MeanFirstMaleSeconds > 0 {
		fmt.Fprintf(w, "Mean male 1st time: %s\n", normalize.FormatElapsed(b.MeanFirstMaleSeconds))
	}
	if b.MeanFirstFemaleSeconds > 0 {
		fmt.Fprintf(w, "Mean female 1st time: %s\n", normalize.FormatElapsed(b.MeanFirstFemaleSeconds))
	}

	writeLeaderboard(w, "male", b.MaleLeaderboard)
	writeLeaderboard(w, "female", b.FemaleLeaderboard)

	fmt.Fprintf(w, "\nEvent count: %d\n", b.EventCount)
	fmt.Fprintf(w, "Cancellation rate: %.1f%%\n", b.CancellationRate*100)
	fmt.Fprintf(w, "Total finishes: %d\n", b.TotalFinishes)

	if b.UniqueFinishers > 0 {
		fmt.Fprintf(w, "Finishers: %d\n", b.UniqueFinishers)
	}
	if b.UniqueVolunteers > 0 {
		fmt.Fprintf(w, "Volunteers: %d\n", b.UniqueVolunteers)
	}
	if b.PersonalBests > 0 {
		fmt.Fprintf(w, "Personal bests: %d\n", b.PersonalBests)
	}
	if b.MeanFinishSeconds > 0 {
		fmt.Fprintf(w, "Mean finish time: %s\n", normalize.FormatElapsed(b.MeanFinishSeconds))
	}
	if b.Groups > 0 {
		fmt.Fprintf(w, "Groups: %d\n", b.Groups)
	}
	if b.ContactEmail != "" {
		fmt.Fprintf(w, "Email: %s\n", b.ContactEmail)
	}

	if result.SkippedRows > 0 {
		fmt.Fprintf(w, "\nNote: %d rows could not be parsed and were skipped.\n", result.SkippedRows)
	}

	return nil
}

func courseRecordLine(rec *stats.CourseRecord) string {
	if rec == nil || rec.Winner.Seconds == nil {
		return "no parsable times"
	}
	return fmt.Sprintf("%s | %s (event #%d, %s)",
		winnerName(rec.Winner.Name, rec.Winner.AthleteID),
		normalize.FormatElapsed(*rec.Winner.Seconds),
		rec.EventNumber, rec.Date.Format("2006-01-02"))
}

func writeLeaderboard(w io.Writer, category string, board []stats.LeaderboardEntry) {
	if len(board) == 0 {
		return
	}
	fmt.Fprintf(w, "\nMost frequent %s winners:\n", category)
	for i, entry := range board {
		if i == leaderboardDisplay {
			break
		}
		fmt.Fprintf(w, "  %d. %s | x%d\n", i+1, winnerName(entry.Name, entry.AthleteID), entry.Wins)
	}
}

func winnerName(name string, athleteID *int) string {
	if name == "" {
		name = "Unknown"
	}
	if athleteID != nil {
		return fmt.Sprintf("%s | A%d", name, *athleteID)
	}
	return name
}
