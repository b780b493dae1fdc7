package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
)

// Parse builds a Filter from a compact query string.
//
// Supported terms, whitespace separated:
//   - "from:2024-01-01" - drop records before the date
//   - "to:2024-06-30"   - drop records after the date
//   - "saturdays"       - keep only regular Saturday events
//   - "complete"        - keep only records with fully parsed counts
//
// Dates accept the same forms as the page itself ("2024-01-06" or
// "06/01/2024"). An empty query yields an empty filter.
func Parse(query string) (*Filter, error) {
	f := &Filter{}

	for _, term := range strings.Fields(query) {
		key, value, hasValue := strings.Cut(term, ":")
		switch strings.ToLower(key) {
		case "from":
			t, err := parseTermDate(value, hasValue)
			if err != nil {
				return nil, fmt.Errorf("from: %w", err)
			}
			f.DateFrom = t
		case "to":
			t, err := parseTermDate(value, hasValue)
			if err != nil {
				return nil, fmt.Errorf("to: %w", err)
			}
			f.DateTo = t
		case "saturdays":
			f.SaturdaysOnly = true
		case "complete":
			f.CompleteOnly = true
		default:
			return nil, fmt.Errorf("unknown filter term %q", term)
		}
	}

	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return nil, fmt.Errorf("from date %s is after to date %s",
			event.FormatDate(*f.DateFrom), event.FormatDate(*f.DateTo))
	}

	return f, nil
}

func parseTermDate(value string, hasValue bool) (*time.Time, error) {
	if !hasValue || value == "" {
		return nil, fmt.Errorf("missing date value")
	}
	t := event.ParseDate(value)
	if t.IsZero() {
		return nil, fmt.Errorf("unparsable date %q", value)
	}
	return &t, nil
}
