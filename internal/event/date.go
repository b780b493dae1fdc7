package event

import "time"

// ParseDate attempts to parse an event date into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports the page's "02/01/2006" form and ISO "2006-01-02" (used by the
// tabular export, so re-imported files parse through the same path).
func ParseDate(text string) time.Time {
	if text == "" {
		return time.Time{}
	}

	// Try "06/01/2024" format (day/month/year, as on the page)
	t, err := time.Parse("02/01/2006", text)
	if err == nil {
		return t
	}

	// Try "2024-01-06" format
	t, err = time.Parse("2006-01-02", text)
	if err == nil {
		return t
	}

	// Try "6/1/2024" format (single digit day/month)
	t, err = time.Parse("2/1/2006", text)
	if err == nil {
		return t
	}

	return time.Time{}
}

// FormatDate renders a date in the ISO form the exports use.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
