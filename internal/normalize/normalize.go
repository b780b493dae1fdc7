package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// maxElapsedSeconds rejects values over 24 hours as unparsable garbage
// rather than real finish times.
const maxElapsedSeconds = 24 * 60 * 60

// placeholders are source sentinels that mean "no name recorded".
var placeholders = map[string]bool{
	"unknown": true,
	"n/a":     true,
	"-":       true,
	"—":       true,
}

// ParseElapsed converts finish-time text to elapsed seconds.
// Accepts "MM:SS" and "H:MM:SS". Returns ok=false for negative, absurd
// (> 24h) or otherwise unparsable input.
func ParseElapsed(text string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}

	if total > maxElapsedSeconds {
		return 0, false
	}
	return total, true
}

// FormatElapsed renders elapsed seconds as "MM:SS", or "H:MM:SS" once the
// hour mark is crossed.
func FormatElapsed(seconds int) string {
	minutes, secs := seconds/60, seconds%60
	if minutes >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", minutes/60, minutes%60, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// CleanName trims decorative whitespace and markup leftovers from athlete
// name text, preserving it as display text. Placeholder sentinels like
// "Unknown" come back as the empty string so absence stays explicit.
func CleanName(text string) string {
	cleaned := strings.Join(strings.Fields(strings.ReplaceAll(text, " ", " ")), " ")
	if placeholders[strings.ToLower(cleaned)] {
		return ""
	}
	return cleaned
}

// GroupKey folds a cleaned display name into the key used for grouping.
// Display text and grouping key are deliberately distinct: the key is
// case-insensitive, the display value is not.
func GroupKey(name string) string {
	return strings.ToLower(name)
}

// ParseCount parses a non-negative integer count, tolerating the
// thousands separators the page uses ("1,234"). ok=false on failure.
func ParseCount(text string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	n, err := strconv.Atoi(cleaned)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
