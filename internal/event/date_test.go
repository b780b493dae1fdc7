package event

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"06/01/2024", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
		{"2024-01-06", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
		{"6/1/2024", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)},
		{"31/12/2023", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
		{"32/01/2024", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseDate(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	date := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	if got := ParseDate(FormatDate(date)); !got.Equal(date) {
		t.Errorf("round trip changed date: %v -> %v", date, got)
	}
}
