package event

import "strconv"

// Snapshot represents the record sequence of one event at a point in time
type Snapshot struct {
	Records   map[string]*Record `json:"records"` // keyed by event number
	UpdatedAt string             `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Records: make(map[string]*Record),
	}
}

// CreateSnapshot creates a snapshot from a record sequence
func CreateSnapshot(records []*Record, updatedAt string) *Snapshot {
	snapshot := NewSnapshot()
	snapshot.UpdatedAt = updatedAt
	for _, rec := range records {
		snapshot.Records[strconv.Itoa(rec.Number)] = rec
	}
	return snapshot
}

// DiffResult contains the results of comparing an extraction against a
// previous snapshot
type DiffResult struct {
	NewRecords []*Record
}

// Diff compares current records against a previous snapshot and returns the
// records whose event numbers were not present before. A nil previous
// snapshot reports everything as new (first run).
func Diff(previous *Snapshot, current []*Record) *DiffResult {
	result := &DiffResult{
		NewRecords: make([]*Record, 0),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	for _, rec := range current {
		if _, exists := previous.Records[strconv.Itoa(rec.Number)]; !exists {
			result.NewRecords = append(result.NewRecords, rec)
		}
	}

	// Callers hand in the date-ordered sequence, so NewRecords is already
	// sorted for output.
	return result
}
