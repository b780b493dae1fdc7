package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
)

func TestLoadSnapshotMissing(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snapshot, err := s.LoadSnapshot("bushy")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snapshot.Records) != 0 {
		t.Errorf("expected empty snapshot, got %d records", len(snapshot.Records))
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	date, _ := time.Parse("2006-01-02", "2024-01-06")
	records := []*event.Record{
		{Number: 1, Date: date, Finishers: 210, Volunteers: 18},
	}

	if err := s.CreateSnapshotFromRecords(records, "bushy"); err != nil {
		t.Fatalf("CreateSnapshotFromRecords failed: %v", err)
	}

	loaded, err := s.LoadSnapshot("bushy")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(loaded.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(loaded.Records))
	}
	rec, ok := loaded.Records["1"]
	if !ok {
		t.Fatal("expected record keyed by event number")
	}
	if rec.Finishers != 210 || !rec.Date.Equal(date) {
		t.Errorf("record did not survive the round trip: %+v", rec)
	}
	if loaded.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be set on save")
	}
}

func TestSnapshotsAreIsolatedByEvent(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	date, _ := time.Parse("2006-01-02", "2024-01-06")
	if err := s.CreateSnapshotFromRecords([]*event.Record{{Number: 1, Date: date}}, "bushy"); err != nil {
		t.Fatalf("CreateSnapshotFromRecords failed: %v", err)
	}

	other, err := s.LoadSnapshot("poole")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(other.Records) != 0 {
		t.Errorf("expected separate snapshot per event, got %d records", len(other.Records))
	}
}

func TestSnapshotPathSanitized(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	tests := []struct {
		eventName string
		expected  string
	}{
		{"Bushy", "snapshot_bushy.json"},
		{"../../etc/passwd", "snapshot_etcpasswd.json"},
		{"  ", "snapshot_default.json"},
		{"st-annes 25", "snapshot_stannes25.json"},
	}

	for _, tt := range tests {
		got := s.snapshotPath(tt.eventName)
		if got != filepath.Join(dir, tt.expected) {
			t.Errorf("snapshotPath(%q) = %q, expected %q", tt.eventName, got, filepath.Join(dir, tt.expected))
		}
	}
}
