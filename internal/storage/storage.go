package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pfrederiksen/parkrun-stats/internal/event"
)

// Storage handles persistence of record snapshots, one file per event name.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// snapshotPath returns the path to an event's snapshot file. The event name
// is sanitized so user-supplied values cannot escape the data directory.
func (s *Storage) snapshotPath(eventName string) string {
	name := strings.ToLower(strings.TrimSpace(eventName))
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, name)
	if clean == "" {
		clean = "default"
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", clean))
}

// LoadSnapshot loads an event's snapshot from disk. A missing file yields an
// empty snapshot, not an error (first run).
func (s *Storage) LoadSnapshot(eventName string) (*event.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(eventName))
	if err != nil {
		if os.IsNotExist(err) {
			return event.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot event.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Records == nil {
		snapshot.Records = make(map[string]*event.Record)
	}

	return &snapshot, nil
}

// SaveSnapshot saves an event's snapshot to disk
func (s *Storage) SaveSnapshot(snapshot *event.Snapshot, eventName string) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(eventName), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// CreateSnapshotFromRecords creates and saves a snapshot from a record
// sequence
func (s *Storage) CreateSnapshotFromRecords(records []*event.Record, eventName string) error {
	snapshot := event.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, eventName)
}
