// Package storage persists record snapshots to the local data directory so
// repeat runs can report results that appeared since the last check.
package storage
