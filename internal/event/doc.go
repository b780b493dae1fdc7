// Package event provides the data model for parkrun event history records.
//
// Each Record represents one completed occurrence of the recurring event,
// keyed by its event number. Records are created once per extraction pass and
// never mutated; a fresh extraction produces a fresh sequence. The package
// also handles snapshot-based diffing so repeat runs can report results that
// appeared since the last check.
package event
