// Package stats computes the derived statistics bundle for an event's
// record sequence. Aggregation is a pure function of its input: the same
// sequence always produces the same bundle, and there is no incremental
// state; the bundle is recomputed wholesale when the sequence changes.
package stats
