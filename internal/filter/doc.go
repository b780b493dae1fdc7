// Package filter narrows a record sequence before aggregation.
//
// Filters restrict by date range, Saturday-only cadence, or complete
// (non-degraded) records. A compact query syntax like
// "from:2024-01-01 to:2024-06-30 saturdays complete" parses into a Filter.
package filter
