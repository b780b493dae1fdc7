// Package export serializes record sequences to tabular files.
//
// CSV and XLSX share one column layout, and an exported CSV re-parses
// through the same row parser as the HTML table, so round-tripping a
// sequence is a supported consistency check.
package export
