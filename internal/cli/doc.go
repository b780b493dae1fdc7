// Package cli implements the parkrun-stats command line interface.
//
// Subcommands: "stats" computes the statistics bundle for an event history
// page, "export" writes the record sequence to CSV or XLSX, and "check"
// diffs a fresh extraction against the stored snapshot to report newly
// published results. Input comes from a saved HTML file or a live fetch.
package cli
