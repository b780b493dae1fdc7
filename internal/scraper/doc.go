// Package scraper extracts event history records from raw page markup.
//
// The results table is located by its class marker rather than by position,
// since page layout can shift around it. Rows are parsed through the
// CellReader abstraction so the same row parser serves both the HTML table
// and re-imported tabular exports. Extraction is a pure transformation of
// the input text: no network access, no file I/O.
package scraper
