// Package fetch acquires event history pages with a headless browser.
//
// The results pages are rendered behind bot checks that plain HTTP clients
// trip, so fetching drives a real browser, waits for the content container,
// and hands the rendered markup to the extractor. Manual "Save As" files
// bypass this package entirely.
package fetch
