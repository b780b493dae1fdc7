package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/parkrun-stats/internal/event"
	"github.com/pfrederiksen/parkrun-stats/internal/normalize"
)

// Extraction-fatal errors.
var (
	// ErrTableNotFound signals the input is not an event history page at
	// all (or an anti-bot interstitial was captured instead of content).
	ErrTableNotFound = errors.New("results table not found")
	// ErrEmptyTable signals the table exists but yielded zero valid rows,
	// e.g. a brand-new event with no history yet.
	ErrEmptyTable = errors.New("results table has no valid rows")
)

// Extraction is the result of one pass over an event history page.
type Extraction struct {
	// Records is the deduplicated sequence, ordered by date ascending.
	Records []*event.Record
	// SkippedRows counts rows dropped for structural or missing-key
	// failures. A large fraction here means the page markup has drifted.
	SkippedRows int
	// DuplicateRows counts rows dropped because their event number was
	// already seen ("Save As, Complete" mirrors duplicate table fragments).
	DuplicateRows int
	// Page carries the summary panel figures, nil when the panel is absent.
	Page *event.PageStats
}

// Extract parses an event history page into an ordered record sequence.
// The input is a single in-memory markup blob; Extract does not care whether
// it came from an automated fetch or a manually saved file.
func Extract(html string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table.Results-table").First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		rows = table.Find("tr")
	}

	ext := &Extraction{}
	seen := make(map[int]bool)

	rows.Each(func(_ int, sel *goquery.Selection) {
		if sel.Find("th").Length() > 0 {
			return // header/footer row
		}

		rec, err := ParseRow(historyRowCells(sel))
		if err != nil {
			ext.SkippedRows++
			return
		}

		// First occurrence wins.
		if seen[rec.Number] {
			ext.DuplicateRows++
			return
		}
		seen[rec.Number] = true
		ext.Records = append(ext.Records, rec)
	})

	if len(ext.Records) == 0 {
		return nil, ErrEmptyTable
	}

	event.SortByDate(ext.Records)
	ext.Page = parsePageStats(doc)
	return ext, nil
}

// historyRowCells adapts one results-table row to the canonical cell layout.
// The page encodes row data as attributes on the tr, with athlete IDs only
// reachable through the profile links inside it.
func historyRowCells(sel *goquery.Selection) CellReader {
	cells := make([]string, 0, columnCount)
	for _, name := range []string{"data-parkrun", "data-date", "data-finishers", "data-volunteers"} {
		v, ok := sel.Attr(name)
		if !ok {
			// Short row; the parser rejects it as malformed.
			return SliceCells(cells)
		}
		cells = append(cells, v)
	}

	type profileLink struct {
		name string
		id   string
	}
	var links []profileLink
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && strings.Contains(href, "athlete") {
			links = append(links, profileLink{
				name: normalize.CleanName(a.Text()),
				id:   athleteIDFromHref(href),
			})
		}
	})
	// takeID resolves a winner's profile link by display name rather than
	// link position: a linkless placeholder in one category must not be
	// handed the other category's ID. Matched links are consumed so two
	// same-named winners each get their own.
	takeID := func(name string) string {
		if name == "" {
			return ""
		}
		for i, l := range links {
			if l.name == name {
				links = append(links[:i], links[i+1:]...)
				return l.id
			}
		}
		return ""
	}

	male := normalize.CleanName(sel.AttrOr("data-male", ""))
	maleTime := sel.AttrOr("data-maletime", "")
	female := normalize.CleanName(sel.AttrOr("data-female", ""))
	femaleTime := sel.AttrOr("data-femaletime", "")
	cells = append(cells, male, takeID(male), maleTime, female, takeID(female), femaleTime)
	return SliceCells(cells)
}

// athleteIDFromHref pulls the athlete number out of a profile link like
// "../athletehistory/?athleteNumber=123456".
func athleteIDFromHref(href string) string {
	_, after, found := strings.Cut(href, "=")
	if !found {
		return ""
	}
	if i := strings.IndexAny(after, "&#"); i >= 0 {
		after = after[:i]
	}
	return after
}

// parsePageStats reads the page heading, the summary panel and the contact
// link. Returns nil when none of them are present, so callers can tell a
// bare table from a full page.
func parsePageStats(doc *goquery.Document) *event.PageStats {
	page := &event.PageStats{
		Title:        pageTitle(doc),
		ContactEmail: strings.TrimSpace(doc.Find("a[href*='mailto']").First().Text()),
	}

	counts := map[string]*int{
		"Finishes:":   &page.Finishes,
		"Finishers:":  &page.Finishers,
		"Volunteers:": &page.Volunteers,
		"PBs:":        &page.PersonalBests,
		"Groups:":     &page.Groups,
	}
	for label, dst := range counts {
		if n, ok := normalize.ParseCount(statValue(doc, label)); ok {
			*dst = n
		}
	}
	if secs, ok := normalize.ParseElapsed(statValue(doc, "Average finish time:")); ok {
		page.MeanFinishSeconds = secs
	}

	if *page == (event.PageStats{}) {
		return nil
	}
	return page
}

// pageTitle strips the page suffixes off the h1 to leave the bare event name.
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("h1").First().Text())
	title = strings.TrimSuffix(title, "Event History")
	title = strings.ReplaceAll(title, " parkrun", "")
	return strings.TrimSpace(title)
}

// statValue returns the summary panel value for the given label text.
func statValue(doc *goquery.Document, label string) string {
	value := ""
	doc.Find(".aStat").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), label) {
			value = strings.TrimSpace(sel.Find("span").First().Text())
			return false
		}
		return true
	})
	return value
}
