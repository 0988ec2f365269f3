package source

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"hamcal/internal/extract"
	"hamcal/internal/fetch"
	appLog "hamcal/internal/log"
	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

var (
	hamfestRowRe = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s*-\s*(.+)`)
	usDateRe     = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
)

// HamfestPages scrapes the paginated ARRL hamfest listings. Pages are
// probed in order with a bounded budget; iteration stops on a 404, on a
// page with no matched rows, or (from page 2 on) when the stop predicate
// fires. The default predicate assumes listings are roughly chronological
// and stops once any date on a page lies beyond the horizon. That
// assumption can under- or over-fetch when the source ordering changes;
// it is a heuristic, not a guarantee.
type HamfestPages struct {
	client   Getter
	pageURL  string // printf template with one %d page number
	maxPages int

	// stop decides whether to end pagination after the current page.
	// Injectable so tests can replace the chronology heuristic.
	stop func(pageText string, clock timeutil.Clock) bool
}

func NewHamfestPages(client Getter, pageURL string, maxPages int) *HamfestPages {
	if maxPages <= 0 {
		maxPages = 12
	}
	return &HamfestPages{
		client:   client,
		pageURL:  pageURL,
		maxPages: maxPages,
		stop:     anyDatePastHorizon,
	}
}

func (s *HamfestPages) Name() string { return "arrl-hamfest" }

func (s *HamfestPages) Fetch(ctx context.Context, clock timeutil.Clock) ([]model.Event, error) {
	var events []model.Event

	page := 1
	for ; page <= s.maxPages; page++ {
		url := fmt.Sprintf(s.pageURL, page)

		text, err := s.client.GetText(ctx, url)
		if errors.Is(err, fetch.ErrNotFound) {
			break
		}
		if err != nil {
			// Keep what earlier pages yielded; the caller logs the error.
			return events, err
		}

		stripped := extract.StripHTML(text)

		rows := 0
		for _, line := range strings.Split(stripped, "\n") {
			m := hamfestRowRe.FindStringSubmatch(strings.TrimSpace(line))
			if m == nil {
				continue
			}
			rows++

			d, err := time.Parse("01/02/2006", m[1])
			if err != nil {
				continue
			}

			start, end := allDay(d.Year(), d.Month(), d.Day())
			e := model.Event{
				Title:  "Hamfest: " + strings.TrimSpace(m[2]),
				Start:  start,
				End:    end,
				URL:    "https://www.arrl.org/hamfests/search",
				Source: s.Name(),
			}
			// No mode classification here: hamfests are not contests, and
			// "HAMFEST" itself contains the AM keyword.
			e.AddCategory(model.CategoryHamfest)

			if e.InWindow(clock) {
				events = append(events, e)
			}
		}

		if rows == 0 {
			break
		}
		if page >= 2 && s.stop(stripped, clock) {
			break
		}
	}

	if page > s.maxPages {
		appLog.Warn("hamfest pagination cap reached; listings may extend further",
			"source", s.Name(), "max_pages", s.maxPages)
	}

	appLog.Info("hamfest pages parsed", "source", s.Name(), "events", len(events), "pages", min(page, s.maxPages))
	return events, nil
}

// anyDatePastHorizon reports whether any date token on the page falls
// strictly after the horizon date.
func anyDatePastHorizon(pageText string, clock timeutil.Clock) bool {
	cutoff := clock.HorizonDate()
	for _, tok := range usDateRe.FindAllString(pageText, -1) {
		d, err := time.Parse("01/02/2006", tok)
		if err != nil {
			continue
		}
		if d.After(cutoff) {
			return true
		}
	}
	return false
}
