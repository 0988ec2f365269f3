package source

import (
	"context"
	"regexp"
	"time"

	"hamcal/internal/classify"
	"hamcal/internal/extract"
	appLog "hamcal/internal/log"
	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

var isoDateRe = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

// ContestPage scrapes the ARRL contest-calendar page. It is best-effort:
// lines carrying an ISO date become all-day events, everything else is
// ignored, and most contests are expected to arrive via the ICS feed
// instead. Field Day is always generated by rule, independent of the
// page content.
type ContestPage struct {
	client Getter
	url    string
}

func NewContestPage(client Getter, url string) *ContestPage {
	return &ContestPage{client: client, url: url}
}

func (s *ContestPage) Name() string { return "arrl-contest" }

func (s *ContestPage) Fetch(ctx context.Context, clock timeutil.Clock) ([]model.Event, error) {
	text, err := s.client.GetText(ctx, s.url)
	if err != nil {
		// Field Day does not depend on the page; keep it even when the
		// fetch fails.
		return fieldDayEvents(clock), err
	}

	var events []model.Event

	for _, line := range extract.StripHTMLLines(text) {
		m := isoDateRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		d, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			continue
		}

		start, end := allDay(d.Year(), d.Month(), d.Day())
		e := model.Event{
			Title:  "ARRL: " + line,
			Start:  start,
			End:    end,
			URL:    s.url,
			Source: s.Name(),
		}
		e.AddCategory(model.CategoryContest)
		classify.Apply(&e)

		if e.InWindow(clock) {
			events = append(events, e)
		}
	}

	appLog.Info("contest page parsed", "source", s.Name(), "events", len(events))
	return append(events, fieldDayEvents(clock)...), nil
}
