package source

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"hamcal/internal/classify"
	"hamcal/internal/extract"
	appLog "hamcal/internal/log"
	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

const eventBlockMarker = "BEGIN:VEVENT"

// ContestFeed parses the WA7BNM contest calendar published as a Google
// Calendar ICS feed. This is the primary contest source; the scraped
// contest page only supplements it.
type ContestFeed struct {
	client Getter
	url    string
}

func NewContestFeed(client Getter, url string) *ContestFeed {
	return &ContestFeed{client: client, url: url}
}

func (s *ContestFeed) Name() string { return "wa7bnm-gcal" }

func (s *ContestFeed) Fetch(ctx context.Context, clock timeutil.Clock) ([]model.Event, error) {
	text, err := s.client.GetText(ctx, s.url)
	if err != nil {
		return nil, err
	}

	var events []model.Event

	blocks := strings.Split(text, eventBlockMarker)
	// blocks[0] is the calendar preamble.
	for _, b := range blocks[1:] {
		block := eventBlockMarker + b

		dtstart, ok := extract.Field(block, "DTSTART")
		if !ok {
			continue
		}
		start, err := parseICSDateTime(dtstart)
		if err != nil {
			appLog.Debug("skipping vevent with unparseable DTSTART", "value", dtstart)
			continue
		}

		end := start.Add(time.Hour)
		if dtend, ok := extract.Field(block, "DTEND"); ok {
			if t, err := parseICSDateTime(dtend); err == nil {
				end = t
			}
		}

		summary, ok := extract.Field(block, "SUMMARY")
		if !ok || summary == "" {
			summary = "Contest"
		}
		url, _ := extract.Field(block, "URL")
		desc, _ := extract.Field(block, "DESCRIPTION")

		e := model.Event{
			Title:       extract.UnescapeText(summary),
			Start:       start,
			End:         end,
			URL:         extract.UnescapeText(url),
			Description: extract.UnescapeText(desc),
			Source:      s.Name(),
		}
		e.AddCategory(model.CategoryContest)
		classify.Apply(&e)

		if e.InWindow(clock) {
			events = append(events, e)
		}
	}

	appLog.Info("contest feed parsed", "source", s.Name(), "events", len(events))
	return events, nil
}

var dateOnlyRe = regexp.MustCompile(`^\d{8}$`)

// icsDateTimeLayouts are tried in order for non date-only values. Layouts
// without an offset are interpreted as UTC.
var icsDateTimeLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseICSDateTime interprets an ICS date or date-time value and
// normalizes it to UTC. Eight-digit date-only values become UTC midnight.
func parseICSDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date value")
	}

	if dateOnlyRe.MatchString(value) {
		t, err := time.Parse("20060102", value)
		if err != nil {
			return time.Time{}, err
		}
		return t.UTC(), nil
	}

	for _, layout := range icsDateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unrecognized date-time value: " + value)
}
