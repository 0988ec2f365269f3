package render

import (
	"strings"
	"testing"
	"time"

	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

func TestSummaryGroupsByMonth(t *testing.T) {
	clock := timeutil.NewClock(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 62)

	june := model.Event{
		Title:  "ABC SSB Sprint",
		Start:  time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.June, 11, 16, 0, 0, 0, time.UTC),
		URL:    "https://example.org/abc",
		Source: "wa7bnm-gcal",
	}
	june.AddCategory("contest")
	june.AddCategory("phone")

	july := model.Event{
		Title:  "Hamfest: Tulsa",
		Start:  time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC),
		Source: "arrl-hamfest",
	}
	july.AddCategory("hamfest")

	stale := model.Event{
		Title:  "Ancient Contest",
		Start:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
		Source: "wa7bnm-gcal",
	}

	out, err := Summary([]model.Event{july, june, stale}, clock, time.UTC)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	if !strings.Contains(out, "June 2025") || !strings.Contains(out, "July 2025") {
		t.Error("month headings missing")
	}
	if strings.Index(out, "June 2025") > strings.Index(out, "July 2025") {
		t.Error("months out of order")
	}
	if strings.Contains(out, "Ancient Contest") {
		t.Error("out-of-window event rendered")
	}
	if !strings.Contains(out, "(4h)") {
		t.Error("duration missing")
	}
	if !strings.Contains(out, "2025-06-11 12:00Z") {
		t.Error("dual time missing")
	}
	if !strings.Contains(out, "contest, phone") {
		t.Error("category tags missing")
	}
	if !strings.Contains(out, `href="https://example.org/abc"`) {
		t.Error("event link missing")
	}
}

func TestIndexListsAllCalendars(t *testing.T) {
	out, err := Index()
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	for _, file := range []string{"all.ics", "cw.ics", "phone.ics", "digital.ics", "hamfests.ics", "field-day.ics"} {
		if !strings.Contains(out, file) {
			t.Errorf("index missing %s", file)
		}
	}
	if !strings.Contains(out, "summary.html") {
		t.Error("index missing summary link")
	}
}
