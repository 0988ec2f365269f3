package ics

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"hamcal/internal/extract"
	"hamcal/internal/model"
)

var stamp = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func sampleEvents() []model.Event {
	later := model.Event{
		Title:  "RTTY Rumble",
		Start:  time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
		Source: "wa7bnm-gcal",
	}
	later.AddCategory("contest")
	later.AddCategory("digital")

	earlier := model.Event{
		Title:       "CQ Test, with; specials\\",
		Start:       time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.June, 10, 16, 0, 0, 0, time.UTC),
		URL:         "https://example.org/rules",
		Description: "Multi-line\nnotes",
		Source:      "wa7bnm-gcal",
	}
	earlier.AddCategory("contest")
	earlier.AddCategory("cw")

	return []model.Event{later, earlier}
}

func TestEscapeOrder(t *testing.T) {
	// Backslash first: a literal backslash never doubles up with the
	// escapes introduced afterwards.
	if got, want := Escape(`a\b,c;d`+"\n"), `a\\b\,c\;d\n`; got != want {
		t.Errorf("Escape = %q, want %q", got, want)
	}
}

func TestEscapeUnescapeInverse(t *testing.T) {
	inputs := []string{
		"plain",
		"commas, and; semicolons",
		"line\nbreak",
		`back\slash`,
		`tricky \n not a newline`,
	}
	for _, in := range inputs {
		if got := extract.UnescapeText(Escape(in)); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestEncodeStructure(t *testing.T) {
	out := Encode("HAMCAL - All", sampleEvents(), stamp)

	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") {
		t.Error("missing calendar prologue")
	}
	if !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Error("missing calendar epilogue")
	}
	for _, header := range []string{
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:HAMCAL - All",
		"X-WR-TIMEZONE:UTC",
	} {
		if !strings.Contains(out, header+"\r\n") {
			t.Errorf("missing header line %q", header)
		}
	}
	if strings.Contains(strings.ReplaceAll(out, "\r\n", ""), "\n") {
		t.Error("found a bare LF; terminators must be CRLF throughout")
	}

	// Events are sorted by start: the June 10 event precedes June 20.
	if strings.Index(out, "DTSTART:20250610T120000Z") > strings.Index(out, "DTSTART:20250620T000000Z") {
		t.Error("events not sorted by start")
	}

	// One DTSTAMP value for the whole output.
	if got := strings.Count(out, "DTSTAMP:"+FormatDateTime(stamp)); got != 2 {
		t.Errorf("got %d run-stamped DTSTAMP lines, want 2", got)
	}
}

func TestEncodeRoundTripFields(t *testing.T) {
	events := sampleEvents()
	out := Encode("Round Trip", events, stamp)

	blocks := strings.Split(out, "BEGIN:VEVENT")
	if len(blocks) != 3 {
		t.Fatalf("got %d event blocks, want 2", len(blocks)-1)
	}
	// blocks[1] is the earlier (sorted-first) event.
	block := blocks[1]

	summary, ok := extract.Field(block, "SUMMARY")
	if !ok {
		t.Fatal("SUMMARY missing")
	}
	if got := extract.UnescapeText(summary); got != `CQ Test, with; specials\` {
		t.Errorf("summary round trip = %q", got)
	}

	url, ok := extract.Field(block, "URL")
	if !ok || extract.UnescapeText(url) != "https://example.org/rules" {
		t.Errorf("url round trip = %q, %v", url, ok)
	}

	cats, ok := extract.Field(block, "CATEGORIES")
	if !ok {
		t.Fatal("CATEGORIES missing")
	}
	if got := extract.UnescapeText(cats); got != "contest,cw" {
		t.Errorf("categories round trip = %q", got)
	}

	// The link is appended to the description for clients hiding URL.
	desc, ok := extract.Field(block, "DESCRIPTION")
	if !ok {
		t.Fatal("DESCRIPTION missing")
	}
	decoded := extract.UnescapeText(desc)
	if !strings.HasPrefix(decoded, "Multi-line\nnotes") {
		t.Errorf("description lost text: %q", decoded)
	}
	if !strings.Contains(decoded, "https://example.org/rules") {
		t.Errorf("description missing appended link: %q", decoded)
	}
}

func TestEncodeLinkNotDuplicated(t *testing.T) {
	e := model.Event{
		Title:       "Linked",
		Start:       stamp,
		End:         stamp.Add(time.Hour),
		URL:         "https://example.org/x",
		Description: "See https://example.org/x for rules",
		Source:      "test",
	}
	out := Encode("T", []model.Event{e}, stamp)
	if strings.Contains(out, "Rules & details") {
		t.Error("link appended although already present in description")
	}
}

func TestEncodeOmitsEmptyFields(t *testing.T) {
	e := model.Event{
		Title:  "Bare",
		Start:  stamp,
		End:    stamp.Add(time.Hour),
		Source: "test",
	}
	out := Encode("T", []model.Event{e}, stamp)
	for _, absent := range []string{"URL:", "DESCRIPTION:", "CATEGORIES:"} {
		if strings.Contains(out, "\r\n"+absent) {
			t.Errorf("empty field %q should be omitted", absent)
		}
	}
}

// An independent ICS implementation must be able to read what we emit.
func TestEncodeParsesWithICalLibrary(t *testing.T) {
	events := sampleEvents()
	out := Encode("HAMCAL - All", events, stamp)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}

	parsed := cal.Events()
	if len(parsed) != 2 {
		t.Fatalf("library saw %d events, want 2", len(parsed))
	}

	first := parsed[0]
	uidProp := first.GetProperty(ical.ComponentPropertyUniqueId)
	if uidProp == nil || !strings.HasSuffix(uidProp.Value, "@hamcal") {
		t.Errorf("library did not recover a hamcal UID: %+v", uidProp)
	}

	start, err := first.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt: %v", err)
	}
	if want := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Errorf("library start = %v, want %v", start, want)
	}
}
