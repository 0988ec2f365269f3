// Package ics serializes event sets into iCalendar files. The wire shape
// is pinned: fixed header, CRLF terminators, UTC date-times, and text
// escaping with backslash handled first so later substitutions never
// double-escape.
package ics

import (
	"sort"
	"strings"
	"time"

	"hamcal/internal/model"
)

const prodID = "-//HAMCAL//hamcal//EN"

// Escape applies iCalendar text escaping. Backslash must be replaced
// before the characters whose escapes introduce backslashes.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}

// FormatDateTime renders an instant in the absolute-timescale wire form,
// e.g. 20250601T120000Z.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// Encode builds a complete VCALENDAR document for the given events.
// Events are sorted by start (stable; ties keep input order). stamp is
// the run-wide generation instant: every DTSTAMP in one output carries
// the same value.
func Encode(calendarName string, events []model.Event, stamp time.Time) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:" + Escape(calendarName),
		"X-WR-TIMEZONE:UTC",
	}

	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	for _, e := range sorted {
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+e.UID(),
			"DTSTAMP:"+FormatDateTime(stamp),
			"DTSTART:"+FormatDateTime(e.Start),
			"DTEND:"+FormatDateTime(e.End),
			"SUMMARY:"+Escape(e.Title),
		)

		if e.URL != "" {
			lines = append(lines, "URL:"+Escape(e.URL))
		}

		// Some calendar clients hide the URL property, so the link is
		// repeated inside the description unless already there.
		desc := strings.TrimSpace(e.Description)
		if e.URL != "" && !strings.Contains(desc, e.URL) {
			if desc != "" {
				desc += "\n\n"
			}
			desc += "Rules & details:\n" + e.URL
		}
		if desc != "" {
			lines = append(lines, "DESCRIPTION:"+Escape(desc))
		}

		if len(e.Categories) > 0 {
			lines = append(lines, "CATEGORIES:"+Escape(strings.Join(e.Categories, ",")))
		}

		lines = append(lines, "END:VEVENT")
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}
