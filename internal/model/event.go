// Package model defines the canonical event representation shared by the
// source parsers, the aggregator and the calendar encoder.
package model

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"hamcal/internal/timeutil"
)

// Base labels assigned by the originating parser. Mode labels (cw, phone,
// digital) come from the classifier on top of these.
const (
	CategoryContest  = "contest"
	CategoryHamfest  = "hamfest"
	CategoryFieldDay = "field-day"
)

// Event is a single normalized calendar entry. It is built by exactly one
// source parser, tagged by the classifier, and then treated as frozen by
// the aggregator and encoder.
type Event struct {
	Title       string
	Start       time.Time // UTC
	End         time.Time // UTC
	URL         string
	Description string

	// Categories preserves insertion order; membership is deduplicated.
	Categories []string

	// Source identifies the producing parser. It participates in event
	// identity and dedup but never in display.
	Source string
}

// UID derives the stable identity used for the iCalendar UID field:
// a truncated sha256 over (source, title, start, url).
func (e Event) UID() string {
	h := sha256.New()
	h.Write([]byte(e.Source + "|" + e.Title + "|" + e.Start.Format(time.RFC3339) + "|" + e.URL))
	return hex.EncodeToString(h.Sum(nil))[:32] + "@hamcal"
}

// AddCategory appends c unless already present.
func (e *Event) AddCategory(c string) {
	for _, have := range e.Categories {
		if have == c {
			return
		}
	}
	e.Categories = append(e.Categories, c)
}

// HasCategory reports whether c is among the event's labels.
func (e Event) HasCategory(c string) bool {
	for _, have := range e.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// InWindow reports whether the event intersects the rolling window.
// Both bounds are strict: an event ending exactly at "now" or starting
// exactly at the horizon is excluded.
func (e Event) InWindow(clock timeutil.Clock) bool {
	return e.End.After(clock.Now) && e.Start.Before(clock.HorizonEnd)
}
