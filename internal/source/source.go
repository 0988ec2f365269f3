// Package source contains the three event parsers. Each one fetches its
// remote text through the fetch collaborator, extracts fields, builds
// normalized events, classifies them and filters by the rolling window.
// Parsers are best-effort: a malformed record is skipped, never fatal.
package source

import (
	"context"
	"time"

	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

// Getter is the slice of the fetch client the parsers need. Tests
// substitute fakes.
type Getter interface {
	GetText(ctx context.Context, url string) (string, error)
}

// Source is a single event provider.
//
// Fetch may return events alongside an error when a paginated source
// failed partway; the caller keeps the events and reports the error.
type Source interface {
	Name() string
	Fetch(ctx context.Context, clock timeutil.Clock) ([]model.Event, error)
}

// allDay builds the [midnight, midnight+24h) UTC span for a calendar date.
func allDay(year int, month time.Month, day int) (time.Time, time.Time) {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
