// Package timeutil provides the run-wide clock snapshot and the time
// formatting helpers shared by the pipeline and the rendered pages.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DefaultHorizonDays is the rolling lookahead applied to every source.
const DefaultHorizonDays = 62

// Clock is an immutable snapshot of "now" and the horizon end, captured
// once per run and passed explicitly to every component that filters by
// window or stamps output. Tests inject arbitrary instants.
type Clock struct {
	Now        time.Time
	HorizonEnd time.Time
}

// NewClock builds a Clock from the given instant and lookahead in days.
// A non-positive lookahead falls back to DefaultHorizonDays.
func NewClock(now time.Time, horizonDays int) Clock {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return Clock{
		Now:        now,
		HorizonEnd: now.Add(time.Duration(horizonDays) * 24 * time.Hour),
	}
}

// HorizonDate returns the horizon end as a UTC date (midnight), used by
// the hamfest pagination cutoff which compares whole days.
func (c Clock) HorizonDate() time.Time {
	y, m, d := c.HorizonEnd.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDual renders an instant as "UTC | local", with the local side
// resolving standard/daylight offsets automatically:
//
//	2025-03-09 08:30Z | 2025-03-09 2:30AM CST
func FormatDual(t time.Time, loc *time.Location) string {
	utc := t.UTC().Format("2006-01-02 15:04") + "Z"
	local := t.In(loc).Format("2006-01-02 3:04PM MST")
	return utc + " | " + local
}

// FormatDuration renders a span as a compact human duration: "0m",
// "1h 30m", "1d 1h". Non-positive spans are clamped to "0m"; minutes are
// shown whenever no larger unit is.
func FormatDuration(start, end time.Time) string {
	total := end.Sub(start)
	if total <= 0 {
		return "0m"
	}

	mins := int(total / time.Minute)
	days := mins / (60 * 24)
	mins %= 60 * 24
	hours := mins / 60
	mins %= 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	return strings.Join(parts, " ")
}
