package source

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"

	appLog "hamcal/internal/log"
	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

const (
	fieldDayTitle = "ARRL Field Day"
	fieldDayURL   = "https://www.arrl.org/field-day"
)

// fieldDayEvents generates Field Day for the current and the next year.
// Only occurrences inside the rolling window survive, so at most one of
// the two is normally emitted.
func fieldDayEvents(clock timeutil.Clock) []model.Event {
	var out []model.Event
	for _, year := range []int{clock.Now.Year(), clock.Now.Year() + 1} {
		start, err := fieldDayStart(year)
		if err != nil {
			appLog.Error("field day rule failed", err, "year", year)
			continue
		}

		e := model.Event{
			Title:       fieldDayTitle,
			Start:       start,
			End:         start.Add(48 * time.Hour), // Saturday + Sunday
			URL:         fieldDayURL,
			Description: "Computed as the 4th full weekend of June (Sat-Sun).",
			Source:      "arrl-field-day",
		}
		e.AddCategory(model.CategoryFieldDay)

		if e.InWindow(clock) {
			out = append(out, e)
		}
	}
	return out
}

// fieldDayStart computes the Field Day Saturday for a year: the 4th
// Saturday of June (equivalently, the first Saturday of June plus three
// weeks), at midnight UTC.
func fieldDayStart(year int) (time.Time, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.YEARLY,
		Dtstart:   time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Bymonth:   []int{6},
		Byweekday: []rrule.Weekday{rrule.SA.Nth(4)},
		Count:     1,
	})
	if err != nil {
		return time.Time{}, err
	}
	occurrences := r.All()
	if len(occurrences) == 0 {
		return time.Time{}, errors.New("rule produced no occurrence")
	}
	return occurrences[0], nil
}
