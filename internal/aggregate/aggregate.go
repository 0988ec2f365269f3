// Package aggregate merges the per-source event lists: cross-source
// dedup followed by the partition into the six named output sets.
package aggregate

import (
	"time"

	"hamcal/internal/classify"
	"hamcal/internal/model"
)

// Names of the partitioned output sets, in emission order.
var Names = []string{"all", "cw", "phone", "digital", "hamfests", "field-day"}

type dedupKey struct {
	title  string
	start  string
	source string
}

// Dedup collapses events sharing (title, start, source); the last
// occurrence wins. The key deliberately excludes end and url, so two
// records differing only in duration or link merge into one. That also
// means two genuinely distinct same-day events with an identical generic
// title from one source collapse; the key is kept narrow on purpose.
func Dedup(events []model.Event) []model.Event {
	index := make(map[dedupKey]int, len(events))
	out := make([]model.Event, 0, len(events))

	for _, e := range events {
		k := dedupKey{title: e.Title, start: e.Start.Format(time.RFC3339), source: e.Source}
		if i, ok := index[k]; ok {
			out[i] = e
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}

// Split partitions events into the named sets. Every event lands exactly
// once in "all"; mode sets additionally require the contest base label,
// and an event matching several modes appears in each of them.
func Split(events []model.Event) map[string][]model.Event {
	out := make(map[string][]model.Event, len(Names))
	for _, name := range Names {
		out[name] = []model.Event{}
	}

	for _, e := range events {
		out["all"] = append(out["all"], e)

		if e.HasCategory(model.CategoryHamfest) {
			out["hamfests"] = append(out["hamfests"], e)
		}
		if e.HasCategory(model.CategoryFieldDay) {
			out["field-day"] = append(out["field-day"], e)
		}

		if e.HasCategory(model.CategoryContest) {
			if e.HasCategory(classify.LabelCW) {
				out["cw"] = append(out["cw"], e)
			}
			if e.HasCategory(classify.LabelPhone) {
				out["phone"] = append(out["phone"], e)
			}
			if e.HasCategory(classify.LabelDigital) {
				out["digital"] = append(out["digital"], e)
			}
		}
	}
	return out
}
