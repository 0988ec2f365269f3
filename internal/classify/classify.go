// Package classify implements keyword-based multi-label tagging of
// events. Labels are additive: classification never removes a category,
// and an event can match several mode sets at once.
package classify

import (
	"strings"

	"hamcal/internal/model"
)

// Mode labels produced on top of the parser-assigned base label.
const (
	LabelCW      = "cw"
	LabelPhone   = "phone"
	LabelDigital = "digital"
)

var (
	cwKeywords      = []string{"CW"}
	phoneKeywords   = []string{"SSB", "PHONE", "AM", "FM"}
	digitalKeywords = []string{"RTTY", "FT8", "FT4", "PSK", "DIGI", "DIGITAL", "SSTV", "JS8", "MFSK"}

	fieldDayKeywords = []string{"FIELD DAY"}
)

// Labels returns the classification labels for the given title and
// description. Matching is case-insensitive substring containment over
// the concatenated text; every category is checked independently.
func Labels(title, description string) []string {
	blob := strings.ToUpper(title + " " + description)

	var out []string
	if containsAny(blob, cwKeywords) {
		out = append(out, LabelCW)
	}
	if containsAny(blob, phoneKeywords) {
		out = append(out, LabelPhone)
	}
	if containsAny(blob, digitalKeywords) {
		out = append(out, LabelDigital)
	}
	if containsAny(blob, fieldDayKeywords) {
		out = append(out, model.CategoryFieldDay)
	}
	return out
}

// Apply adds every matching label to the event.
func Apply(e *model.Event) {
	for _, label := range Labels(e.Title, e.Description) {
		e.AddCategory(label)
	}
}

func containsAny(blob string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(blob, k) {
			return true
		}
	}
	return false
}
