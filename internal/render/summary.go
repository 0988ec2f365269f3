// Package render produces the human-readable HTML pages that accompany
// the calendar files: a printable month-grouped summary and a static
// subscribe/index page.
package render

import (
	"html/template"
	"sort"
	"strings"
	"time"

	"hamcal/internal/model"
	"hamcal/internal/timeutil"
)

type summaryEvent struct {
	Title    string
	URL      string
	Start    string
	End      string
	Duration string
	Tags     string
}

type summaryMonth struct {
	Title  string
	Events []summaryEvent
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>HAMCAL - Monthly Summary</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; line-height: 1.35; }
    h1 { margin: 0 0 6px 0; }
    .meta { color: #444; margin-bottom: 18px; }
    .month { margin-top: 22px; }
    .event { padding: 10px 0; border-bottom: 1px solid #eee; }
    .title { font-weight: 700; }
    .when { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; font-size: 0.95em; color: #222; }
    .tags { display: inline-block; margin-left: 10px; color: #444; font-size: 0.95em; }
    a { color: inherit; }
    @media print {
      a { text-decoration: none; }
      .event { break-inside: avoid; }
    }
  </style>
</head>
<body>
  <h1>HAMCAL - Monthly Summary</h1>
  <div class="meta">
    Rolling lookahead: now to roughly two months out.<br/>
    Times shown as: <strong>Zulu (UTC)</strong> | <strong>local</strong> (standard/daylight auto).<br/>
    Duration shown in parentheses.
  </div>
{{range .}}  <div class="month"><h2>{{.Title}}</h2>
{{range .Events}}    <div class="event">
      <div class="title">{{if .URL}}<a href="{{.URL}}">{{.Title}}</a>{{else}}{{.Title}}{{end}}</div>
      <div class="when">{{.Start}} to {{.End}} ({{.Duration}}){{if .Tags}}<span class="tags">[{{.Tags}}]</span>{{end}}</div>
    </div>
{{end}}  </div>
{{end}}</body>
</html>
`))

// Summary renders the printable monthly summary for the window-filtered
// event list, grouped by month in the display timezone.
func Summary(events []model.Event, clock timeutil.Clock, loc *time.Location) (string, error) {
	inWindow := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.InWindow(clock) {
			inWindow = append(inWindow, e)
		}
	}
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Start.Before(inWindow[j].Start)
	})

	var (
		keys   []string
		months = map[string]*summaryMonth{}
	)
	for _, e := range inWindow {
		local := e.Start.In(loc)
		key := local.Format("2006-01")
		m, ok := months[key]
		if !ok {
			m = &summaryMonth{Title: local.Format("January 2006")}
			months[key] = m
			keys = append(keys, key)
		}
		m.Events = append(m.Events, summaryEvent{
			Title:    e.Title,
			URL:      e.URL,
			Start:    timeutil.FormatDual(e.Start, loc),
			End:      timeutil.FormatDual(e.End, loc),
			Duration: timeutil.FormatDuration(e.Start, e.End),
			Tags:     strings.Join(e.Categories, ", "),
		})
	}
	sort.Strings(keys)

	ordered := make([]summaryMonth, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, *months[k])
	}

	var b strings.Builder
	if err := summaryTmpl.Execute(&b, ordered); err != nil {
		return "", err
	}
	return b.String(), nil
}
