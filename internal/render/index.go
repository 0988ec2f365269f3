package render

import (
	"html/template"
	"strings"
)

type indexCalendar struct {
	ID    string
	File  string
	Label string
	Note  string
}

// indexCalendars mirrors the six emitted calendar files.
var indexCalendars = []indexCalendar{
	{ID: "all", File: "all.ics", Label: "All events", Note: "contests + hamfests + Field Day"},
	{ID: "cw", File: "cw.ics", Label: "CW contests", Note: ""},
	{ID: "phone", File: "phone.ics", Label: "Phone contests", Note: "SSB/AM/FM"},
	{ID: "digital", File: "digital.ics", Label: "Digital contests", Note: "RTTY/FT8/etc"},
	{ID: "hamfests", File: "hamfests.ics", Label: "Hamfests", Note: ""},
	{ID: "fieldday", File: "field-day.ics", Label: "Field Day", Note: ""},
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width,initial-scale=1" />
  <title>HAMCAL - Subscribe</title>
  <style>
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; margin: 24px; line-height: 1.4; }
    .box { border: 1px solid #ddd; border-radius: 10px; padding: 16px; max-width: 760px; }
    h1 { margin-top: 0; }
    .row { display: flex; gap: 12px; align-items: center; margin: 10px 0; }
    code { padding: 2px 6px; background: #f6f6f6; border-radius: 6px; }
    .url { display: none; margin-left: 28px; }
    .note { color: #444; font-size: 0.95em; }
  </style>
</head>
<body>
  <div class="box">
    <h1>HAMCAL</h1>
    <p class="note">
      Subscribe to one or more calendars below, then set notifications inside your calendar app (Google/Apple/Outlook).
    </p>

    <p><strong>Printable:</strong> <a href="./summary.html">Monthly Summary (UTC + local + duration)</a></p>
{{range .}}
    <div class="row">
      <input type="checkbox" id="{{.ID}}" data-target="u-{{.ID}}" />
      <label for="{{.ID}}"><strong>{{.Label}}</strong>{{if .Note}} ({{.Note}}){{end}}</label>
    </div>
    <div id="u-{{.ID}}" class="url">
      <div><code>{{.File}}</code> &mdash; <a href="./{{.File}}">open</a></div>
    </div>
{{end}}
    <hr />
    <p class="note">
      Notes: rolling two-month lookahead. Times in the summary show both UTC (Zulu) and local time.
    </p>
  </div>

<script>
  for (const cb of document.querySelectorAll('input[type="checkbox"][data-target]')) {
    cb.addEventListener('change', () => {
      const t = document.getElementById(cb.dataset.target);
      if (t) t.style.display = cb.checked ? 'block' : 'none';
    });
  }
</script>
</body>
</html>
`))

// Index renders the static subscribe page.
func Index() (string, error) {
	var b strings.Builder
	if err := indexTmpl.Execute(&b, indexCalendars); err != nil {
		return "", err
	}
	return b.String(), nil
}
