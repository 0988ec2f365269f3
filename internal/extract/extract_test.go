package extract

import (
	"strings"
	"testing"
)

func TestUnfold(t *testing.T) {
	folded := "SUMMARY:CQ WW DX\r\n  Contest\r\nURL:https://example.org\n\tmore"
	got := Unfold(folded)
	want := "SUMMARY:CQ WW DX Contest\r\nURL:https://example.orgmore"
	if got != want {
		t.Errorf("Unfold = %q, want %q", got, want)
	}
}

func TestField(t *testing.T) {
	block := strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTART;VALUE=DATE:20250610",
		"SUMMARY:Test",
		" Sprint",
		"DESCRIPTION:first line\\nsecond",
		"END:VEVENT",
	}, "\r\n")

	if v, ok := Field(block, "DTSTART"); !ok || v != "20250610" {
		t.Errorf("DTSTART = %q, %v", v, ok)
	}
	// Folded continuation joins into the logical line.
	if v, ok := Field(block, "SUMMARY"); !ok || v != "TestSprint" {
		t.Errorf("SUMMARY = %q, %v", v, ok)
	}
	if v, ok := Field(block, "DESCRIPTION"); !ok || v != `first line\nsecond` {
		t.Errorf("DESCRIPTION = %q, %v", v, ok)
	}
	if _, ok := Field(block, "URL"); ok {
		t.Error("URL should be reported missing")
	}
	// Field names are case-sensitive.
	if _, ok := Field(block, "summary"); ok {
		t.Error("lowercase field name should not match")
	}
}

func TestUnescapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\, b\; c`, "a, b; c"},
		{`line1\nline2`, "line1\nline2"},
		{`back\\slash`, `back\slash`},
		// Escaped backslash followed by 'n' is a backslash and an 'n',
		// not a newline.
		{`not\\newline`, `not\newline`},
	}
	for _, tt := range tests {
		if got := UnescapeText(tt.in); got != tt.want {
			t.Errorf("UnescapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	in := `<html><head><style>body { color: red; }</style>
<script type="text/javascript">alert("x < y");</script></head>
<body><p>First &amp; foremost</p>Second<br/>Third &mdash; done</body></html>`

	got := StripHTML(in)

	if strings.Contains(got, "color") || strings.Contains(got, "alert") {
		t.Errorf("script/style content leaked: %q", got)
	}
	if !strings.Contains(got, "First & foremost") {
		t.Errorf("entity not decoded: %q", got)
	}
	if !strings.Contains(got, "Second\nThird") {
		t.Errorf("<br/> not converted to newline: %q", got)
	}
}

func TestStripHTMLMalformed(t *testing.T) {
	// Unclosed tags must degrade, not fail.
	in := "<div><p>kept text<b>also kept"
	got := StripHTML(in)
	if !strings.Contains(got, "kept text") || !strings.Contains(got, "also kept") {
		t.Errorf("malformed markup lost text: %q", got)
	}
}

func TestStripHTMLLines(t *testing.T) {
	in := "<p>  one  </p><p>two</p><p>   </p>three"
	got := StripHTMLLines(in)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
