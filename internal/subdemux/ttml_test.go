package subdemux

import "testing"

func TestParseTTMLClockTime(t *testing.T) {
	doc := `<tt xmlns="http://www.w3.org/ns/ttml"><body><div>` +
		`<p begin="00:00:01.000" end="00:00:02.500">Hello<br/>World</p>` +
		`</div></body></tt>`

	cues, err := ParseTTML(doc)
	if err != nil {
		t.Fatalf("ParseTTML() error = %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("len(cues)=%d, want 1", len(cues))
	}
	c := cues[0]
	if c.StartUs != 1_000_000 || c.StopUs != 2_500_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2500000", c.StartUs, c.StopUs)
	}
	if c.Text != "Hello\nWorld" {
		t.Fatalf("cue.Text=%q, want %q", c.Text, "Hello\nWorld")
	}
}

func TestParseTTMLDuration(t *testing.T) {
	doc := `<tt xmlns="http://www.w3.org/ns/ttml"><body>` +
		`<p begin="1s" dur="2s">Hi</p>` +
		`</body></tt>`

	cues, err := ParseTTML(doc)
	if err != nil {
		t.Fatalf("ParseTTML() error = %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("len(cues)=%d, want 1", len(cues))
	}
	c := cues[0]
	if c.StartUs != 1_000_000 || c.StopUs != 3_000_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,3000000", c.StartUs, c.StopUs)
	}
}

func TestParseTTMLViaOpen(t *testing.T) {
	doc := `<tt xmlns="http://www.w3.org/ns/ttml"><body><div>` +
		`<p begin="00:00:01.000" end="00:00:02.000">Hi</p>` +
		`</div></body></tt>`

	h, err := Open(doc, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "TTML" {
		t.Fatalf("FormatName()=%q, want TTML", h.FormatName())
	}
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
}
