package subdemux

import "testing"

func mustOpen(t *testing.T, input string) *Handle {
	t.Helper()
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return h
}

func TestRenderTextIncludesFormatAndCues(t *testing.T) {
	h := mustOpen(t, "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n")
	out := RenderText(h)
	if !contains(out, "SubRIP") {
		t.Fatalf("RenderText() missing format name: %q", out)
	}
	if !contains(out, "Hello") {
		t.Fatalf("RenderText() missing cue text: %q", out)
	}
}

func TestRenderJSONWellFormedBraces(t *testing.T) {
	h := mustOpen(t, "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n")
	out := RenderJSON(h)
	if out[0] != '{' {
		t.Fatalf("RenderJSON() does not start with '{': %q", out)
	}
	if !contains(out, `"format":"SubRIP"`) {
		t.Fatalf("RenderJSON() missing format field: %q", out)
	}
}

func TestRenderCSVHeaderAndRows(t *testing.T) {
	h := mustOpen(t, "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n")
	out := RenderCSV(h)
	if !contains(out, "index,start_us,stop_us,text") {
		t.Fatalf("RenderCSV() missing header: %q", out)
	}
	if !contains(out, "1,1000000,2500000") {
		t.Fatalf("RenderCSV() missing expected row: %q", out)
	}
}

func TestRenderSRTUnboundedStopBecomesBounded(t *testing.T) {
	h := mustOpen(t, "<SAMI>\n<P Start=1000><P>Hello\n")
	if h.Cue(0).Bounded() {
		t.Fatalf("expected an unbounded SAMI cue as a test fixture")
	}

	reparsed := mustOpen(t, RenderSRT(h))
	cue := reparsed.Cue(0)
	if !cue.Bounded() || cue.StopUs < cue.StartUs {
		t.Fatalf("RenderSRT() did not resolve the unbounded stop: %+v", cue)
	}
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
