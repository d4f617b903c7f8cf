package subdemux

import "testing"

func TestOpenSubRipMinimal(t *testing.T) {
	h, err := Open("1\n00:00:01,000 --> 00:00:02,500\nHello\n\n", 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "SubRIP" {
		t.Fatalf("FormatName()=%q, want SubRIP", h.FormatName())
	}
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
	cue := h.Cue(0)
	if cue.StartUs != 1_000_000 || cue.StopUs != 2_500_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2500000", cue.StartUs, cue.StopUs)
	}
	if cue.Text != "Hello\n" {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, "Hello\n")
	}
}

func TestOpenMicroDVDFramerateInjection(t *testing.T) {
	h, err := Open("{1}{1}25\n{25}{50}First|Second\n", 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
	cue := h.Cue(0)
	if cue.StartUs != 1_000_000 || cue.StopUs != 2_000_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2000000", cue.StartUs, cue.StopUs)
	}
	if cue.Text != "First\nSecond" {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, "First\nSecond")
	}
}

func TestOpenMPL2(t *testing.T) {
	h, err := Open("[10][25]Line A|Line B\n", 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	cue := h.Cue(0)
	if cue.StartUs != 1_000_000 || cue.StopUs != 2_500_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2500000", cue.StartUs, cue.StopUs)
	}
	if cue.Text != "Line A\nLine B" {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, "Line A\nLine B")
	}
}

func TestOpenWebVTTMixedTimestamps(t *testing.T) {
	h, err := Open("WEBVTT\n\n00:01.000 --> 00:00:02.000\nHi\n", 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "WebVTT" {
		t.Fatalf("FormatName()=%q, want WebVTT", h.FormatName())
	}
	cue := h.Cue(0)
	if cue.StartUs != 1_000_000 || cue.StopUs != 2_000_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2000000", cue.StartUs, cue.StopUs)
	}
	if cue.Text != "Hi\n" {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, "Hi\n")
	}
}

func TestOpenSSADialogue(t *testing.T) {
	input := "ScriptType: v4.00+\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	cue := h.Cue(0)
	if cue.StartUs != 1_000_000 || cue.StopUs != 2_000_000 {
		t.Fatalf("cue times = %d,%d, want 1000000,2000000", cue.StartUs, cue.StopUs)
	}
	want := "0,0,0,Default,,0,0,0,,Hello"
	if cue.Text != want {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, want)
	}
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("random text\nno timings here\n", 0)
	if err == nil {
		t.Fatalf("Open() error = nil, want ErrUnknownFormat")
	}
	var statusErr *StatusError
	if se, ok := err.(*StatusError); ok {
		statusErr = se
	} else {
		t.Fatalf("err is %T, want *StatusError", err)
	}
	if statusErr.Status != StatusGenericError {
		t.Fatalf("Status=%v, want GenericError", statusErr.Status)
	}
}

func TestOpenEmptyInput(t *testing.T) {
	_, err := Open("", 0)
	if err == nil {
		t.Fatalf("Open(\"\") error = nil, want error")
	}
}

func TestOpenMixedLineTerminators(t *testing.T) {
	crlf := "1\r\n00:00:01,000 --> 00:00:02,500\r\nHello\r\n\r\n"
	cr := "1\r00:00:01,000 --> 00:00:02,500\rHello\r\r"
	lf := "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n"

	hCRLF, err := Open(crlf, 0)
	if err != nil {
		t.Fatalf("Open(crlf) error = %v", err)
	}
	hCR, err := Open(cr, 0)
	if err != nil {
		t.Fatalf("Open(cr) error = %v", err)
	}
	hLF, err := Open(lf, 0)
	if err != nil {
		t.Fatalf("Open(lf) error = %v", err)
	}

	for _, pair := range [][2]*Handle{{hCRLF, hLF}, {hCR, hLF}} {
		a, b := pair[0].Cue(0), pair[1].Cue(0)
		if a != b {
			t.Fatalf("cue mismatch across terminators: %+v vs %+v", a, b)
		}
	}
}

func TestOpenSubRipIndexThenBlankLine(t *testing.T) {
	h, err := Open("1\n\n00:00:01,000 --> 00:00:02,500\nHello\n\n", 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
}

func TestOpenDeterministic(t *testing.T) {
	input := "1\n00:00:03,000 --> 00:00:04,000\nThird\n\n2\n00:00:01,000 --> 00:00:02,000\nFirst\n\n"
	h1, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	h2, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if len(h1.Cues()) != len(h2.Cues()) {
		t.Fatalf("len mismatch")
	}
	for i := range h1.Cues() {
		if h1.Cue(i) != h2.Cue(i) {
			t.Fatalf("cue[%d] mismatch: %+v vs %+v", i, h1.Cue(i), h2.Cue(i))
		}
	}
}

func TestOpenSortsCuesByStart(t *testing.T) {
	input := "1\n00:00:03,000 --> 00:00:04,000\nThird\n\n2\n00:00:01,000 --> 00:00:02,000\nFirst\n\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", h.Len())
	}
	if h.Cue(0).StartUs != 1_000_000 || h.Cue(1).StartUs != 3_000_000 {
		t.Fatalf("cues not sorted: %+v", h.Cues())
	}
}

func TestOpenDKSMultipleCues(t *testing.T) {
	input := "[0:00:01]Hello\n[0:00:02]World\n[0:00:03]End\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "DKS" {
		t.Fatalf("FormatName()=%q, want DKS", h.FormatName())
	}
	if h.Len() != 2 {
		t.Fatalf("Len()=%d, want 2", h.Len())
	}
	first, second := h.Cue(0), h.Cue(1)
	if first.StartUs != 1_000_000 || first.StopUs != 2_000_000 || first.Text != "Hello" {
		t.Fatalf("cue[0]=%+v, want start=1000000 stop=2000000 text=Hello", first)
	}
	if second.StartUs != 3_000_000 || second.StopUs != -1 || second.Text != "End" {
		t.Fatalf("cue[1]=%+v, want start=3000000 stop=-1 text=End", second)
	}
}

func TestOpenSubViewer1MultipleCues(t *testing.T) {
	input := "*** START SCRIPT\n[0:00:01]\nHello\n[0:00:02]\n[0:00:02]\nWorld\n[0:00:03]\n[0:00:03]\nEnd\n[0:00:04]\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "Subviewer 1" {
		t.Fatalf("FormatName()=%q, want %q", h.FormatName(), "Subviewer 1")
	}
	if h.Len() != 3 {
		t.Fatalf("Len()=%d, want 3", h.Len())
	}
	want := []Cue{
		{StartUs: 1_000_000, StopUs: 2_000_000, Text: "Hello"},
		{StartUs: 2_000_000, StopUs: 3_000_000, Text: "World"},
		{StartUs: 3_000_000, StopUs: 4_000_000, Text: "End"},
	}
	for i, w := range want {
		if got := h.Cue(i); got != w {
			t.Fatalf("cue[%d]=%+v, want %+v", i, got, w)
		}
	}
}

func TestOpenJacoSubDirectives(t *testing.T) {
	// #TIMERES sets the frame resolution used to scale the cue's frame
	// fields, and #SHIFT's "0:0:1.0" argument is folded in as one second
	// of shift at that resolution (100 ticks) before the per-cue frame
	// counts (25 and 50 ticks) are divided back down by the same
	// resolution: (25+100)/100=1s on top of the whole-second field, and
	// (50+100)/100=1s on top of that.
	input := "#TIMERES 100\n#SHIFT 0:0:1.0\n0:0:1.25 0:0:2.50 Hello\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if h.FormatName() != "JacoSub" {
		t.Fatalf("FormatName()=%q, want JacoSub", h.FormatName())
	}
	if h.Len() != 1 {
		t.Fatalf("Len()=%d, want 1", h.Len())
	}
	cue := h.Cue(0)
	if cue.StartUs != 2_000_000 || cue.StopUs != 3_000_000 {
		t.Fatalf("cue times = %d,%d, want 2000000,3000000", cue.StartUs, cue.StopUs)
	}
	if cue.Text != "Hello" {
		t.Fatalf("cue.Text=%q, want %q", cue.Text, "Hello")
	}
}

func TestOpenSRTRoundTrip(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:00:02,500\nHello\n\n2\n00:00:05,000 --> 00:00:06,000\nWorld\n\n"
	h, err := Open(input, 0)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	rendered := RenderSRT(h)
	h2, err := Open(rendered, 0)
	if err != nil {
		t.Fatalf("Open(rendered) error = %v", err)
	}
	if h.Len() != h2.Len() {
		t.Fatalf("len mismatch: %d vs %d", h.Len(), h2.Len())
	}
	for i := 0; i < h.Len(); i++ {
		a, b := h.Cue(i), h2.Cue(i)
		if a.StartUs != b.StartUs || a.StopUs != b.StopUs {
			t.Fatalf("cue[%d] time mismatch: %+v vs %+v", i, a, b)
		}
	}
}
