package subdemux

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderText renders a Handle as a human-readable report, grounded on
// RenderText in the reference CLI's media-report package: a header block
// of left-padded "label : value" lines, then for each cue a "Cue #n" line
// followed by its Start, Stop and Text lines in the same layout.
func RenderText(h *Handle) string {
	var buf bytes.Buffer
	buf.WriteString("Format")
	buf.WriteString(strings.Repeat(" ", 10))
	buf.WriteString(": ")
	buf.WriteString(h.FormatName())
	buf.WriteString("\n")

	buf.WriteString(padRight("Cues", 16))
	buf.WriteString(": ")
	fmt.Fprintf(&buf, "%d\n", h.Len())

	buf.WriteString(padRight("Length", 16))
	buf.WriteString(": ")
	fmt.Fprintf(&buf, "%s\n", formatTimecode(h.Length()))

	for i, cue := range h.Cues() {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "Cue #%d\n", i+1)
		buf.WriteString(padRight("Start", 16))
		buf.WriteString(": ")
		buf.WriteString(formatTimecode(cue.StartUs))
		buf.WriteString("\n")
		buf.WriteString(padRight("Stop", 16))
		buf.WriteString(": ")
		if cue.Bounded() {
			buf.WriteString(formatTimecode(cue.StopUs))
		} else {
			buf.WriteString("unbounded")
		}
		buf.WriteString("\n")
		buf.WriteString(padRight("Text", 16))
		buf.WriteString(": ")
		buf.WriteString(strings.ReplaceAll(cue.Text, "\n", "\\N"))
		buf.WriteString("\n")
	}

	return buf.String()
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}

// formatTimecode renders a microsecond value as "H:MM:SS.mmm".
func formatTimecode(us int64) string {
	if us < 0 {
		return "unbounded"
	}
	ms := us / 1000
	s := ms / 1000
	ms %= 1000
	m := s / 60
	s %= 60
	hh := m / 60
	m %= 60
	return fmt.Sprintf("%d:%02d:%02d.%03d", hh, m, s, ms)
}
