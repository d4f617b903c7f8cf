package subdemux

import (
	"bytes"
	"fmt"
)

// RenderSRT renders a Handle back into SubRip text. This is the CLI's
// round-trip mechanism (spec.md's "reparse RenderSRT(Open(x)) and the cue
// list matches" property) — the core package never writes a format back to
// disk on its own, it only demuxes one; RenderSRT lives in the ambient
// output layer alongside RenderText/RenderJSON/RenderCSV for exactly that
// reason.
func RenderSRT(h *Handle) string {
	var buf bytes.Buffer
	for i, cue := range h.Cues() {
		stop := cue.StopUs
		if stop < 0 {
			// One millisecond: the smallest step an SRT timecode can show,
			// so the reparsed stop stays strictly after the start.
			stop = cue.StartUs + 1000
		}
		fmt.Fprintf(&buf, "%d\n%s --> %s\n%s\n\n", i+1, srtTimecode(cue.StartUs), srtTimecode(stop), cue.Text)
	}
	return buf.String()
}

func srtTimecode(us int64) string {
	if us < 0 {
		us = 0
	}
	ms := us / 1000
	s := ms / 1000
	ms %= 1000
	m := s / 60
	s %= 60
	h := m / 60
	m %= 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
