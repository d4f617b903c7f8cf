package subdemux

import (
	"io"
	"strings"
)

// timingFunc parses one timing line into a (start, stop) pair in
// microseconds, or reports failure.
type timingFunc func(line string) (start, stop int64, ok bool)

// parseSubRipSubViewer is the shared skeleton both SubRip and SubViewer
// drive: skip lines until one parses as a valid (start < stop) timing,
// then collect lines into the cue's text until a blank line or EOF.
// Grounded on ParseSubRipSubViewer. Numeric index lines preceding a
// SubRip timing line are skipped for free, since they simply fail to
// parse as a timing line.
func parseSubRipSubViewer(lb *LineBuffer, parseTiming timingFunc, replaceBr bool) (Cue, error) {
	var cue Cue
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		if start, stop, ok := parseTiming(line); ok && start < stop {
			cue.StartUs, cue.StopUs = start, stop
			break
		}
	}

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok || len(line) == 0 {
			cue.Text = finishSubRipSubViewerText(text.String(), replaceBr)
			return cue, nil
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}
}

func finishSubRipSubViewerText(text string, replaceBr bool) string {
	if replaceBr {
		text = strings.ReplaceAll(text, "[br]", "\n")
	}
	return text
}

func parseSubRip(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	return parseSubRipSubViewer(lb, parseSubRipTiming, false)
}

func parseSubViewer(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	return parseSubRipSubViewer(lb, parseSubViewerTiming, true)
}
