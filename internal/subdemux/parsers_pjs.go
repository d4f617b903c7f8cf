package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var rePJSLine = regexp.MustCompile(`^(\d+),(\d+),`)

// parsePJS reads "start,stop,"text"" cues, grounded on ParsePJS. Both times
// are multiplied by 10 to give microseconds, the reference decoder's literal
// multiplier (one unit is 10 µs). The text is whatever follows the first '"' on the line, with the
// last '"' on the line (not necessarily the matching one) stripped.
func parsePJS(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := rePJSLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		quote := strings.IndexByte(line, '"')
		if quote < 0 {
			return Cue{}, io.EOF
		}
		text := line[quote+1:]
		if last := strings.LastIndexByte(text, '"'); last >= 0 {
			text = text[:last]
		}
		text = strings.ReplaceAll(text, "|", "\n")

		return Cue{StartUs: atoi(m[1]) * 10, StopUs: atoi(m[2]) * 10, Text: text}, nil
	}
}
