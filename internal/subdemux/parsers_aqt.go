package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var reAQTTiming = regexp.MustCompile(`^-->> (\d+)`)

// parseAQT reads one "-->> <n>" marker followed by its text body up to (but
// not including) the next marker, grounded on ParseAQT. The marker's number
// is stored as-is rather than converted from any particular unit — the
// reference decoder does the same, so AQT start times come out in raw
// microseconds regardless of what the file's author intended them as.
func parseAQT(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	var startUs int64
	found := false
	for !found {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reAQTTiming.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		startUs = atoi(m[1])
		found = true
	}

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok {
			break
		}
		if strings.Contains(line, "-->>") {
			lb.Putback()
			break
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}

	return Cue{StartUs: startUs, StopUs: -1, Text: text.String()}, nil
}
