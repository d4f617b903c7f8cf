package subdemux

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reMicroDVDLine = regexp.MustCompile(`^\{(\d+)\}\{(\d*)\}(.*)$`)

// parseMicroDVD reads "{n1}{n2}Line1|Line2..." cues, grounded on
// ParseMicroDvd. n2 may be empty (unbounded stop). A "{1}{1}<fps>" line is
// the format's inline framerate injection: when the caller supplied no
// hint (usPerFrame == 0), the float sets it; either way the pseudo-cue is
// skipped rather than emitted as a visible cue (spec.md §9's recommended
// resolution of the reference decoder's fall-through behavior).
func parseMicroDVD(st *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		m := reMicroDVDLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		start, _ := strconv.ParseInt(m[1], 10, 64)
		stop := int64(-1)
		if m[2] != "" {
			stop, _ = strconv.ParseInt(m[2], 10, 64)
		}
		text := m[3]

		if start == 1 && stop == 1 {
			if fps, err := strconv.ParseFloat(text, 64); err == nil && fps > 0 && st.usPerFrame == 0 {
				st.usPerFrame = int64(math.Round(1e6 / fps))
			}
			continue
		}

		text = strings.ReplaceAll(text, "|", "\n")
		cue := Cue{StartUs: start * st.usPerFrame, StopUs: -1, Text: text}
		if stop >= 0 {
			cue.StopUs = stop * st.usPerFrame
		}
		return cue, nil
	}
}
