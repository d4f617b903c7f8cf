package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var rePSBLine = regexp.MustCompile(`^\{(\d+):(\d+):(\d+)\}\{(\d+):(\d+):(\d+)\}(.*)$`)

// parsePSB reads "{H:M:S}{H:M:S}Line1|Line2..." cues, grounded on ParsePSB.
func parsePSB(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := rePSBLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h1, m1, s1 := atoi(m[1]), atoi(m[2]), atoi(m[3])
		h2, m2, s2 := atoi(m[4]), atoi(m[5]), atoi(m[6])
		text := strings.ReplaceAll(m[7], "|", "\n")
		return Cue{
			StartUs: (h1*3600 + m1*60 + s1) * 1000000,
			StopUs:  (h2*3600 + m2*60 + s2) * 1000000,
			Text:    text,
		}, nil
	}
}
