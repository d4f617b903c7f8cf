package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var reDKSLine = regexp.MustCompile(`^\[(\d+):(\d+):(\d+)\](.*)$`)

// parseDKS reads "[H:M:S]text" followed by a lookahead "[H:M:S]" line that
// supplies the stop time (or leaves it unbounded if absent), grounded on
// ParseDKS. "[br]" becomes a newline within the text.
func parseDKS(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	var cue Cue
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reDKSLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h1, m1, s1 := atoi(m[1]), atoi(m[2]), atoi(m[3])
		cue.StartUs = (h1*3600 + m1*60 + s1) * 1000000
		cue.StopUs = -1
		cue.Text = strings.ReplaceAll(m[4], "[br]", "\n")
		break
	}

	line, ok := lb.Next()
	if ok {
		if m := reDKSLine.FindStringSubmatch(line); m != nil {
			h2, m2, s2 := atoi(m[1]), atoi(m[2]), atoi(m[3])
			cue.StopUs = (h2*3600 + m2*60 + s2) * 1000000
		}
	}

	return cue, nil
}
