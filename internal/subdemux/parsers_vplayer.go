package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var reVPlayerLine = regexp.MustCompile(`^(\d+):(\d+):(\d+).(.*)$`)

// parseVPlayer reads "h:m:s<sep>Line1|Line2..." cues, grounded on
// ParseVplayer. sep is any single non-digit delimiter character; the stop
// time is always unbounded.
func parseVPlayer(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reVPlayerLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h1, m1, s1 := atoi(m[1]), atoi(m[2]), atoi(m[3])
		text := strings.ReplaceAll(m[4], "|", "\n")
		return Cue{
			StartUs: (h1*3600*1000 + m1*60*1000 + s1*1000) * 1000,
			StopUs:  -1,
			Text:    text,
		}, nil
	}
}
