package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var reDVDSubtitleLine = regexp.MustCompile(`^\{T (\d+):(\d+):(\d+):(\d+)`)

// parseDVDSubtitle reads "{T h:m:s:cs" followed by body lines until a line
// consisting solely of "}", grounded on ParseDVDSubtitle. Unlike SubRip,
// hitting EOF while accumulating the body is a failure, not a successful
// short cue — the source frees the partial text and returns VLC_EGENERIC.
func parseDVDSubtitle(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	var cue Cue
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reDVDSubtitleLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h1, m1, s1, c1 := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
		cue.StartUs = (h1*3600*1000 + m1*60*1000 + s1*1000 + c1*10) * 1000
		cue.StopUs = -1
		break
	}

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		if line == "}" {
			cue.Text = text.String()
			return cue, nil
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}
}
