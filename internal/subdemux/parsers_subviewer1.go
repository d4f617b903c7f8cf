package subdemux

import (
	"io"
)

var reSubViewer1Line = reDKSLine

// parseSubViewer1 reads a standalone "[H:M:S]" timing line, a text line, and
// then a lookahead line that is either the next cue's "[H:M:S]" (supplying
// this cue's stop time) or ordinary text (left unbounded), grounded on
// ParseSubViewer1. The reference decoder left psz_text uninitialized on one
// branch of this function; here text is always set before return.
func parseSubViewer1(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	var cue Cue
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reSubViewer1Line.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		h1, m1, s1 := atoi(m[1]), atoi(m[2]), atoi(m[3])
		cue.StartUs = (h1*3600 + m1*60 + s1) * 1000000
		cue.StopUs = -1
		break
	}

	text, ok := lb.Next()
	if !ok {
		return Cue{}, io.EOF
	}
	cue.Text = text

	line, ok := lb.Next()
	if ok {
		if m := reSubViewer1Line.FindStringSubmatch(line); m != nil {
			h2, m2, s2 := atoi(m[1]), atoi(m[2]), atoi(m[3])
			cue.StopUs = (h2*3600 + m2*60 + s2) * 1000000
		}
	}

	return cue, nil
}
