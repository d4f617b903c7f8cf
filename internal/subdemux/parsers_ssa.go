package subdemux

import (
	"fmt"
	"io"
	"regexp"
)

var reSSADialogue = regexp.MustCompile(`^Dialogue:\s*([^,]*),(\d+):(\d+):(\d+)\.(\d+),(\d+):(\d+):(\d+)\.(\d+),(.*)$`)

// parseSSA reads one "Dialogue: ..." line per cue for SSA-1, SSA-2/3/4 and
// ASS alike, grounded on ParseSSA. The first comma-delimited field is
// "Marked=<m>" for SSA or the numeric Layer for ASS. Every other line
// accumulates into the demuxer's header, exactly as the reference decoder
// folds anything that is not a Dialogue line into p_sys->psz_header.
//
// The emitted text is rewritten to "<readOrder>,<layer>,<firstField>,<rest>"
// for SSA-2/3/4 and ASS — the reference decoder prepends its own ReadOrder
// and Layer ahead of the captured Marked/Layer field rather than replacing
// it — while SSA-1 (no Layer slot) just gets a leading comma prepended.
func parseSSA(st *demuxState, lb *LineBuffer, idx int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		m := reSSADialogue.FindStringSubmatch(line)
		if m == nil {
			st.header.WriteString(line)
			st.header.WriteByte('\n')
			continue
		}

		firstField, rest := m[1], m[10]
		h1, m1, s1, c1 := atoi(m[2]), atoi(m[3]), atoi(m[4]), atoi(m[5])
		h2, m2, s2, c2 := atoi(m[6]), atoi(m[7]), atoi(m[8]), atoi(m[9])

		var text string
		if st.tag == FormatSSA1 {
			text = "," + rest
		} else {
			var layer int64
			if st.tag == FormatASS {
				layer = atoi(firstField)
			}
			text = fmt.Sprintf("%d,%d,%s,%s", idx, layer, firstField, rest)
		}

		return Cue{
			StartUs: (h1*3600*1000 + m1*60*1000 + s1*1000 + c1*10) * 1000,
			StopUs:  (h2*3600*1000 + m2*60*1000 + s2*1000 + c2*10) * 1000,
			Text:    text,
		}, nil
	}
}
