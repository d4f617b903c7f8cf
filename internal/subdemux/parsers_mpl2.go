package subdemux

import (
	"io"
	"regexp"
)

var reMPL2Line = regexp.MustCompile(`^\[(\d+)\]\[(\d*)\]\s*(.*)$`)

// parseMPL2 reads "[s][e]Line1|Line2..." cues in tenths of a second,
// grounded on ParseMPL2; whitespace between "]" and the text is optional
// and not kept. e may be empty for an unbounded stop. A leading
// italic slash ("/" at the start of a line, including right after a "|"
// that became "\n") is stripped.
func parseMPL2(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reMPL2Line.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start := atoi(m[1]) * 100000
		stop := int64(-1)
		if m[2] != "" {
			stop = atoi(m[2]) * 100000
		}
		return Cue{StartUs: start, StopUs: stop, Text: stripMPL2Italics(m[3])}, nil
	}
}

func stripMPL2Italics(text string) string {
	out := make([]byte, 0, len(text))
	atLineStart := true
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '|' {
			c = '\n'
		}
		if c == '/' && atLineStart {
			continue
		}
		out = append(out, c)
		atLineStart = c == '\n'
	}
	return string(out)
}
