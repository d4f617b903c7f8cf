package subdemux

import (
	"io"
	"regexp"
	"strings"
)

var reRTTimeTag = regexp.MustCompile(`(?i)<time\s+begin="([^"]*)"(?:\s+end="([^"]*)")?`)
var reRTClear = regexp.MustCompile(`(?i)<clear/>`)

// parseRealText reads one "<time begin="T" [end="T"]>text" cue, grounded on
// ParseRealText/ParseRealTime. Text accumulates across lines until the next
// <time ...> tag or a <clear/> marker, which is put back so the following
// call picks it up. Unlike the reference lexer, which leaves a stray '>'
// behind after consuming the opening tag, this scanner consumes the whole
// tag in one match, so no leading '>' needs stripping from the text.
func parseRealText(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	var startUs int64
	stopUs := int64(-1)
	found := false

	for !found {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		m := reRTTimeTag.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, ok := parseRealTime(m[1])
		if !ok {
			continue
		}
		startUs = v
		if m[2] != "" {
			if v2, ok2 := parseRealTime(m[2]); ok2 {
				stopUs = v2
			}
		}
		found = true
	}

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok {
			break
		}
		if reRTTimeTag.MatchString(line) || reRTClear.MatchString(line) {
			lb.Putback()
			break
		}
		if text.Len() > 0 {
			text.WriteByte('\n')
		}
		text.WriteString(line)
	}

	return Cue{StartUs: startUs, StopUs: stopUs, Text: text.String()}, nil
}
