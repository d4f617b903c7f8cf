package subdemux

import (
	"io"
	"strings"
)

// parseWebVTTOrSBV reads one WebVTT or SBV cue, grounded on
// ParseCommonVTTSBV: a timing line (format depends on st.tag) with start
// strictly before stop, then body lines accumulated until a blank line or
// EOF.
func parseWebVTTOrSBV(st *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	parseTiming := parseVTTTiming
	if st.tag == FormatSBV {
		parseTiming = parseSBVTiming
	}

	var start, stop int64
	found := false
	for !found {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		s, e, ok := parseTiming(line)
		if !ok || s >= e {
			continue
		}
		start, stop = s, e
		found = true
	}

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok || line == "" {
			break
		}
		text.WriteString(line)
		text.WriteByte('\n')
	}

	return Cue{StartUs: start, StopUs: stop, Text: text.String()}, nil
}
