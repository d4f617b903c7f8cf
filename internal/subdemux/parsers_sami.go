package subdemux

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// samiTextBufferSize bounds the text accumulated per cue, matching the
// reference decoder's "char text[8192]" in ParseSami.
const samiTextBufferSize = 8192

var reLeadingInt = regexp.MustCompile(`^-?\d+`)

func parseLeadingInt(s string) (int64, string) {
	m := reLeadingInt.FindString(s)
	if m == "" {
		return 0, s
	}
	return atoi(m), s[len(m):]
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

// samiSearch advances through the line cursor until target (matched
// case-insensitively) is found, returning everything after it. cur is
// checked first if non-empty (the look-ahead already in hand), grounded
// on ParseSamiSearch.
func samiSearch(lb *LineBuffer, cur string, target string) (string, bool) {
	if cur != "" {
		if idx := indexFold(cur, target); idx >= 0 {
			return cur[idx+len(target):], true
		}
	}
	for {
		line, ok := lb.Next()
		if !ok {
			return "", false
		}
		if idx := indexFold(line, target); idx >= 0 {
			return line[idx+len(target):], true
		}
	}
}

// parseSAMI parses one cue out of SAMI's SGML-like stream, grounded on
// ParseSami: find "Start=", read the integer, skip to the opening "<P"
// then its closing ">", then accumulate visible text until the next
// "Start=" is seen (at which point the line is put back so the next call
// sees it). <br...> becomes \n, &nbsp; and tabs become a space, any other
// "<...>" tag is skipped over, everything else is copied verbatim.
func parseSAMI(_ *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	s, ok := samiSearch(lb, "", "Start=")
	if !ok {
		return Cue{}, io.EOF
	}

	startVal, rest := parseLeadingInt(s)
	s = rest

	s, ok = samiSearch(lb, s, "<P")
	if !ok {
		return Cue{}, io.EOF
	}
	s, ok = samiSearch(lb, s, ">")
	if !ok {
		return Cue{}, io.EOF
	}

	var text strings.Builder
	appendBounded := func(c byte) {
		if text.Len() < samiTextBufferSize-1 {
			text.WriteByte(c)
		}
	}

loop:
	for {
		for s == "" {
			line, ok := lb.Next()
			if !ok {
				break loop
			}
			s = line
		}

		switch {
		case s[0] == '<':
			if strings.HasPrefix(strings.ToLower(s), "<br") {
				appendBounded('\n')
			} else if indexFold(s, "start=") >= 0 {
				lb.Putback()
				break loop
			}
			var ok2 bool
			s, ok2 = samiSearch(lb, s, ">")
			if !ok2 {
				break loop
			}
		case strings.HasPrefix(s, "&nbsp;"):
			appendBounded(' ')
			s = s[6:]
		case s[0] == '\t':
			appendBounded(' ')
			s = s[1:]
		default:
			appendBounded(s[0])
			s = s[1:]
		}
	}

	return Cue{StartUs: startVal * 1000, StopUs: -1, Text: norm.NFC.String(text.String())}, nil
}
