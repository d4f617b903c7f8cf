package subdemux

import (
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reJSSFull    = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+)\s+(\d+):(\d+):(\d+)\.(\d+)\s+(.*)$`)
	reJSSShort   = regexp.MustCompile(`^@(\d+)\s+@(\d+)\s+(.*)$`)
	reJSSTimeRes = regexp.MustCompile(`^#T(?:IMERES)?\s*(\d+)`)
	reJSSShift   = regexp.MustCompile(`^#S(?:HIFT)?\s*(.+)$`)

	reJSSShiftHMSF = regexp.MustCompile(`^(-?\d+):(\d+):(\d+)(?:\.(\d+))?`)
	reJSSShiftMSF  = regexp.MustCompile(`^(-?\d+):(\d+)(?:\.(\d+))?`)
	reJSSShiftSF   = regexp.MustCompile(`^(-?\d+)(?:\.(\d+))?`)
)

// parseJSSShift parses "#S[HIFT]"'s H:M:S.f-style argument and converts it
// to frame units at the resolution active when the directive is read,
// grounded on ParseJSS's i_time_shift computation: the first numeric field
// parsed carries the sign (the reference decoder's "inv"), stripped from
// that field's magnitude before it is folded into
// ((h*3600+m*60+sec)*resolution + f) * inv.
func parseJSSShift(arg string, resolution int64) (int64, bool) {
	var h, m, sec, f, inv int64 = 0, 0, 0, 0, 1

	switch {
	case reJSSShiftHMSF.MatchString(arg):
		mm := reJSSShiftHMSF.FindStringSubmatch(arg)
		h = atoi(mm[1])
		if h < 0 {
			h = -h
			inv = -1
		}
		m = atoi(mm[2])
		sec = atoi(mm[3])
		if mm[4] != "" {
			f = atoi(mm[4])
		}
	case reJSSShiftMSF.MatchString(arg):
		mm := reJSSShiftMSF.FindStringSubmatch(arg)
		m = atoi(mm[1])
		if m < 0 {
			m = -m
			inv = -1
		}
		sec = atoi(mm[2])
		if mm[3] != "" {
			f = atoi(mm[3])
		}
	case reJSSShiftSF.MatchString(arg):
		mm := reJSSShiftSF.FindStringSubmatch(arg)
		sec = atoi(mm[1])
		if sec < 0 {
			sec = -sec
			inv = -1
		}
		if mm[2] != "" {
			f = atoi(mm[2])
		}
	default:
		return 0, false
	}

	return ((h*3600+m*60+sec)*resolution + f) * inv, true
}

// parseJacoSub reads one JacoSub cue, grounded on ParseJSS. Directive lines
// ("#T[IMERES] <fps>" sets the time resolution used by both timing forms,
// "#S[HIFT] <H:M:S.f>" sets a time shift, stored in frame units at the
// resolution active when the directive is read and folded into every
// following cue's frame count before it is divided by whatever resolution
// is active at that cue) update state carried in demuxState rather than
// producing a cue themselves. A trailing backslash continues the raw text
// onto the next line before the comment/escape pass runs.
func parseJacoSub(st *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	if !st.jss.inited {
		st.jss.timeResolution = 30
		st.jss.timeShift = 0
		st.jss.inited = true
	}

	var startUs, stopUs int64
	var rawText string
	found := false

	for !found {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}

		if m := reJSSTimeRes.FindStringSubmatch(line); m != nil {
			st.jss.timeResolution = atoi(m[1])
			continue
		}
		if m := reJSSShift.FindStringSubmatch(line); m != nil {
			res := st.jss.timeResolution
			if res <= 0 {
				res = 30
			}
			if shift, ok := parseJSSShift(m[1], res); ok {
				st.jss.timeShift = shift
			}
			continue
		}

		res := st.jss.timeResolution
		if res <= 0 {
			res = 30
		}

		if m := reJSSFull.FindStringSubmatch(line); m != nil {
			h1, m1, s1, f1 := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
			h2, m2, s2, f2 := atoi(m[5]), atoi(m[6]), atoi(m[7]), atoi(m[8])
			startUs = ((h1*3600 + m1*60 + s1) + (f1+st.jss.timeShift)/res) * 1000000
			stopUs = ((h2*3600 + m2*60 + s2) + (f2+st.jss.timeShift)/res) * 1000000
			rawText = m[9]
			found = true
			continue
		}
		if m := reJSSShort.FindStringSubmatch(line); m != nil {
			f1, f2 := atoi(m[1]), atoi(m[2])
			startUs = (f1 + st.jss.timeShift) / res * 1000000
			stopUs = (f2 + st.jss.timeShift) / res * 1000000
			rawText = m[3]
			found = true
			continue
		}
	}

	text := rawText
	for strings.HasSuffix(strings.TrimRight(text, " \t"), "\\") {
		cont, ok := lb.Next()
		if !ok {
			break
		}
		text = strings.TrimRight(strings.TrimRight(text, " \t"), "\\") + "\n" + cont
	}

	return Cue{StartUs: startUs, StopUs: stopUs, Text: cleanJacoSubText(st, text)}, nil
}

// cleanJacoSubText strips {comment} spans — tracking depth in demuxState so
// a comment opened in one cue's text can still be open when the next cue's
// text is cleaned — expands the \n \C \F \B \I \U \D escapes, turns "~" into
// a literal space, and collapses whitespace runs, matching the reference
// lexer's output pass.
func cleanJacoSubText(st *demuxState, s string) string {
	var out strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '{':
			st.jss.commentDepth++
			i++
		case c == '}':
			if st.jss.commentDepth > 0 {
				st.jss.commentDepth--
			}
			i++
		case st.jss.commentDepth > 0:
			i++
		case c == '\\' && i+1 < len(s):
			switch s[i+1] {
			case 'n':
				out.WriteByte('\n')
				i += 2
			case '~', '{', '\\':
				out.WriteByte(s[i+1])
				i += 2
			case 'C', 'F':
				if i+2 < len(s) {
					i += 3
				} else {
					i = len(s)
				}
			case 'B', 'I', 'U', 'D', 'N':
				i += 2
			default:
				out.WriteByte(s[i+1])
				i += 2
			}
			continue
		case c == '~':
			out.WriteByte(' ')
			i++
		default:
			out.WriteByte(c)
			i++
		}
	}

	fields := strings.FieldsFunc(out.String(), func(r rune) bool { return r == ' ' || r == '\t' })
	return norm.NFC.String(strings.Join(fields, " "))
}
