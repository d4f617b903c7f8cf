package subdemux

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// TTML is structured XML rather than a line-oriented cue grammar, so it is
// not driven through the LineBuffer/parserFunc machinery every other format
// shares — it gets its own decode pass using the standard library's XML
// decoder, the one corpus-wide precedent for parsing a markup format
// without a bespoke lexer (no subtitle- or TTML-specific XML library
// appeared anywhere in the retrieved pack; see SPEC_FULL.md §5.8).

type ttmlDocument struct {
	XMLName xml.Name `xml:"tt"`
	Body    ttmlBody `xml:"body"`
}

type ttmlBody struct {
	Divs []ttmlDiv `xml:"div"`
	Ps   []ttmlP   `xml:"p"`
}

type ttmlDiv struct {
	Ps []ttmlP `xml:"p"`
}

type ttmlP struct {
	Begin string  `xml:"begin,attr"`
	End   string  `xml:"end,attr"`
	Dur   string  `xml:"dur,attr"`
	Inner string  `xml:",innerxml"`
	Spans []ttmlP `xml:"span"`
}

var reTTMLTag = regexp.MustCompile(`<[^>]*>`)

// ParseTTML decodes a TTML document into cues in document order (the
// <p> elements directly under <body> first, then those of each <div>);
// Open sorts them by start time. It flattens div/p/span nesting into one
// cue per top-level <p>, converting any nested
// <br/> into a newline and dropping every other inline tag, and resolves
// each <p>'s timing from its begin/end (or begin/dur) attributes.
func ParseTTML(input string) ([]Cue, error) {
	var doc ttmlDocument
	if err := xml.Unmarshal([]byte(input), &doc); err != nil {
		return nil, errors.Wrap(err, "ttml")
	}

	var paragraphs []ttmlP
	paragraphs = append(paragraphs, doc.Body.Ps...)
	for _, d := range doc.Body.Divs {
		paragraphs = append(paragraphs, d.Ps...)
	}

	var cues []Cue
	for _, p := range paragraphs {
		start, ok := parseTTMLTimeExpr(p.Begin)
		if !ok {
			continue
		}
		stop := int64(-1)
		if p.End != "" {
			if v, ok := parseTTMLTimeExpr(p.End); ok {
				stop = v
			}
		} else if p.Dur != "" {
			if v, ok := parseTTMLTimeExpr(p.Dur); ok {
				stop = start + v
			}
		}
		cues = append(cues, Cue{StartUs: start, StopUs: stop, Text: ttmlText(p.Inner)})
	}

	return cues, nil
}

// ttmlText turns a <p>'s inner XML into plain text: <br/> becomes a
// newline, every other tag is dropped, and the usual XML entities are
// resolved by a throwaway decode pass.
func ttmlText(inner string) string {
	replaced := regexp.MustCompile(`(?i)<br\s*/?>`).ReplaceAllString(inner, "\n")
	stripped := reTTMLTag.ReplaceAllString(replaced, "")

	var out strings.Builder
	d := xml.NewDecoder(strings.NewReader("<r>" + stripped + "</r>"))
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			out.Write(cd)
		}
	}
	return out.String()
}

var reTTMLClock = regexp.MustCompile(`^(\d+):(\d+):(\d+)(?:\.(\d+))?$`)
var reTTMLOffset = regexp.MustCompile(`^(\d+(?:\.\d+)?)(h|m|s|ms|f|t)$`)

// parseTTMLTimeExpr parses TTML's clock-time ("HH:MM:SS[.fff]") and
// offset-time ("<number><metric>") expressions into microseconds. Frame
// ("f") and tick ("t") metrics are not resolvable without the document's
// tickRate/frameRate, so they are rejected rather than guessed at.
func parseTTMLTimeExpr(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if m := reTTMLClock.FindStringSubmatch(s); m != nil {
		h, mi, sec := atoi(m[1]), atoi(m[2]), atoi(m[3])
		us := (h*3600+mi*60+sec) * 1000000
		if m[4] != "" {
			frac, _ := strconv.ParseFloat("0."+m[4], 64)
			us += int64(frac * 1000000)
		}
		return us, true
	}
	if m := reTTMLOffset.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		switch m[2] {
		case "h":
			return int64(v * 3600 * 1000000), true
		case "m":
			return int64(v * 60 * 1000000), true
		case "s":
			return int64(v * 1000000), true
		case "ms":
			return int64(v * 1000), true
		default:
			return 0, false
		}
	}
	return 0, false
}
