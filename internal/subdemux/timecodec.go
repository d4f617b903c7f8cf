package subdemux

import (
	"regexp"
	"strconv"
)

// This file replaces the reference decoder's sscanf chains with one small,
// hand-written regexp matcher per timing form. The set of forms is finite
// and fixed, so a parser-combinator library would buy nothing; every match
// group is parsed with strconv, never a locale-aware float/int routine,
// mirroring the reference decoder's us_strtof comment about strtof being a
// deliberate '.'-only decimal parse.

var (
	reSubRipTimingMs  = regexp.MustCompile(`^(\d+):(\d+):(\d+)[,.](\d+)$`)
	reSubRipTimingSec = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)
	reSubRipLine      = regexp.MustCompile(`^(\S+)\s*-->\s*(\S+)`)

	reSubViewerTiming = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+),(\d+):(\d+):(\d+)\.(\d+)`)

	reSBVTiming = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+),(\d+):(\d+):(\d+)\.(\d+)`)

	reVTTLong  = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+)\s*-->\s*(\d+):(\d+):(\d+)\.(\d+)`)
	reVTTShort = regexp.MustCompile(`^(\d+):(\d+)\.(\d+)\s*-->\s*(\d+):(\d+)\.(\d+)`)
	reVTTMixLR = regexp.MustCompile(`^(\d+):(\d+)\.(\d+)\s*-->\s*(\d+):(\d+):(\d+)\.(\d+)`)
	reVTTMixRL = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+)\s*-->\s*(\d+):(\d+)\.(\d+)`)

	reRealTimeHMSF = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+)`)
	reRealTimeMSF  = regexp.MustCompile(`^(\d+):(\d+)\.(\d+)`)
	reRealTimeSF   = regexp.MustCompile(`^(\d+)\.(\d+)`)
	reRealTimeMS   = regexp.MustCompile(`^(\d+):(\d+)$`)
	reRealTimeS    = regexp.MustCompile(`^(\d+)$`)
)

func atoi(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// parseSubRipTimingValue parses "H:M:S,mmm" / "H:M:S.mmm" / "H:M:S",
// grounded on subtitle_ParseSubRipTimingValue. Missing ms defaults to 0.
func parseSubRipTimingValue(s string) (int64, bool) {
	if m := reSubRipTimingMs.FindStringSubmatch(s); m != nil {
		h, mi, sec, ms := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
		return (h*3600*1000 + mi*60*1000 + sec*1000 + ms) * 1000, true
	}
	if m := reSubRipTimingSec.FindStringSubmatch(s); m != nil {
		h, mi, sec := atoi(m[1]), atoi(m[2]), atoi(m[3])
		return (h*3600*1000 + mi*60*1000 + sec*1000) * 1000, true
	}
	return 0, false
}

// parseSubRipTiming splits "start --> stop" and parses both sides,
// grounded on subtitle_ParseSubRipTiming.
func parseSubRipTiming(s string) (start, stop int64, ok bool) {
	m := reSubRipLine.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	start, ok1 := parseSubRipTimingValue(m[1])
	stop, ok2 := parseSubRipTimingValue(m[2])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return start, stop, true
}

// parseSubViewerTiming parses "H:M:S.cc,H:M:S.cc", grounded on
// subtitle_ParseSubViewerTiming. The centisecond field is used as the raw
// numeric value (multiplied into the millisecond slot, then to
// microseconds), exactly as the reference decoder does — it is not first
// converted from centiseconds to milliseconds.
func parseSubViewerTiming(s string) (start, stop int64, ok bool) {
	m := reSubViewerTiming.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	h1, m1, s1, d1 := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
	h2, m2, s2, d2 := atoi(m[5]), atoi(m[6]), atoi(m[7]), atoi(m[8])
	start = (h1*3600*1000 + m1*60*1000 + s1*1000 + d1) * 1000
	stop = (h2*3600*1000 + m2*60*1000 + s2*1000 + d2) * 1000
	return start, stop, true
}

// parseSBVTiming parses "H:M:S.mmm,H:M:S.mmm".
func parseSBVTiming(s string) (start, stop int64, ok bool) {
	m := reSBVTiming.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	h1, m1, s1, d1 := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
	h2, m2, s2, d2 := atoi(m[5]), atoi(m[6]), atoi(m[7]), atoi(m[8])
	start = (h1*3600*1000 + m1*60*1000 + s1*1000 + d1) * 1000
	stop = (h2*3600*1000 + m2*60*1000 + s2*1000 + d2) * 1000
	return start, stop, true
}

// parseVTTTiming parses WebVTT's four accepted combinations of short
// ("MM:SS.mmm") and long ("HH:MM:SS.mmm") timestamps on either side of
// "-->", grounded on ParseCommonVTTSBV's SUB_TYPE_VTT branch.
func parseVTTTiming(s string) (start, stop int64, ok bool) {
	if m := reVTTLong.FindStringSubmatch(s); m != nil {
		return vttPair(0, m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	}
	if m := reVTTMixLR.FindStringSubmatch(s); m != nil {
		// short --> long: m1,s1,d1, h2,m2,s2,d2
		return vttPair2("0", m[1], m[2], m[3], m[4], m[5], m[6], m[7])
	}
	if m := reVTTMixRL.FindStringSubmatch(s); m != nil {
		// long --> short: h1,m1,s1,d1, m2,s2,d2
		return vttPair2(m[1], m[2], m[3], m[4], "0", m[5], m[6], m[7])
	}
	if m := reVTTShort.FindStringSubmatch(s); m != nil {
		return vttPair2("0", m[1], m[2], m[3], "0", m[4], m[5], m[6])
	}
	return 0, 0, false
}

func vttPair(_ int, h1, m1, s1, d1, h2, m2, s2, d2 string) (int64, int64, bool) {
	return vttPair2(h1, m1, s1, d1, h2, m2, s2, d2)
}

func vttPair2(h1, m1, s1, d1, h2, m2, s2, d2 string) (int64, int64, bool) {
	start := (atoi(h1)*3600*1000 + atoi(m1)*60*1000 + atoi(s1)*1000 + atoi(d1)) * 1000
	stop := (atoi(h2)*3600*1000 + atoi(m2)*60*1000 + atoi(s2)*1000 + atoi(d2)) * 1000
	return start, stop, true
}

// parseRealTime parses RealText's flexible timestamp grammar: "H:M:S.f",
// "M:S.f", "S.f", "M:S", "S", trying each in turn in the order
// ParseRealTime does. f is hundredths of a second (x10 ms). An empty
// string yields 0 (ParseRealTime's "*psz == '\0'" early return);
// parseRealText never passes one, and leaves a cue without an end time
// unbounded instead.
func parseRealTime(s string) (int64, bool) {
	if s == "" {
		return 0, true
	}
	if m := reRealTimeHMSF.FindStringSubmatch(s); m != nil {
		h, mi, sec, f := atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4])
		return ((h*60+mi)*60+sec)*1000*1000 + f*10*1000, true
	}
	if m := reRealTimeMSF.FindStringSubmatch(s); m != nil {
		mi, sec, f := atoi(m[1]), atoi(m[2]), atoi(m[3])
		return (mi*60+sec)*1000*1000 + f*10*1000, true
	}
	if m := reRealTimeSF.FindStringSubmatch(s); m != nil {
		sec, f := atoi(m[1]), atoi(m[2])
		return sec*1000*1000 + f*10*1000, true
	}
	if m := reRealTimeMS.FindStringSubmatch(s); m != nil {
		mi, sec := atoi(m[1]), atoi(m[2])
		return (mi*60 + sec) * 1000 * 1000, true
	}
	if m := reRealTimeS.FindStringSubmatch(s); m != nil {
		return atoi(m[1]) * 1000 * 1000, true
	}
	return 0, false
}
