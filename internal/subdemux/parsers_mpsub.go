package subdemux

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var reMPSubFPS = regexp.MustCompile(`^FORMAT=(\d+(\.\d+)?)`)

// parseMPSub reads MPSub's header once per file (a "FORMAT=TIME" line picks
// centisecond-scaled timing, any other "FORMAT=<fps>" line picks frame
// timing) and then one "f1 f2" pair per cue. Each pair's values are scaled
// by the chosen factor and added cumulatively onto running state carried in
// demuxState — MPSub cue times are deltas from the previous cue, not
// absolute — grounded on ParseMPSub.
func parseMPSub(st *demuxState, lb *LineBuffer, _ int) (Cue, error) {
	if !st.mpsub.inited {
		for {
			line, ok := lb.Next()
			if !ok {
				return Cue{}, io.EOF
			}
			if !strings.Contains(line, "FORMAT") {
				continue
			}
			if strings.Contains(line, "FORMAT=TIME") {
				st.mpsub.factor = 100.0
				break
			}
			m := reMPSubFPS.FindStringSubmatch(line)
			if m == nil {
				return Cue{}, io.EOF
			}
			if _, err := strconv.ParseFloat(m[1], 64); err != nil {
				return Cue{}, io.EOF
			}
			st.mpsub.factor = 1.0
			break
		}
		st.mpsub.inited = true
	}

	var f1, f2 float64
	for {
		line, ok := lb.Next()
		if !ok {
			return Cue{}, io.EOF
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		v1, err1 := strconv.ParseFloat(fields[0], 64)
		v2, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		f1, f2 = v1, v2
		break
	}

	st.mpsub.cumulative += f1 * st.mpsub.factor
	start := int64(math.Round(st.mpsub.cumulative * 10000))
	st.mpsub.cumulative += f2 * st.mpsub.factor
	stop := int64(math.Round(st.mpsub.cumulative * 10000))

	var text strings.Builder
	for {
		line, ok := lb.Next()
		if !ok {
			break
		}
		if line == "" {
			break
		}
		if text.Len() > 0 {
			text.WriteByte('\n')
		}
		text.WriteString(line)
	}

	return Cue{StartUs: start, StopUs: stop, Text: text.String()}, nil
}
