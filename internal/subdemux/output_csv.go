package subdemux

import (
	"bytes"
	"fmt"
	"strings"
)

// RenderCSV renders a Handle as one line per cue, grounded on the reference
// CLI's RenderCSV. Embedded newlines in cue text are escaped to "\N" so the
// format stays one record per line without needing RFC 4180 quoting.
func RenderCSV(h *Handle) string {
	var buf bytes.Buffer
	buf.WriteString("index,start_us,stop_us,text\n")
	for i, cue := range h.Cues() {
		fmt.Fprintf(&buf, "%d,%d,%d,%s\n", i+1, cue.StartUs, cue.StopUs, strings.ReplaceAll(cue.Text, "\n", "\\N"))
	}
	return buf.String()
}
