package subdemux

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RenderJSON renders a Handle as JSON, hand-rolled field-by-field in the
// same style as the reference CLI's RenderJSON rather than handed to a
// single json.Marshal call on a struct, so cue ordering and field order on
// the wire stay pinned exactly the way this function writes them.
func RenderJSON(h *Handle) string {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	writeJSONField(&buf, "format", h.FormatName(), false)
	buf.WriteString(",\n")
	writeJSONField(&buf, "cueCount", fmt.Sprintf("%d", h.Len()), true)
	buf.WriteString(",\n")
	writeJSONField(&buf, "lengthUs", fmt.Sprintf("%d", h.Length()), true)
	buf.WriteString(",\n")
	writeJSONField(&buf, "cues", renderJSONCues(h.Cues()), true)
	buf.WriteString("\n}\n")
	return buf.String()
}

func renderJSONCues(cues []Cue) string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, cue := range cues {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		writeJSONField(&buf, "startUs", fmt.Sprintf("%d", cue.StartUs), true)
		buf.WriteString(",")
		writeJSONField(&buf, "stopUs", fmt.Sprintf("%d", cue.StopUs), true)
		buf.WriteString(",")
		writeJSONField(&buf, "text", cue.Text, false)
		buf.WriteString("}")
	}
	if len(cues) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.String()
}

func writeJSONField(buf *bytes.Buffer, key, value string, raw bool) {
	buf.WriteString("\"")
	buf.WriteString(key)
	buf.WriteString("\":")
	if raw {
		buf.WriteString(value)
		return
	}
	data, _ := json.Marshal(value)
	buf.Write(data)
}
