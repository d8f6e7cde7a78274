package export

import (
	"strconv"
	"strings"

	"aqcalc/internal/pipeline"
)

// Line formats a single unit as "<text> | AQ Value: <value>".
func Line(u pipeline.Unit) string {
	return u.Text + " | AQ Value: " + strconv.Itoa(u.Value)
}

// Text returns the newline-joined Line of every unit. There is no trailing
// newline; an empty result set yields an empty buffer.
func Text(rs *pipeline.ResultSet) []byte {
	if rs.Len() == 0 {
		return []byte{}
	}
	lines := make([]string, len(rs.Units))
	for i, u := range rs.Units {
		lines[i] = Line(u)
	}
	return []byte(strings.Join(lines, "\n"))
}
