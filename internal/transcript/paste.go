package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// leadingStamp matches "[M:SS]" or "M:SS" at the start of a pasted line.
var leadingStamp = regexp.MustCompile(`^\[?(\d+):(\d+)\]?\s*`)

// ParseManualPaste turns raw pasted text into segments, one per non-empty line.
// A leading timestamp sets the start offset; otherwise lines are spaced
// DefaultDuration seconds apart by line index.
func ParseManualPaste(raw string) []Segment {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}

	segs := make([]Segment, 0, len(lines))
	for i, line := range lines {
		seg := Segment{Start: float64(i) * DefaultDuration, Duration: DefaultDuration}
		if m := leadingStamp.FindStringSubmatchIndex(line); m != nil {
			// Digit runs always parse; overlong ones come back as +Inf and clamp.
			mins, _ := strconv.ParseFloat(line[m[2]:m[3]], 64)
			secs, _ := strconv.ParseFloat(line[m[4]:m[5]], 64)
			seg.Start = ClampOffset(mins*60 + secs)
			line = line[m[1]:]
		}
		seg.Text = strings.TrimSpace(line)
		if seg.Text == "" {
			continue
		}
		segs = append(segs, seg)
	}
	return segs
}
