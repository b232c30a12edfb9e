package transcript

import (
	"strings"
	"unicode/utf8"
)

// Match is a segment that contains the search query. Fragments split its
// text into alternating plain and matching runs for highlighting; joined
// they reproduce Segment.Text exactly.
type Match struct {
	Index     int        `json:"index"` // position in the searched sequence
	Segment   Segment    `json:"segment"`
	Fragments []Fragment `json:"fragments"`
}

// Fragment is one run of a matched segment's text.
type Fragment struct {
	Text string `json:"text"`
	Hit  bool   `json:"hit"`
}

// Stats summarizes a transcript for display.
type Stats struct {
	Segments int     `json:"segments"`
	Words    int     `json:"words"`
	Chars    int     `json:"chars"`
	Duration float64 `json:"duration"` // seconds
}

// Search returns the segments whose text contains query, ignoring case.
// A blank query matches every segment with no highlight ranges.
func Search(segs []Segment, query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]Match, 0, len(segs))
	for i, s := range segs {
		if q == "" {
			matches = append(matches, Match{Index: i, Segment: s, Fragments: fragments(s.Text, nil)})
			continue
		}
		if ranges := findAll(s.Text, q); len(ranges) > 0 {
			matches = append(matches, Match{Index: i, Segment: s, Fragments: fragments(s.Text, ranges)})
		}
	}
	return matches
}

// fragments cuts text at the given sorted, non-overlapping byte ranges.
func fragments(text string, ranges [][2]int) []Fragment {
	out := make([]Fragment, 0, 2*len(ranges)+1)
	pos := 0
	for _, r := range ranges {
		if r[0] > pos {
			out = append(out, Fragment{Text: text[pos:r[0]]})
		}
		out = append(out, Fragment{Text: text[r[0]:r[1]], Hit: true})
		pos = r[1]
	}
	if pos < len(text) || len(out) == 0 {
		out = append(out, Fragment{Text: text[pos:]})
	}
	return out
}

// findAll returns non-overlapping byte ranges in text where the lowercase
// query occurs. Ranges index the original text, so lowering is done per rune
// to keep offsets aligned when case mapping changes a rune's width.
func findAll(text, q string) [][2]int {
	var ranges [][2]int
	for start := 0; start < len(text); {
		end, ok := hasFoldedPrefix(text[start:], q)
		if ok {
			ranges = append(ranges, [2]int{start, start + end})
			start += end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		start += size
	}
	return ranges
}

// hasFoldedPrefix reports whether the lowercased s starts with q and how many
// bytes of s that prefix spans.
func hasFoldedPrefix(s, q string) (int, bool) {
	i := 0
	for q != "" {
		if i >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		lower := strings.ToLower(string(r))
		if !strings.HasPrefix(q, lower) {
			return 0, false
		}
		q = q[len(lower):]
		i += size
	}
	return i, true
}

// Duration estimates the video length as the last segment's start plus
// DefaultDuration. An empty transcript has no duration.
func Duration(segs []Segment) float64 {
	if len(segs) == 0 {
		return 0
	}
	return ClampOffset(segs[len(segs)-1].Start + DefaultDuration)
}

// Summarize counts segments, words and characters of the joined text.
func Summarize(segs []Segment) Stats {
	joined := Compact(segs)
	return Stats{
		Segments: len(segs),
		Words:    len(strings.Fields(joined)),
		Chars:    utf8.RuneCountInString(joined),
		Duration: Duration(segs),
	}
}
