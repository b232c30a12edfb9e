package transcript

import "math"

// DefaultDuration is the assumed cue length in seconds when a source gives none.
const DefaultDuration = 3.0

// MaxOffset is the largest offset a cue time can carry, 99:59:59,999.
const MaxOffset = 99*3600 + 59*60 + 59.999

// ClampOffset maps an offset into [0, MaxOffset]. NaN and negatives become 0.
func ClampOffset(secs float64) float64 {
	switch {
	case math.IsNaN(secs) || secs < 0:
		return 0
	case secs > MaxOffset:
		return MaxOffset
	}
	return secs
}

// Segment is one timed unit of transcript text.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds from video start
	Duration float64 `json:"duration"` // seconds
}

// Metadata describes the video a transcript belongs to.
type Metadata struct {
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Result is a complete acquisition result. It is built once and never mutated.
type Result struct {
	Transcript       []Segment `json:"transcript"`
	Metadata         Metadata  `json:"metadata"`
	Languages        []string  `json:"languages"`
	OriginalLanguage string    `json:"originalLanguage"`
}

// effectiveDuration returns the segment's duration, or DefaultDuration if unset.
func (s Segment) effectiveDuration() float64 {
	if s.Duration > 0 {
		return s.Duration
	}
	return DefaultDuration
}
