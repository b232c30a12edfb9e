package youtube

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/snarg/ytscribe/internal/transcript"
)

// videoEntry is one video in a youtube-transcript.io response.
type videoEntry struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Tracks      []track      `json:"tracks"`
	Microformat *microformat `json:"microformat"`
}

type track struct {
	Language   string      `json:"language"`
	Transcript []trackLine `json:"transcript"`
}

// trackLine is a raw caption line. Timing fields are optional upstream.
type trackLine struct {
	Text     string   `json:"text"`
	Start    *float64 `json:"start"`
	Duration *float64 `json:"duration"`
}

type microformat struct {
	PlayerMicroformatRenderer *struct {
		Description *struct {
			SimpleText string `json:"simpleText"`
		} `json:"description"`
		OwnerChannelName string `json:"ownerChannelName"`
		Category         string `json:"category"`
	} `json:"playerMicroformatRenderer"`
}

// responseShape names which of the accepted response layouts a body uses:
// a bare array of videos, an object wrapping them in "transcripts", or a
// single video object carrying an "id".
type responseShape int

const (
	shapeUnknown responseShape = iota
	shapeArray
	shapeWrapped
	shapeSingle
)

// objectShape reads just enough of an object body to pick its shape.
type objectShape struct {
	ID          string          `json:"id"`
	Transcripts json.RawMessage `json:"transcripts"`
}

// classify inspects body and returns its shape.
func classify(body []byte) (responseShape, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return shapeUnknown, nil
	}
	switch trimmed[0] {
	case '[':
		return shapeArray, nil
	case '{':
		var p objectShape
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return shapeUnknown, err
		}
		if t := bytes.TrimSpace(p.Transcripts); len(t) > 0 && t[0] == '[' {
			return shapeWrapped, nil
		}
		if p.ID != "" {
			return shapeSingle, nil
		}
	}
	return shapeUnknown, nil
}

// decodeEntries normalizes any accepted response layout into a list of
// video entries. Unrecognized layouts decode to an empty list.
func decodeEntries(body []byte) ([]videoEntry, error) {
	shape, err := classify(body)
	if err != nil {
		return nil, fmt.Errorf("decode transcript response: %w", err)
	}

	var entries []videoEntry
	switch shape {
	case shapeArray:
		err = json.Unmarshal(body, &entries)
	case shapeWrapped:
		var w struct {
			Transcripts []videoEntry `json:"transcripts"`
		}
		err = json.Unmarshal(body, &w)
		entries = w.Transcripts
	case shapeSingle:
		var v videoEntry
		err = json.Unmarshal(body, &v)
		entries = []videoEntry{v}
	}
	if err != nil {
		return nil, fmt.Errorf("decode transcript response: %w", err)
	}
	return entries, nil
}

// preferredTrack picks the English track, else the first one. Returns nil
// when the entry has no tracks.
func (v *videoEntry) preferredTrack() *track {
	for i := range v.Tracks {
		lang := strings.ToLower(v.Tracks[i].Language)
		if lang == "english" || lang == "en" {
			return &v.Tracks[i]
		}
	}
	if len(v.Tracks) > 0 {
		return &v.Tracks[0]
	}
	return nil
}

func (v *videoEntry) languages() []string {
	langs := make([]string, len(v.Tracks))
	for i, t := range v.Tracks {
		langs[i] = t.Language
	}
	return langs
}

// metadata derives display metadata, substituting placeholders for gaps.
func (v *videoEntry) metadata(videoID string) transcript.Metadata {
	md := transcript.Metadata{
		Title:        v.Title,
		Channel:      "Unknown Channel",
		ThumbnailURL: ThumbnailURL(videoID),
	}
	if md.Title == "" {
		md.Title = "--"
	}
	if v.Microformat != nil && v.Microformat.PlayerMicroformatRenderer != nil {
		r := v.Microformat.PlayerMicroformatRenderer
		if r.OwnerChannelName != "" {
			md.Channel = r.OwnerChannelName
		}
		if r.Description != nil {
			md.Description = r.Description.SimpleText
		}
	}
	return md
}

// segments maps a track's raw lines onto transcript segments. Missing timing
// becomes zero.
func (t *track) segments() []transcript.Segment {
	segs := make([]transcript.Segment, 0, len(t.Transcript))
	for _, l := range t.Transcript {
		s := transcript.Segment{Text: l.Text}
		if l.Start != nil {
			s.Start = *l.Start
		}
		if l.Duration != nil {
			s.Duration = *l.Duration
		}
		segs = append(segs, s)
	}
	return segs
}
