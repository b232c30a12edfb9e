package transcript

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownFormat is returned by Format for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown format")

// Output format names accepted by Format.
const (
	FormatText     = "txt"
	FormatMarkdown = "md"
	FormatSRT      = "srt"
	FormatCompact  = "compact"
)

// Options controls how Format renders a transcript.
type Options struct {
	Format            string
	IncludeTimestamps bool
	Title             string // Markdown only
}

// NormalizeFormat maps accepted aliases onto the canonical format names.
// Returns "" for anything unrecognized.
func NormalizeFormat(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "txt", "text", "plain", "":
		return FormatText
	case "md", "markdown":
		return FormatMarkdown
	case "srt", "subtitles":
		return FormatSRT
	case "compact":
		return FormatCompact
	}
	return ""
}

// Format renders segments in the format named by opts.Format.
func Format(segs []Segment, opts Options) (string, error) {
	switch NormalizeFormat(opts.Format) {
	case FormatText:
		return PlainText(segs, opts.IncludeTimestamps), nil
	case FormatMarkdown:
		return Markdown(segs, opts.IncludeTimestamps, opts.Title), nil
	case FormatSRT:
		return SRT(segs), nil
	case FormatCompact:
		return Compact(segs), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// ContentType returns the MIME type used when serving a rendered format.
func ContentType(format string) string {
	switch NormalizeFormat(format) {
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatSRT:
		return "application/x-subrip; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Extension returns the file extension (without dot) for a rendered format.
func Extension(format string) string {
	switch NormalizeFormat(format) {
	case FormatMarkdown:
		return "md"
	case FormatSRT:
		return "srt"
	}
	return "txt"
}

// PlainText renders one "[M:SS] text" line per segment, or all texts joined
// by single spaces when timestamps are off.
func PlainText(segs []Segment, includeTimestamps bool) string {
	if !includeTimestamps {
		return Compact(segs)
	}
	lines := make([]string, len(segs))
	for i, s := range segs {
		lines[i] = "[" + Timestamp(s.Start) + "] " + s.Text
	}
	return strings.Join(lines, "\n")
}

// Markdown renders an optional "# title" header followed by one paragraph
// per segment.
func Markdown(segs []Segment, includeTimestamps bool, title string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString("# ")
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	paras := make([]string, len(segs))
	for i, s := range segs {
		if includeTimestamps {
			paras[i] = "**" + Timestamp(s.Start) + "** — " + s.Text
		} else {
			paras[i] = s.Text
		}
	}
	sb.WriteString(strings.Join(paras, "\n\n"))
	return sb.String()
}

// Compact joins segment texts with single spaces.
func Compact(segs []Segment) string {
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.Text
	}
	return strings.Join(texts, " ")
}

// SRT renders segments as SubRip cues. A cue ends where the next one starts;
// the last cue ends after its own duration.
func SRT(segs []Segment) string {
	blocks := make([]string, len(segs))
	for i, s := range segs {
		end := s.Start + s.effectiveDuration()
		if i+1 < len(segs) {
			end = segs[i+1].Start
		}
		if end < s.Start {
			end = s.Start
		}
		blocks[i] = strconv.Itoa(i+1) + "\n" + SRTTime(s.Start) + " --> " + SRTTime(end) + "\n" + s.Text
	}
	return strings.Join(blocks, "\n\n")
}

// Timestamp formats an offset for display: M:SS below one hour, H:MM:SS above.
func Timestamp(secs float64) string {
	total := wholeSeconds(secs)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// SRTTime formats an offset as HH:MM:SS,mmm.
func SRTTime(secs float64) string {
	secs = ClampOffset(secs)
	whole := math.Floor(secs)
	ms := int(math.Round((secs - whole) * 1000))
	total := int(whole)
	if ms >= 1000 {
		total++
		ms -= 1000
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d", total/3600, (total%3600)/60, total%60, ms)
}

func wholeSeconds(secs float64) int {
	return int(math.Floor(ClampOffset(secs)))
}
