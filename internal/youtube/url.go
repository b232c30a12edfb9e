package youtube

import (
	"fmt"
	"regexp"
)

// Accepted URL shapes. Each is anchored, so trailing query params or paths
// after the ID are rejected.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(https?://)?(www\.)?youtube\.com/watch\?v=([\w-]{11})$`),
	regexp.MustCompile(`^(https?://)?(www\.)?youtu\.be/([\w-]{11})$`),
	regexp.MustCompile(`^(https?://)?(www\.)?youtube\.com/shorts/([\w-]{11})$`),
}

var videoIDPattern = regexp.MustCompile(`^[\w-]{11}$`)

const thumbnailTemplate = "https://img.youtube.com/vi/%s/maxresdefault.jpg"

// ValidateURL reports whether url is a watch, youtu.be, or shorts link.
func ValidateURL(url string) bool {
	for _, re := range urlPatterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// ExtractVideoID returns the 11-character video ID from a valid YouTube URL.
// Returns false for anything ValidateURL rejects.
func ExtractVideoID(url string) (string, bool) {
	if !ValidateURL(url) {
		return "", false
	}
	for _, re := range urlPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[3], true
		}
	}
	return "", false
}

// IsVideoID reports whether s has the shape of a bare video ID.
func IsVideoID(s string) bool {
	return videoIDPattern.MatchString(s)
}

// ThumbnailURL builds the CDN thumbnail URL for a video. Existence is not checked.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf(thumbnailTemplate, videoID)
}
