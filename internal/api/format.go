package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/snarg/ytscribe/internal/transcript"
)

type formatRequest struct {
	Transcript        []transcript.Segment `json:"transcript"`
	Format            string               `json:"format"`
	IncludeTimestamps *bool                `json:"includeTimestamps"`
	Title             string               `json:"title"`
}

type pasteRequest struct {
	Text string `json:"text"`
}

type pasteResponse struct {
	Transcript []transcript.Segment `json:"transcript"`
}

// Format handles POST /api/format. The rendered text is returned as-is with
// a matching content type; ?download=true adds an attachment disposition.
func Format(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return
	}
	if len(req.Transcript) == 0 {
		WriteError(w, http.StatusBadRequest, "Missing transcript", "Transcript is required")
		return
	}

	timestamps := true
	if req.IncludeTimestamps != nil {
		timestamps = *req.IncludeTimestamps
	}

	out, err := transcript.Format(req.Transcript, transcript.Options{
		Format:            req.Format,
		IncludeTimestamps: timestamps,
		Title:             req.Title,
	})
	if errors.Is(err, transcript.ErrUnknownFormat) {
		WriteError(w, http.StatusBadRequest, "Invalid format", "Format must be 'txt', 'md', 'srt', or 'compact'")
		return
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "API Error", "Failed to format transcript")
		return
	}

	w.Header().Set("Content-Type", transcript.ContentType(req.Format))
	if dl, _ := QueryBool(r, "download"); dl {
		name := downloadName(req.Title) + "." + transcript.Extension(req.Format)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

// ManualPaste handles POST /api/manual-paste.
func ManualPaste(w http.ResponseWriter, r *http.Request) {
	var req pasteRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return
	}
	segs := transcript.ParseManualPaste(req.Text)
	if len(segs) == 0 {
		WriteError(w, http.StatusBadRequest, "Missing text", "Paste some transcript text first")
		return
	}
	WriteJSON(w, http.StatusOK, pasteResponse{Transcript: segs})
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// downloadName turns a video title into a conservative file name stem.
func downloadName(title string) string {
	stem := strings.Trim(unsafeFilename.ReplaceAllString(title, "-"), "-.")
	if stem == "" {
		return "transcript"
	}
	if len(stem) > 80 {
		stem = stem[:80]
	}
	return stem
}
