package api

import (
	"net/http"

	"github.com/snarg/ytscribe/internal/transcript"
)

type searchRequest struct {
	Transcript []transcript.Segment `json:"transcript"`
	Query      string               `json:"query"`
}

type searchResponse struct {
	Query   string             `json:"query"`
	Matches []transcript.Match `json:"matches"`
	Stats   transcript.Stats   `json:"stats"`
}

// Search handles POST /api/search: case-insensitive filtering of segments
// plus transcript statistics for the segment view.
func Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return
	}
	if len(req.Transcript) == 0 {
		WriteError(w, http.StatusBadRequest, "Missing transcript", "Transcript is required")
		return
	}
	WriteJSON(w, http.StatusOK, searchResponse{
		Query:   req.Query,
		Matches: transcript.Search(req.Transcript, req.Query),
		Stats:   transcript.Summarize(req.Transcript),
	})
}
