package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/snarg/ytscribe/internal/metrics"
	"github.com/snarg/ytscribe/internal/transcript"
	"github.com/snarg/ytscribe/internal/youtube"
)

// TranscriptSource acquires transcripts for a video ID.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoID string) (*transcript.Result, error)
	FetchMetadata(ctx context.Context, videoID string) (*transcript.Metadata, error)
}

type TranscriptHandler struct {
	src TranscriptSource
}

func NewTranscriptHandler(src TranscriptSource) *TranscriptHandler {
	return &TranscriptHandler{src: src}
}

type transcriptRequest struct {
	VideoID      string `json:"videoId"`
	URL          string `json:"url"`
	MetadataOnly bool   `json:"metadataOnly"`
}

// resolveVideoID picks the explicit videoId if given, else extracts one from url.
func (req transcriptRequest) resolveVideoID() (string, bool) {
	if req.VideoID != "" {
		return req.VideoID, youtube.IsVideoID(req.VideoID)
	}
	return youtube.ExtractVideoID(req.URL)
}

// Fetch handles POST /api/transcript.
func (h *TranscriptHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var req transcriptRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return
	}

	videoID, ok := req.resolveVideoID()
	if !ok {
		metrics.TranscriptFetchesTotal.WithLabelValues("invalid").Inc()
		WriteError(w, http.StatusBadRequest, "Invalid YouTube URL", "Please enter a valid YouTube URL")
		return
	}

	log := hlog.FromRequest(r).With().Str("video_id", videoID).Logger()

	if req.MetadataOnly {
		md, err := h.src.FetchMetadata(r.Context(), videoID)
		if err != nil {
			writeTranscriptError(w, r, err)
			return
		}
		metrics.TranscriptFetchesTotal.WithLabelValues("ok").Inc()
		WriteJSON(w, http.StatusOK, md)
		return
	}

	res, err := h.src.Fetch(r.Context(), videoID)
	if err != nil {
		writeTranscriptError(w, r, err)
		return
	}
	metrics.TranscriptFetchesTotal.WithLabelValues("ok").Inc()
	log.Debug().
		Int("segments", len(res.Transcript)).
		Str("language", res.OriginalLanguage).
		Msg("transcript fetched")
	WriteJSON(w, http.StatusOK, res)
}

// writeTranscriptError maps acquisition failures onto HTTP responses.
func writeTranscriptError(w http.ResponseWriter, r *http.Request, err error) {
	log := hlog.FromRequest(r)

	var ue *youtube.UpstreamError
	switch {
	case errors.Is(err, youtube.ErrInvalidInput):
		metrics.TranscriptFetchesTotal.WithLabelValues("invalid").Inc()
		WriteError(w, http.StatusBadRequest, "Invalid YouTube URL", "Please enter a valid YouTube URL")
	case errors.Is(err, youtube.ErrNoTranscript):
		metrics.TranscriptFetchesTotal.WithLabelValues("no_transcript").Inc()
		WriteError(w, http.StatusNotFound, "No Transcript", "No transcript available for this video")
	case errors.As(err, &ue):
		metrics.TranscriptFetchesTotal.WithLabelValues("upstream_error").Inc()
		log.Error().Int("status", ue.Status).Str("body", ue.Body).Msg("transcript API error")
		status := ue.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		WriteError(w, status, "API Error", ue.Message)
	default:
		metrics.TranscriptFetchesTotal.WithLabelValues("error").Inc()
		log.Error().Err(err).Msg("transcript fetch failed")
		WriteError(w, http.StatusInternalServerError, "API Error", "Failed to process request")
	}
}
