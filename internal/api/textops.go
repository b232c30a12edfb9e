package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"github.com/snarg/ytscribe/internal/ai"
	"github.com/snarg/ytscribe/internal/spellcheck"
)

// Operation names accepted in the "type" field.
const (
	OpSpellcheck = "spellcheck"
	OpCleanup    = "ai-cleanup"
	OpSummarize  = "summarize"
)

// TextOperator runs the remote AI text operations.
type TextOperator interface {
	Cleanup(ctx context.Context, text string) (*ai.Outcome, error)
	Summarize(ctx context.Context, text, title string) (*ai.Outcome, error)
}

type TextOpsHandler struct {
	ai TextOperator
}

func NewTextOpsHandler(op TextOperator) *TextOpsHandler {
	return &TextOpsHandler{ai: op}
}

type textOpRequest struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

type cleanupResponse struct {
	Original string `json:"original"`
	Cleaned  string `json:"cleaned"`
	Provider string `json:"provider"`
}

type summaryResponse struct {
	Summary  string `json:"summary"`
	Provider string `json:"provider"`
}

// Run handles POST /api/ai-cleanup. Spellcheck runs locally; the other
// operations go through the provider fallback pair.
func (h *TextOpsHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req textOpRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request", "Request body must be valid JSON")
		return
	}
	if req.Text == "" {
		WriteError(w, http.StatusBadRequest, "Missing text", "Text is required")
		return
	}

	switch req.Type {
	case OpSpellcheck:
		WriteJSON(w, http.StatusOK, spellcheck.Check(req.Text))

	case OpCleanup:
		out, err := h.ai.Cleanup(r.Context(), req.Text)
		if err != nil {
			writeAIError(w, r, req.Type, err)
			return
		}
		WriteJSON(w, http.StatusOK, cleanupResponse{Original: req.Text, Cleaned: out.Content, Provider: out.Provider})

	case OpSummarize:
		out, err := h.ai.Summarize(r.Context(), req.Text, req.Title)
		if err != nil {
			writeAIError(w, r, req.Type, err)
			return
		}
		WriteJSON(w, http.StatusOK, summaryResponse{Summary: out.Content, Provider: out.Provider})

	default:
		WriteError(w, http.StatusBadRequest, "Invalid type", "Type must be 'spellcheck', 'ai-cleanup', or 'summarize'")
	}
}

func writeAIError(w http.ResponseWriter, r *http.Request, op string, err error) {
	hlog.FromRequest(r).Error().Err(err).Str("operation", op).Msg("ai operation failed")
	WriteError(w, http.StatusInternalServerError, "API Error", "Failed to process cleanup request")
}
