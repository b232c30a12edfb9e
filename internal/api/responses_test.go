package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── QueryBool ────────────────────────────────────────────────────────

func TestQueryBool(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   bool
		wantOK bool
	}{
		{"true", "download=true", true, true},
		{"one", "download=1", true, true},
		{"false", "download=false", false, true},
		{"missing", "", false, false},
		{"invalid", "download=maybe", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := QueryBool(httptest.NewRequest("POST", "/?"+tt.query, nil), "download")
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

// ── WriteJSON ────────────────────────────────────────────────────────

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusCreated, map[string]string{"msg": "ok"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["msg"])
}

// ── WriteError ───────────────────────────────────────────────────────

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "No Transcript", "No transcript available for this video")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Error: "No Transcript", Message: "No transcript available for this video"}, body)
}

// ── DecodeJSON ───────────────────────────────────────────────────────

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Text string `json:"text"`
	}

	t.Run("valid_body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hello"}`))
		var dst payload
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &dst))
		assert.Equal(t, "hello", dst.Text)
	})

	t.Run("empty_body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		var dst payload
		assert.EqualError(t, DecodeJSON(httptest.NewRecorder(), req, &dst), "missing request body")
	})

	t.Run("invalid_json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
		var dst payload
		assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &dst))
	})

	t.Run("oversized_body", func(t *testing.T) {
		big := `{"text":"` + strings.Repeat("a", maxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(big))
		var dst payload
		assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, &dst), "body over the limit")
	})
}
