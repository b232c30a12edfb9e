package api

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/snarg/ytscribe/internal/config"
	"github.com/snarg/ytscribe/internal/metrics"
	"gopkg.in/yaml.v3"
)

type Server struct {
	http *http.Server
	log  zerolog.Logger
}

// ServerOptions carries everything the router needs.
type ServerOptions struct {
	Config      *config.Config
	Transcripts TranscriptSource
	AI          TextOperator
	Providers   []string // AI provider names in fallback order, reported by /api/health
	WebFiles    fs.FS    // nil disables the UI
	OpenAPISpec []byte
	Version     string
	StartTime   time.Time
	Log         zerolog.Logger
}

func NewServer(opts ServerOptions) *Server {
	return &Server{
		http: &http.Server{
			Addr:         opts.Config.HTTPAddr,
			Handler:      NewRouter(opts),
			ReadTimeout:  opts.Config.ReadTimeout,
			WriteTimeout: opts.Config.WriteTimeout,
			IdleTimeout:  opts.Config.IdleTimeout,
		},
		log: opts.Log,
	}
}

// NewRouter builds the HTTP handler tree. Split out of NewServer so tests
// can drive it through httptest.
func NewRouter(opts ServerOptions) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(RequestID)
	r.Use(Recoverer)
	r.Use(Logger(opts.Log))
	r.Use(metrics.InstrumentHandler)
	r.Use(CORSWithOrigins(opts.Config.CORSOrigins))

	health := NewHealthHandler(opts.Version, opts.StartTime, opts.Providers)
	r.Get("/api/health", health.ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/transcript", NewTranscriptHandler(opts.Transcripts).Fetch)
	r.Post("/api/ai-cleanup", NewTextOpsHandler(opts.AI).Run)
	r.Post("/api/format", Format)
	r.Post("/api/manual-paste", ManualPaste)
	r.Post("/api/search", Search)

	if len(opts.OpenAPISpec) > 0 {
		r.Get("/api/openapi.yaml", OpenAPIHandler(opts.OpenAPISpec))
		r.Get("/api/openapi.json", OpenAPIJSONHandler(opts.OpenAPISpec, opts.Log))
	}
	if opts.WebFiles != nil {
		r.Handle("/*", http.FileServer(http.FS(opts.WebFiles)))
	}

	return r
}

// OpenAPIHandler serves the embedded API description.
func OpenAPIHandler(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec)
	}
}

// OpenAPIJSONHandler serves the API description converted to JSON. The
// conversion runs once; a document that fails to parse yields 500s.
func OpenAPIJSONHandler(spec []byte, log zerolog.Logger) http.HandlerFunc {
	var doc map[string]any
	err := yaml.Unmarshal(spec, &doc)
	if err != nil {
		log.Error().Err(err).Msg("openapi spec is not valid YAML")
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "API Error", "API description unavailable")
			return
		}
		WriteJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("http server starting")
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")
	return s.http.Shutdown(ctx)
}
