package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snarg/ytscribe/internal/metrics"
)

// DefaultSummaryMaxChars bounds the transcript prefix sent for summarization.
const DefaultSummaryMaxChars = 6000

// ErrAIProvider is matched by errors.Is when every provider failed.
var ErrAIProvider = errors.New("all AI providers failed")

// ProviderError reports that both the primary and secondary provider failed.
type ProviderError struct {
	Operation string
	Primary   error
	Secondary error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: primary: %v; secondary: %v", e.Operation, e.Primary, e.Secondary)
}

func (e *ProviderError) Unwrap() []error { return []error{e.Primary, e.Secondary} }

func (e *ProviderError) Is(target error) bool { return target == ErrAIProvider }

// Outcome is a generated text tagged with the provider that produced it.
type Outcome struct {
	Content  string
	Provider string
}

// Options configures an Orchestrator.
type Options struct {
	Primary         Provider
	Secondary       Provider
	SummaryMaxChars int // 0 = DefaultSummaryMaxChars
	Log             zerolog.Logger
}

// Orchestrator runs text operations against a primary provider and silently
// falls back to a secondary one. Each provider is tried at most once.
type Orchestrator struct {
	primary   Provider
	secondary Provider
	maxChars  int
	log       zerolog.Logger
}

// role identifies which slot of the fallback pair a provider occupies.
type role int

const (
	rolePrimary role = iota
	roleSecondary
)

// NewOrchestrator creates an orchestrator from opts.
func NewOrchestrator(opts Options) *Orchestrator {
	maxChars := opts.SummaryMaxChars
	if maxChars <= 0 {
		maxChars = DefaultSummaryMaxChars
	}
	return &Orchestrator{
		primary:   opts.Primary,
		secondary: opts.Secondary,
		maxChars:  maxChars,
		log:       opts.Log,
	}
}

// Providers returns the names of the primary and secondary providers.
func (o *Orchestrator) Providers() (primary, secondary string) {
	return o.primary.Name(), o.secondary.Name()
}

// Cleanup asks a provider to tidy transcript text: drop filler words, fix
// grammar and punctuation, merge broken sentences.
func (o *Orchestrator) Cleanup(ctx context.Context, text string) (*Outcome, error) {
	return o.withFallback(ctx, "cleanup", func(r role) string {
		return cleanupPrompt(r, text)
	})
}

// Summarize asks a provider for an overview, key points and takeaway. Text is
// truncated to the configured prefix length first.
func (o *Orchestrator) Summarize(ctx context.Context, text, title string) (*Outcome, error) {
	prompt := summaryPrompt(truncate(text, o.maxChars), title)
	return o.withFallback(ctx, "summarize", func(role) string {
		return prompt
	})
}

// withFallback tries the primary provider, then the secondary on any error.
func (o *Orchestrator) withFallback(ctx context.Context, op string, prompt func(role) string) (*Outcome, error) {
	content, errPrimary := o.call(ctx, o.primary, op, prompt(rolePrimary))
	if errPrimary == nil {
		return &Outcome{Content: content, Provider: o.primary.Name()}, nil
	}

	o.log.Warn().Err(errPrimary).
		Str("operation", op).
		Str("provider", o.primary.Name()).
		Str("fallback", o.secondary.Name()).
		Msg("primary provider failed, falling back")
	metrics.AIFallbacksTotal.WithLabelValues(op).Inc()

	content, errSecondary := o.call(ctx, o.secondary, op, prompt(roleSecondary))
	if errSecondary == nil {
		return &Outcome{Content: content, Provider: o.secondary.Name()}, nil
	}

	o.log.Error().Err(errSecondary).
		Str("operation", op).
		Str("provider", o.secondary.Name()).
		Msg("secondary provider failed")
	return nil, &ProviderError{Operation: op, Primary: errPrimary, Secondary: errSecondary}
}

func (o *Orchestrator) call(ctx context.Context, p Provider, op, prompt string) (string, error) {
	start := time.Now()
	content, err := p.Generate(ctx, prompt)
	metrics.AIRequestDuration.WithLabelValues(p.Name()).Observe(time.Since(start).Seconds())

	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.AIRequestsTotal.WithLabelValues(p.Name(), op, result).Inc()

	o.log.Debug().
		Str("operation", op).
		Str("provider", p.Name()).
		Str("model", p.Model()).
		Dur("duration", time.Since(start)).
		Bool("ok", err == nil).
		Msg("provider call")
	return content, err
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
