package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns a canned reply or error and records prompts it saw.
type stubProvider struct {
	name    string
	reply   string
	err     error
	prompts []string
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Model() string { return s.name + "-test" }

func newTestOrchestrator(primary, secondary *stubProvider, maxChars int) *Orchestrator {
	return NewOrchestrator(Options{
		Primary:         primary,
		Secondary:       secondary,
		SummaryMaxChars: maxChars,
		Log:             zerolog.Nop(),
	})
}

func TestCleanup_PrimarySucceeds(t *testing.T) {
	a := &stubProvider{name: "gemini", reply: "clean"}
	b := &stubProvider{name: "openai", reply: "other"}

	out, err := newTestOrchestrator(a, b, 0).Cleanup(context.Background(), "um so yeah")
	require.NoError(t, err)
	assert.Equal(t, &Outcome{Content: "clean", Provider: "gemini"}, out)
	assert.Empty(t, b.prompts, "secondary must not be called")
	require.Len(t, a.prompts, 1)
	assert.True(t, strings.HasPrefix(a.prompts[0], "You are a transcript editor."))
	assert.True(t, strings.HasSuffix(a.prompts[0], "um so yeah"))
}

func TestCleanup_FallsBackSilently(t *testing.T) {
	a := &stubProvider{name: "gemini", err: errors.New("boom")}
	b := &stubProvider{name: "openai", reply: "tidy"}

	out, err := newTestOrchestrator(a, b, 0).Cleanup(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "tidy", out.Content)
	assert.Equal(t, "openai", out.Provider)
	require.Len(t, a.prompts, 1)
	require.Len(t, b.prompts, 1)
	assert.True(t, strings.HasPrefix(b.prompts[0], "Fix this transcript grammar"))
}

func TestSummarize_BothFail(t *testing.T) {
	errA := &StatusError{Provider: "gemini", Status: 500, Body: "down"}
	errB := errors.New("network unreachable")
	a := &stubProvider{name: "gemini", err: errA}
	b := &stubProvider{name: "openai", err: errB}

	_, err := newTestOrchestrator(a, b, 0).Summarize(context.Background(), "text", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAIProvider)
	assert.ErrorIs(t, err, errB)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 500, se.Status)

	var pe *ProviderError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "summarize", pe.Operation)
	assert.Len(t, a.prompts, 1, "each provider is tried once")
	assert.Len(t, b.prompts, 1, "each provider is tried once")
}

func TestSummarize_PromptAndTruncation(t *testing.T) {
	a := &stubProvider{name: "gemini", reply: "summary"}
	b := &stubProvider{name: "openai"}

	text := strings.Repeat("é", 20)
	out, err := newTestOrchestrator(a, b, 8).Summarize(context.Background(), text, "")
	require.NoError(t, err)
	assert.Equal(t, "summary", out.Content)

	require.Len(t, a.prompts, 1)
	p := a.prompts[0]
	assert.Contains(t, p, `Video: "YouTube Video"`)
	assert.True(t, strings.HasSuffix(p, "Transcript:\n"+strings.Repeat("é", 8)))
}

func TestSummarize_Title(t *testing.T) {
	a := &stubProvider{name: "gemini", reply: "ok"}
	_, err := newTestOrchestrator(a, &stubProvider{name: "openai"}, 0).Summarize(context.Background(), "x", "My Talk")
	require.NoError(t, err)
	assert.Contains(t, a.prompts[0], `Video: "My Talk"`)
}

func TestSummarize_SamePromptForBothProviders(t *testing.T) {
	a := &stubProvider{name: "gemini", err: errors.New("nope")}
	b := &stubProvider{name: "openai", reply: "ok"}
	_, err := newTestOrchestrator(a, b, 0).Summarize(context.Background(), "body", "t")
	require.NoError(t, err)
	assert.Equal(t, a.prompts, b.prompts)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "日本", truncate("日本語", 2))
	assert.Equal(t, "日本語", truncate("日本語", 3))
}

func TestProviders(t *testing.T) {
	o := newTestOrchestrator(&stubProvider{name: "gemini"}, &stubProvider{name: "openai"}, 0)
	p, s := o.Providers()
	assert.Equal(t, "gemini", p)
	assert.Equal(t, "openai", s)
}
