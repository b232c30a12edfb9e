package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/snarg/ytscribe/internal/transcript"
)

// DefaultAPIURL is the youtube-transcript.io batch endpoint.
const DefaultAPIURL = "https://www.youtube-transcript.io/api/transcripts"

var (
	// ErrInvalidInput means the video reference could not be resolved to an ID.
	ErrInvalidInput = errors.New("invalid video reference")
	// ErrNoTranscript means the provider answered but had nothing usable.
	ErrNoTranscript = errors.New("no transcript available")
)

// UpstreamError is a non-2xx answer from the transcript provider.
// Message is safe to show users; Body is the raw upstream reply, for logs.
type UpstreamError struct {
	Status  int
	Message string
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("transcript API error (status %d): %s", e.Status, e.Message)
}

// Client fetches transcripts from youtube-transcript.io. One request per
// call; nothing is cached or retried.
type Client struct {
	apiKey string
	url    string
	client *http.Client
}

// NewClient creates a transcript provider client. An empty url selects DefaultAPIURL.
func NewClient(apiKey, url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultAPIURL
	}
	return &Client{
		apiKey: apiKey,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch acquires the transcript for videoID, preferring an English track.
func (c *Client) Fetch(ctx context.Context, videoID string) (*transcript.Result, error) {
	entry, err := c.fetchEntry(ctx, videoID)
	if err != nil {
		return nil, err
	}

	var segs []transcript.Segment
	lang := ""
	if t := entry.preferredTrack(); t != nil {
		segs = t.segments()
		lang = t.Language
	}
	if len(segs) == 0 {
		return nil, ErrNoTranscript
	}
	if lang == "" {
		lang = "en"
	}

	return &transcript.Result{
		Transcript:       segs,
		Metadata:         entry.metadata(videoID),
		Languages:        entry.languages(),
		OriginalLanguage: lang,
	}, nil
}

// FetchMetadata returns only the video metadata. The video must still have a
// usable transcript, since the provider is queried the same way.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*transcript.Metadata, error) {
	res, err := c.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return &res.Metadata, nil
}

// fetchEntry issues the provider request and returns the first video entry.
func (c *Client) fetchEntry(ctx context.Context, videoID string) (*videoEntry, error) {
	if !IsVideoID(videoID) {
		return nil, ErrInvalidInput
	}

	payload, err := json.Marshal(map[string][]string{"ids": {videoID}})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Status:  resp.StatusCode,
			Message: "Transcript API failed: " + http.StatusText(resp.StatusCode),
			Body:    string(body),
		}
	}

	entries, err := decodeEntries(body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoTranscript
	}
	return &entries[0], nil
}
