package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RemoteProvider calls the hosted suggestion API. It retries transport
// failures with exponential backoff; a per-request API is the paid fallback
// when no local sidecar is present.
type RemoteProvider struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewRemoteProvider(baseURL, apiKey string) *RemoteProvider {
	return &RemoteProvider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *RemoteProvider) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := p.doPostWithRetry(ctx, "/v1/suggest", b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assist service returned status %d", resp.StatusCode)
	}

	text, err := extractOutput(body)
	if err != nil {
		return nil, err
	}
	return &Suggestion{Text: text, Source: "remote"}, nil
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
func (p *RemoteProvider) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if p.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+p.APIKey)
		}

		resp, err := p.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// extractOutput reads the suggestion text from a provider response. Accepts
// {"output": "..."} and falls back to scanning for an embedded JSON object
// when the service wraps its answer in prose or code fences.
func extractOutput(body []byte) (string, error) {
	var resp struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Output != "" {
		return strings.TrimSpace(resp.Output), nil
	}

	s := string(body)
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(s[start:end+1]), &resp); err == nil && resp.Output != "" {
			return strings.TrimSpace(resp.Output), nil
		}
	}
	return "", errors.New("assist service returned no usable output")
}
