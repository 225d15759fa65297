package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LocalProvider talks to an inference sidecar on the same host. Availability
// is a cheap health probe with a short timeout so a missing sidecar costs
// almost nothing per call.
type LocalProvider struct {
	BaseURL string
	HTTP    *http.Client
}

func NewLocalProvider(baseURL string) *LocalProvider {
	return &LocalProvider{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether the sidecar answers its health endpoint.
func (p *LocalProvider) Available(ctx context.Context) bool {
	if p.BaseURL == "" {
		return false
	}
	probeCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, p.BaseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := p.HTTP.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (p *LocalProvider) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/suggest", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.HTTP.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("local assist returned status %d", resp.StatusCode)
	}

	text, err := extractOutput(body)
	if err != nil {
		return nil, err
	}
	return &Suggestion{Text: text, Source: "local"}, nil
}
