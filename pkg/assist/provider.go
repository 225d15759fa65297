// Package assist generates writing suggestions for the resume editor. Two
// providers exist: an on-host inference sidecar (free when present) and a
// hosted API (always available). The selector probes local availability per
// call and falls back to remote, replacing the ambient capability detection
// the frontend used to do.
package assist

import (
	"context"
	"fmt"
)

// Request asks for a suggestion for one editor section.
type Request struct {
	Section string `json:"section"`
	Text    string `json:"text"`
	JobRole string `json:"jobRole,omitempty"`
}

// Suggestion is the generated text plus which provider produced it.
type Suggestion struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Provider generates a suggestion for a request.
type Provider interface {
	Suggest(ctx context.Context, req Request) (*Suggestion, error)
}

// Selector picks the local provider when its availability probe passes and
// the remote provider otherwise. Remote is always constructible, so a
// selector can never end up with no provider.
type Selector struct {
	local  *LocalProvider
	remote *RemoteProvider
}

func NewSelector(local *LocalProvider, remote *RemoteProvider) *Selector {
	return &Selector{local: local, remote: remote}
}

func (s *Selector) Suggest(ctx context.Context, req Request) (*Suggestion, error) {
	if req.Section == "" {
		return nil, fmt.Errorf("assist: section is required")
	}
	if s.local != nil && s.local.Available(ctx) {
		if sug, err := s.local.Suggest(ctx, req); err == nil {
			return sug, nil
		}
		// local probe passed but the call failed; remote takes over
	}
	return s.remote.Suggest(ctx, req)
}
