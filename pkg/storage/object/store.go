// Package object abstracts binary blob storage for generated PDFs. The
// preview flow persists renders here and hands the caller a durable URL.
package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving rendered documents and
// producing a URL a client can fetch them from.
type ObjectStore interface {
	Save(ctx context.Context, key, contentType string, r io.Reader) (int64, error)
	URL(ctx context.Context, key string) (string, error)
}
