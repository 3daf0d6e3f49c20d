package interfaces

import "context"

// DocumentStore is the backing store for Markdown documents. Reads return the
// full document; writes replace it entirely.
type DocumentStore interface {
	ReadDocument(ctx context.Context, path string) ([]byte, error)
	WriteDocument(ctx context.Context, path string, data []byte) error
}
