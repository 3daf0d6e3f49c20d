package storage

import (
	"context"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// MemoryStore keeps documents in a map keyed by path.
type MemoryStore struct {
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		documents: map[string][]byte{},
	}
}

// ReadDocument returns a copy of the stored document.
func (s *MemoryStore) ReadDocument(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	s.mu.RLock()
	data, ok := s.documents[path]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, path, fs.ErrNotExist)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return slices.Clone(data), nil
}

// WriteDocument stores a copy of data under path.
func (s *MemoryStore) WriteDocument(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return ErrPathRequired
	}

	stored := slices.Clone(data)
	if stored == nil {
		stored = []byte{}
	}
	s.mu.Lock()
	s.documents[path] = stored
	s.mu.Unlock()
	return nil
}

// Paths lists the stored document paths in sorted order.
func (s *MemoryStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.documents))
	for path := range s.documents {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}
