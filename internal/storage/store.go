// Package storage provides the backing stores Markdown documents are read
// from and written to. Every store replaces a document wholesale on write.
package storage

import (
	"errors"

	"github.com/goliatone/go-mdsections/pkg/interfaces"
)

var (
	// ErrDocumentNotFound is returned when the requested path holds no document.
	ErrDocumentNotFound = errors.New("storage: document not found")
	// ErrInvalidEncoding is returned when a document is not valid UTF-8 text.
	ErrInvalidEncoding = errors.New("storage: document is not valid utf-8")
	// ErrPathRequired is returned when a blank path is supplied.
	ErrPathRequired = errors.New("storage: document path is required")
)

var (
	_ interfaces.DocumentStore = (*FileStore)(nil)
	_ interfaces.DocumentStore = (*MemoryStore)(nil)
	_ interfaces.DocumentStore = (*BunStore)(nil)
)
