package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// DefaultFileMode is applied when a FileStore creates a new file.
const DefaultFileMode fs.FileMode = 0o644

// FileStoreConfig configures filesystem access.
type FileStoreConfig struct {
	// BaseDir resolves relative document paths. Absolute paths are used as is.
	BaseDir string
	// FileMode is used when a write creates the file. Defaults to 0644.
	FileMode fs.FileMode
}

// FileStore reads and writes documents on the local filesystem. Writes
// overwrite the target in place without a temporary file or rename.
type FileStore struct {
	baseDir string
	mode    fs.FileMode
}

// NewFileStore constructs a filesystem-backed store.
func NewFileStore(cfg FileStoreConfig) *FileStore {
	mode := cfg.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}
	baseDir := strings.TrimSpace(cfg.BaseDir)
	if baseDir != "" {
		baseDir = filepath.Clean(baseDir)
	}
	return &FileStore{
		baseDir: baseDir,
		mode:    mode,
	}
}

// ReadDocument reads the whole file and checks it decodes as UTF-8.
func (s *FileStore) ReadDocument(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, target, err)
		}
		return nil, fmt.Errorf("storage: read %s: %w", target, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, target)
	}
	return data, nil
}

// WriteDocument replaces the file contents. Missing parent directories are
// not created, so writing below a non-existent directory fails.
func (s *FileStore) WriteDocument(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, data, s.mode); err != nil {
		return fmt.Errorf("storage: write %s: %w", target, err)
	}
	return nil
}

func (s *FileStore) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrPathRequired
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) || s.baseDir == "" {
		return clean, nil
	}
	return filepath.Join(s.baseDir, clean), nil
}
