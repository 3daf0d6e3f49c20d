package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreReadWrite(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(FileStoreConfig{BaseDir: dir})
	ctx := context.Background()

	if err := store.WriteDocument(ctx, "README.md", []byte("# Title\nbody")); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "# Title\nbody" {
		t.Fatalf("unexpected file contents %q", string(data))
	}

	got, err := store.ReadDocument(ctx, "README.md")
	if err != nil {
		t.Fatalf("ReadDocument: %v", err)
	}
	if string(got) != "# Title\nbody" {
		t.Fatalf("unexpected document %q", string(got))
	}
}

func TestFileStoreOverwritesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	store := NewFileStore(FileStoreConfig{})
	if err := store.WriteDocument(context.Background(), path, []byte("short")); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "short" {
		t.Fatalf("expected full replacement, got %q", string(data))
	}
}

func TestFileStoreMissingDocument(t *testing.T) {
	store := NewFileStore(FileStoreConfig{BaseDir: t.TempDir()})

	_, err := store.ReadDocument(context.Background(), "missing.md")
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
}

func TestFileStoreRejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.md"), []byte{0xff, 0xfe, 'x'}, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewFileStore(FileStoreConfig{BaseDir: dir})

	if _, err := store.ReadDocument(context.Background(), "bad.md"); !errors.Is(err, ErrInvalidEncoding) {
		t.Fatalf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestFileStoreWriteIntoMissingDirectoryFails(t *testing.T) {
	store := NewFileStore(FileStoreConfig{BaseDir: t.TempDir()})

	err := store.WriteDocument(context.Background(), filepath.Join("nope", "doc.md"), []byte("x"))
	if err == nil {
		t.Fatalf("expected write into missing directory to fail")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFileStoreRequiresPath(t *testing.T) {
	store := NewFileStore(FileStoreConfig{})
	if _, err := store.ReadDocument(context.Background(), "  "); !errors.Is(err, ErrPathRequired) {
		t.Fatalf("expected ErrPathRequired, got %v", err)
	}
	if err := store.WriteDocument(context.Background(), "", nil); !errors.Is(err, ErrPathRequired) {
		t.Fatalf("expected ErrPathRequired, got %v", err)
	}
}

func TestFileStoreAppliesFileMode(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(FileStoreConfig{BaseDir: dir, FileMode: 0o600})
	if err := store.WriteDocument(context.Background(), "private.md", []byte("x")); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "private.md"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Fatalf("expected owner-only permissions, got %v", perm)
	}
}
