package storage

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/uptrace/bun"
)

var errBunDatabaseRequired = errors.New("storage: bun store requires a database")

// BunStore persists documents as rows of the markdown_documents table.
type BunStore struct {
	db *bun.DB
}

// NewBunStore constructs a Bun-backed store. Call EnsureSchema before first use
// when the table is not managed by migrations.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *BunStore) EnsureSchema(ctx context.Context) error {
	if s.db == nil {
		return errBunDatabaseRequired
	}
	if _, err := s.db.NewCreateTable().Model((*documentModel)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("storage: create markdown_documents: %w", err)
	}
	return nil
}

// ReadDocument loads the document body stored under path.
func (s *BunStore) ReadDocument(ctx context.Context, path string) ([]byte, error) {
	if s.db == nil {
		return nil, errBunDatabaseRequired
	}
	if strings.TrimSpace(path) == "" {
		return nil, ErrPathRequired
	}

	var model documentModel
	if err := s.db.NewSelect().Model(&model).Where("path = ?", path).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("storage: select %s: %w", path, err)
	}
	data := []byte(model.Body)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}
	return data, nil
}

// WriteDocument inserts or replaces the row for path in one upsert, so
// concurrent first writes to a path cannot collide on the primary key.
func (s *BunStore) WriteDocument(ctx context.Context, path string, data []byte) error {
	if s.db == nil {
		return errBunDatabaseRequired
	}
	if strings.TrimSpace(path) == "" {
		return ErrPathRequired
	}

	sum := sha256.Sum256(data)
	model := documentModel{
		Path:      path,
		Body:      string(data),
		Checksum:  hex.EncodeToString(sum[:]),
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := s.db.NewInsert().
		Model(&model).
		On("CONFLICT (path) DO UPDATE").
		Set("body = EXCLUDED.body").
		Set("checksum = EXCLUDED.checksum").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("storage: upsert %s: %w", path, err)
	}
	return nil
}

// Checksum returns the hex SHA-256 digest recorded with the stored document.
func (s *BunStore) Checksum(ctx context.Context, path string) (string, error) {
	if s.db == nil {
		return "", errBunDatabaseRequired
	}
	var model documentModel
	if err := s.db.NewSelect().Model(&model).Column("checksum").Where("path = ?", path).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return "", fmt.Errorf("storage: select checksum %s: %w", path, err)
	}
	return model.Checksum, nil
}

type documentModel struct {
	bun.BaseModel `bun:"table:markdown_documents"`

	Path      string    `bun:"path,pk"`
	Body      string    `bun:"body,notnull"`
	Checksum  string    `bun:"checksum"`
	UpdatedAt time.Time `bun:"updated_at"`
}
