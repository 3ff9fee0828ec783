package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fwojciec/htmldoc"
)

// Compile-time interface verification.
var _ htmldoc.CacheService = (*CacheService)(nil)

// CacheService implements htmldoc.CacheService using SQLite.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// FindEntryByPath retrieves the entry for a path.
func (s *CacheService) FindEntryByPath(ctx context.Context, path string) (*htmldoc.CacheEntry, error) {
	var entry htmldoc.CacheEntry
	var convertedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, fingerprint, markdown, converted_at
		FROM conversions
		WHERE path = ?
	`, path).Scan(&entry.ID, &entry.Path, &entry.Fingerprint, &entry.Markdown, &convertedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, htmldoc.Errorf(htmldoc.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	entry.ConvertedAt, err = time.Parse(time.RFC3339, convertedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse converted_at: %w", err)
	}

	return &entry, nil
}

// SaveEntry inserts or replaces the entry for its path.
func (s *CacheService) SaveEntry(ctx context.Context, entry *htmldoc.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.ConvertedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, path, fingerprint, markdown, converted_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			markdown = excluded.markdown,
			converted_at = excluded.converted_at
	`, entry.ID, entry.Path, entry.Fingerprint, entry.Markdown,
		entry.ConvertedAt.Format(time.RFC3339))

	return err
}

// DeleteEntryByPath removes the entry for a path. Missing entries are not
// an error.
func (s *CacheService) DeleteEntryByPath(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM conversions WHERE path = ?`, path)
	return err
}
