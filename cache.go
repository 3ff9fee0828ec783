package htmldoc

import (
	"context"
	"time"
)

// CacheEntry records one converted document so repeated conversions of
// unchanged inputs can be skipped.
type CacheEntry struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Fingerprint string    `json:"fingerprint"`
	Markdown    string    `json:"markdown"`
	ConvertedAt time.Time `json:"convertedAt"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if e.Path == "" {
		return Errorf(EINVALID, "cache entry path required")
	}
	if e.Fingerprint == "" {
		return Errorf(EINVALID, "cache entry fingerprint required")
	}
	return nil
}

// CacheService stores conversion results keyed by input path.
type CacheService interface {
	// FindEntryByPath retrieves the entry for a path.
	// Returns ENOTFOUND if no entry exists.
	FindEntryByPath(ctx context.Context, path string) (*CacheEntry, error)

	// SaveEntry inserts or replaces the entry for its path.
	SaveEntry(ctx context.Context, entry *CacheEntry) error

	// DeleteEntryByPath removes the entry for a path. Deleting a missing
	// entry is not an error.
	DeleteEntryByPath(ctx context.Context, path string) error
}
