package mock

import (
	"context"

	"github.com/fwojciec/htmldoc"
)

var _ htmldoc.CacheService = (*CacheService)(nil)

// CacheService is a mock implementation of htmldoc.CacheService.
type CacheService struct {
	FindEntryByPathFn   func(ctx context.Context, path string) (*htmldoc.CacheEntry, error)
	SaveEntryFn         func(ctx context.Context, entry *htmldoc.CacheEntry) error
	DeleteEntryByPathFn func(ctx context.Context, path string) error
}

func (s *CacheService) FindEntryByPath(ctx context.Context, path string) (*htmldoc.CacheEntry, error) {
	return s.FindEntryByPathFn(ctx, path)
}

func (s *CacheService) SaveEntry(ctx context.Context, entry *htmldoc.CacheEntry) error {
	return s.SaveEntryFn(ctx, entry)
}

func (s *CacheService) DeleteEntryByPath(ctx context.Context, path string) error {
	return s.DeleteEntryByPathFn(ctx, path)
}
