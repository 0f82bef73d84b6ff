// internal/core/services/catalog.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// CatalogService performs catalog searches with a read-through Redis
// cache keyed by the search term. Cache failures degrade to a direct
// upstream call; a failed cache write is logged, never surfaced.
type CatalogService struct {
	client ports.CatalogClient
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service. cache may be nil, in
// which case every search goes straight to the upstream catalog.
func NewCatalogService(client ports.CatalogClient, cache ports.CacheRepository, ttl time.Duration, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// Search queries the catalog for the given free-text term. Returns
// domain.ErrNoResults when the upstream matched nothing.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domain.CandidateProduct, error) {
	key := "search:" + term

	if s.cache != nil {
		var cached []domain.CandidateProduct
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.logger.DebugContext(ctx, "catalog search served from cache",
				slog.String("term", term),
				slog.Int("results", len(cached)))
			return cached, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logger.WarnContext(ctx, "catalog cache read failed, querying upstream",
				slog.String("term", term),
				slog.String("error", err.Error()))
		}
	}

	products, err := s.client.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("catalog search failed: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrNoResults
	}

	if s.cache != nil {
		if err := s.cache.SetWithTTL(ctx, key, products, s.ttl); err != nil {
			s.logger.WarnContext(ctx, "failed to cache catalog results",
				slog.String("term", term),
				slog.String("error", err.Error()))
		}
	}

	return products, nil
}
