// internal/core/ports/catalog.go
package ports

import (
	"context"

	"github.com/pantryhq/pantry-be/internal/core/domain"
)

// CatalogClient is the outbound port to the external product catalog.
// Implemented by the Open Food Facts adapter.
type CatalogClient interface {
	Search(ctx context.Context, term string) ([]domain.CandidateProduct, error)
}

// CatalogService is the application-facing search port consumed by the
// HTTP layer. It adds read-through caching on top of the client.
type CatalogService interface {
	Search(ctx context.Context, term string) ([]domain.CandidateProduct, error)
}
