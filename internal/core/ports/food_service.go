// internal/core/ports/food_service.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantryhq/pantry-be/internal/core/domain"
)

// FoodService defines the application service port for the pantry
// inventory. This interface is implemented by the application service
// and consumed by the HTTP layer.
type FoodService interface {
	// AddItem validates and persists a new record, then returns the
	// freshly re-read persisted record (not the input echoed back).
	AddItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.FoodItem, error)

	// ListInventory returns the deduplicated, counted inventory view.
	ListInventory(ctx context.Context) ([]domain.InventoryEntry, error)

	UpdateExpiry(ctx context.Context, id uuid.UUID, expiryDate string) error

	// UpdateQuantity overwrites the stored quantity for quantity > 0 and
	// deletes the record for quantity == 0. The returned bool reports
	// whether the record was deleted.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (bool, error)

	DeleteItem(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every record and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
