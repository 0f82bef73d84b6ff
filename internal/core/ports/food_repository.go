// internal/core/ports/food_repository.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pantryhq/pantry-be/internal/core/domain"
)

// FoodRepository defines the persistence port for pantry records.
// This interface is implemented by the database adapter.
//
// FindByID returns (nil, nil) when no record matches; callers translate
// that into domain.ErrNotFound. The update methods report how many rows
// were modified so the service layer can tell a missing record apart
// from an update that changed nothing.
type FoodRepository interface {
	Insert(ctx context.Context, item *domain.FoodItem) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FoodItem, error)
	FindAll(ctx context.Context) ([]domain.FoodItem, error)
	UpdateExpiry(ctx context.Context, id uuid.UUID, expiryDate string) (int64, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity string) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
}
