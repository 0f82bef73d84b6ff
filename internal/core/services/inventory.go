// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// FoodService handles the pantry record lifecycle: validated creation,
// lookup, the aggregated inventory view, expiry and quantity updates,
// and single or bulk deletion.
type FoodService struct {
	repo   ports.FoodRepository
	logger *slog.Logger
}

// Statically assert that *FoodService implements the FoodService interface.
var _ ports.FoodService = (*FoodService)(nil)

// NewFoodService creates a new food service
func NewFoodService(repo ports.FoodRepository, logger *slog.Logger) *FoodService {
	return &FoodService{
		repo:   repo,
		logger: logger.With(slog.String("service", "food")),
	}
}

// AddItem validates and persists a new pantry record. Name, brand and
// quantity are trimmed first; creation fails with a ValidationError
// listing the fields that were empty after trimming. On success the
// record is re-read by its store-assigned id, so the caller sees the
// persisted row rather than the input echoed back.
func (s *FoodService) AddItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error) {
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to save food item: %w", err)
	}

	saved, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read saved food item: %w", err)
	}
	if saved == nil {
		return nil, fmt.Errorf("saved food item vanished: %s", id)
	}

	s.logger.InfoContext(ctx, "saved food item",
		slog.String("id", id.String()),
		slog.String("name", saved.Name),
		slog.String("brand", saved.Brand))

	return saved, nil
}

// GetByID retrieves a single record by its id.
func (s *FoodService) GetByID(ctx context.Context, id uuid.UUID) (*domain.FoodItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	return item, nil
}

// ListInventory scans the full store and projects it into the
// deduplicated, counted view. Computed fresh on every call; nothing is
// cached or persisted.
func (s *FoodService) ListInventory(ctx context.Context) ([]domain.InventoryEntry, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan food items: %w", err)
	}
	return AggregateInventory(items), nil
}

// UpdateExpiry sets a record's expiry date in place. A missing record and
// an update that changed nothing are distinct errors (ErrNotFound vs
// ErrUnchanged), even though the HTTP layer presents them identically.
func (s *FoodService) UpdateExpiry(ctx context.Context, id uuid.UUID, expiryDate string) error {
	if expiryDate == "" {
		return &domain.ValidationError{Message: "expiryDate is required"}
	}

	rows, err := s.repo.UpdateExpiry(ctx, id, expiryDate)
	if err != nil {
		return fmt.Errorf("failed to update expiry date: %w", err)
	}

	if rows == 0 {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check food item existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return domain.ErrUnchanged
	}

	s.logger.InfoContext(ctx, "updated expiry date",
		slog.String("id", id.String()),
		slog.String("expiry_date", expiryDate))

	return nil
}

// UpdateQuantity applies a numeric quantity mutation. Negative values
// are rejected, zero deletes the record outright, and positive values
// overwrite the stored quantity with their decimal rendering. Returns
// true when the zero branch removed the record.
func (s *FoodService) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	if quantity < 0 {
		return false, &domain.ValidationError{Message: "quantity cannot be negative"}
	}

	if quantity == 0 {
		if err := s.DeleteItem(ctx, id); err != nil {
			return false, err
		}
		s.logger.InfoContext(ctx, "food item deleted via zero quantity",
			slog.String("id", id.String()))
		return true, nil
	}

	rows, err := s.repo.UpdateQuantity(ctx, id, strconv.Itoa(quantity))
	if err != nil {
		return false, fmt.Errorf("failed to update quantity: %w", err)
	}
	if rows == 0 {
		return false, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	s.logger.InfoContext(ctx, "updated quantity",
		slog.String("id", id.String()),
		slog.Int("quantity", quantity))

	return false, nil
}

// DeleteItem removes a single record.
func (s *FoodService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	s.logger.InfoContext(ctx, "deleted food item", slog.String("id", id.String()))
	return nil
}

// DeleteAll removes every record unconditionally. An already-empty store
// is reported as ErrEmptyStore rather than a silent no-op, so callers
// can tell "nothing to do" apart from a successful purge.
func (s *FoodService) DeleteAll(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete food items: %w", err)
	}
	if removed == 0 {
		return 0, domain.ErrEmptyStore
	}

	s.logger.InfoContext(ctx, "deleted all food items",
		slog.Int64("count", removed))

	return removed, nil
}
