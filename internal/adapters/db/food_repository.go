// internal/adapters/db/food_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// foodRepository implements ports.FoodRepository
type foodRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *Database, logger *slog.Logger) ports.FoodRepository {
	return &foodRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "food")),
	}
}

var foodColumns = []string{
	"id", "name", "brand", "quantity",
	"categories", "ingredients", "image_url", "source_url",
	"expiry_date", "created_at", "updated_at",
}

// Insert creates a new food item and returns the store-assigned id.
// Optional fields are persisted as NULL when absent.
func (r *foodRepository) Insert(ctx context.Context, item *domain.FoodItem) (uuid.UUID, error) {
	query := `
		INSERT INTO food_items (
			name, brand, quantity,
			categories, ingredients, image_url, source_url, expiry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Brand, item.Quantity,
		textOrNull(item.Categories), textOrNull(item.Ingredients),
		textOrNull(item.ImageURL), textOrNull(item.SourceURL),
		textOrNull(item.ExpiryDate),
	).Scan(&id)

	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert food item: %w", err)
	}

	r.logger.DebugContext(ctx, "food item inserted",
		slog.String("id", id.String()),
		slog.String("name", item.Name))

	return id, nil
}

// FindByID retrieves a food item by id, or (nil, nil) when no row matches.
func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FoodItem, error) {
	query := `
		SELECT id, name, brand, quantity,
			categories, ingredients, image_url, source_url,
			expiry_date, created_at, updated_at
		FROM food_items
		WHERE id = $1`

	item, err := scanFoodItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find food item: %w", err)
	}

	return item, nil
}

// FindAll performs the full store scan in the documented scan order
// (created_at, then id as a tiebreaker), which makes the aggregation
// engine's last-record-wins representative rule deterministic.
func (r *foodRepository) FindAll(ctx context.Context) ([]domain.FoodItem, error) {
	sqlQuery, args, err := squirrel.Select(foodColumns...).
		From("food_items").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query food items: %w", err)
	}
	defer rows.Close()

	var items []domain.FoodItem
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// UpdateExpiry sets the expiry date and reports how many rows changed.
// The predicate skips rows that already carry the new value, so zero
// rows can mean "missing" or "unchanged"; the service layer tells them
// apart.
func (r *foodRepository) UpdateExpiry(ctx context.Context, id uuid.UUID, expiryDate string) (int64, error) {
	query := `
		UPDATE food_items
		SET expiry_date = $2, updated_at = now()
		WHERE id = $1 AND expiry_date IS DISTINCT FROM $2`

	tag, err := r.db.Exec(ctx, query, id, expiryDate)
	if err != nil {
		return 0, fmt.Errorf("failed to update expiry date: %w", err)
	}

	return tag.RowsAffected(), nil
}

// UpdateQuantity overwrites the stored quantity descriptor.
func (r *foodRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity string) (int64, error) {
	query := `
		UPDATE food_items
		SET quantity = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, quantity)
	if err != nil {
		return 0, fmt.Errorf("failed to update quantity: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a single food item.
func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM food_items WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.logger.InfoContext(ctx, "food item deleted",
		slog.String("id", id.String()))

	return nil
}

// DeleteAll removes every food item and reports how many were removed.
func (r *foodRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_items`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete food items: %w", err)
	}

	r.logger.InfoContext(ctx, "all food items deleted",
		slog.Int64("rows", tag.RowsAffected()))

	return tag.RowsAffected(), nil
}

// Count returns the total number of food items
func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count food items: %w", err)
	}

	return count, nil
}

// Exists checks if a food item exists
func (r *foodRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM food_items WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}

	return exists, nil
}

func scanFoodItem(row pgx.Row) (*domain.FoodItem, error) {
	item := &domain.FoodItem{}
	var categories, ingredients, imageURL, sourceURL, expiryDate sql.NullString

	err := row.Scan(
		&item.ID, &item.Name, &item.Brand, &item.Quantity,
		&categories, &ingredients, &imageURL, &sourceURL,
		&expiryDate, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Categories = categories.String
	item.Ingredients = ingredients.String
	item.ImageURL = imageURL.String
	item.SourceURL = sourceURL.String
	item.ExpiryDate = expiryDate.String

	return item, nil
}

// textOrNull maps an empty string to NULL so absent optional fields are
// omitted in the persisted record, not defaulted.
func textOrNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
