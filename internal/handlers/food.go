// internal/handlers/food.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// FoodHandler handles the pantry inventory HTTP surface
type FoodHandler struct {
	service ports.FoodService
	catalog ports.CatalogService
	logger  *slog.Logger
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(service ports.FoodService, catalog ports.CatalogService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		catalog: catalog,
		logger:  logger.With(slog.String("handler", "food")),
	}
}

// Search handles GET /api/food/search?search=TERM
func (h *FoodHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := r.URL.Query().Get("search")
	if term == "" {
		h.respondError(w, http.StatusBadRequest, "Search term is required")
		return
	}

	products, err := h.catalog.Search(ctx, term)
	if err != nil {
		if errors.Is(err, domain.ErrNoResults) {
			h.respondError(w, http.StatusNotFound, "No products found")
			return
		}

		h.logger.ErrorContext(ctx, "catalog search failed",
			slog.String("term", term),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to search product catalog")
		return
	}

	h.respondJSON(w, http.StatusOK, products)
}

// AddFood handles POST /api/food/add
func (h *FoodHandler) AddFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.AddItem(ctx, req.ToDomain())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":         verr.Message,
				"missingFields": verr.MissingFields,
			})
			return
		}

		h.logger.ErrorContext(ctx, "failed to add food item",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to add food item")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Food item added successfully",
		"item":    item,
	})
}

// ListInventory handles GET /api/food/inventory
func (h *FoodHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entries, err := h.service.ListInventory(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list inventory",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list inventory")
		return
	}

	h.respondJSON(w, http.StatusOK, entries)
}

// GetFood handles GET /api/food/{id}
func (h *FoodHandler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The id format check runs before any store call; a malformed id is
	// a 400, never a 404.
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid food item ID format")
		return
	}

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Food item not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to get food item",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve food item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// UpdateFood handles PATCH/PUT /api/food/update/{id}. The body carries
// either a new expiryDate or a numeric quantity; quantity wins when both
// are present, and a body with neither is rejected.
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid food item ID format")
		return
	}

	var req UpdateFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch {
	case req.Quantity != nil:
		h.updateQuantity(w, r, id, *req.Quantity)
	case req.ExpiryDate != nil:
		h.updateExpiry(w, r, id, *req.ExpiryDate)
	default:
		h.respondError(w, http.StatusBadRequest, "Either expiryDate or quantity is required")
	}
}

func (h *FoodHandler) updateExpiry(w http.ResponseWriter, r *http.Request, id uuid.UUID, expiryDate string) {
	ctx := r.Context()

	err := h.service.UpdateExpiry(ctx, id, expiryDate)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.respondError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnchanged):
			// Unified response text; the two causes stay distinct
			// internally.
			h.respondError(w, http.StatusNotFound, "Food item not found or expiry date unchanged")
		default:
			h.logger.ErrorContext(ctx, "failed to update expiry date",
				slog.String("id", id.String()),
				slog.String("error", err.Error()))
			h.respondError(w, http.StatusInternalServerError, "Failed to update food item")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Expiry date updated successfully",
	})
}

func (h *FoodHandler) updateQuantity(w http.ResponseWriter, r *http.Request, id uuid.UUID, quantity int) {
	ctx := r.Context()

	deleted, err := h.service.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			h.respondError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, domain.ErrNotFound):
			h.respondError(w, http.StatusNotFound, "Food item not found")
		default:
			h.logger.ErrorContext(ctx, "failed to update quantity",
				slog.String("id", id.String()),
				slog.String("error", err.Error()))
			h.respondError(w, http.StatusInternalServerError, "Failed to update food item")
		}
		return
	}

	if deleted {
		h.respondJSON(w, http.StatusOK, map[string]string{
			"message": "Food item deleted (quantity reached zero)",
		})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Quantity updated successfully",
	})
}

// DeleteFood handles DELETE /api/food/delete/{id}
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid food item ID format")
		return
	}

	if err := h.service.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Food item not found")
			return
		}

		h.logger.ErrorContext(ctx, "failed to delete food item",
			slog.String("id", id.String()),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete food item")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Food item deleted successfully",
		"id":      id.String(),
	})
}

// DeleteAll handles DELETE /api/food/delete/all
func (h *FoodHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	removed, err := h.service.DeleteAll(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyStore) {
			h.respondError(w, http.StatusNotFound, "No food items to delete")
			return
		}

		h.logger.ErrorContext(ctx, "failed to delete all food items",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete food items")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "All food items deleted successfully",
		"deleted": removed,
	})
}

// Helper methods

func (h *FoodHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *FoodHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// Request DTOs

// AddFoodRequest represents the request body for adding a food item.
// The wire field for brand is "brands" (catalog heritage); a multi-brand
// value stays one verbatim string.
type AddFoodRequest struct {
	Name        string `json:"name"`
	Brands      string `json:"brands"`
	Quantity    string `json:"quantity"`
	Categories  string `json:"categories,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	SourceURL   string `json:"url,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *AddFoodRequest) ToDomain() *domain.FoodItem {
	return &domain.FoodItem{
		Name:        r.Name,
		Brand:       r.Brands,
		Quantity:    r.Quantity,
		Categories:  r.Categories,
		Ingredients: r.Ingredients,
		ImageURL:    r.ImageURL,
		SourceURL:   r.SourceURL,
		ExpiryDate:  r.ExpiryDate,
	}
}

// UpdateFoodRequest represents the request body for updating a food item.
// Pointers distinguish "absent" from zero values; quantity 0 is a valid
// request that deletes the record.
type UpdateFoodRequest struct {
	ExpiryDate *string `json:"expiryDate,omitempty"`
	Quantity   *int    `json:"quantity,omitempty"`
}
