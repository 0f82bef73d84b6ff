// internal/core/domain/food.go
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FoodItem represents a single pantry record. Optional fields are empty
// strings in memory and persisted as NULL by the repository.
type FoodItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brands"`
	Quantity    string    `json:"quantity"`
	Categories  string    `json:"categories,omitempty"`
	Ingredients string    `json:"ingredients,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SourceURL   string    `json:"url,omitempty"`
	ExpiryDate  string    `json:"expiryDate,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CandidateProduct is a normalized result from the external catalog search.
// It is never persisted; a client picks one and submits it as an add request.
type CandidateProduct struct {
	Name        string `json:"name"`
	Brands      string `json:"brands"`
	Quantity    string `json:"quantity"`
	Categories  string `json:"categories"`
	ImageURL    string `json:"imageUrl"`
	SourceURL   string `json:"url"`
	Ingredients string `json:"ingredients"`
}

// InventoryEntry is one aggregated, counted row of the inventory view.
// Field values come from the last underlying record seen in scan order.
type InventoryEntry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brands"`
	Quantity    string    `json:"quantity"`
	Categories  string    `json:"categories,omitempty"`
	Ingredients string    `json:"ingredients,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	SourceURL   string    `json:"url,omitempty"`
	ExpiryDate  string    `json:"expiryDate,omitempty"`
	Count       int       `json:"count"`
}

// GroupKey returns the aggregation key for this record: the exact
// concatenation of name and brand. Case-sensitive on purpose; records
// differing only in letter case form separate groups.
func (i *FoodItem) GroupKey() string {
	return i.Name + i.Brand
}

// Normalize trims the required fields in place. Multi-brand input stays a
// single verbatim string; it is never split.
func (i *FoodItem) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Brand = strings.TrimSpace(i.Brand)
	i.Quantity = strings.TrimSpace(i.Quantity)
	i.ExpiryDate = strings.TrimSpace(i.ExpiryDate)
}

// Validate reports which required fields are empty after trimming.
// It must be called after Normalize.
func (i *FoodItem) Validate() error {
	missing := MissingFields{
		Name:     i.Name == "",
		Brands:   i.Brand == "",
		Quantity: i.Quantity == "",
	}
	if missing.Any() {
		return &ValidationError{
			Message:       "missing required fields",
			MissingFields: &missing,
		}
	}
	return nil
}
