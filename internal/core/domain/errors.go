// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors returned by the lifecycle controller and repository.
var (
	// ErrNotFound means no record matched the supplied id.
	ErrNotFound = errors.New("food item not found")

	// ErrUnchanged means the record exists but the update modified nothing.
	// Kept distinct from ErrNotFound internally; the HTTP layer presents
	// both with the same unified not-found response text.
	ErrUnchanged = errors.New("food item unchanged")

	// ErrEmptyStore means delete-all found nothing to remove.
	ErrEmptyStore = errors.New("no food items to delete")

	// ErrNoResults means the catalog search matched no products.
	ErrNoResults = errors.New("no products found")
)

// MissingFields records which of the required add-request fields were empty
// after trimming. Field names mirror the wire format.
type MissingFields struct {
	Name     bool `json:"name"`
	Brands   bool `json:"brands"`
	Quantity bool `json:"quantity"`
}

// Any reports whether at least one required field is missing.
func (m MissingFields) Any() bool {
	return m.Name || m.Brands || m.Quantity
}

// ValidationError is returned when request input fails validation before any
// store call is made.
type ValidationError struct {
	Message       string
	MissingFields *MissingFields
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure of the external catalog.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "catalog upstream error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
