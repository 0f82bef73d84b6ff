// internal/handlers/food_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/handlers"
	"github.com/pantryhq/pantry-be/test/helpers"
	"github.com/pantryhq/pantry-be/test/mocks"
)

// newTestRouter wires the handler into the same mux layout the server
// uses, so path values and route precedence behave as in production.
func newTestRouter(h *handlers.FoodHandler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/food/search", h.Search)
	mux.HandleFunc("POST /api/food/add", h.AddFood)
	mux.HandleFunc("GET /api/food/inventory", h.ListInventory)
	mux.HandleFunc("GET /api/food/{id}", h.GetFood)
	mux.HandleFunc("PATCH /api/food/update/{id}", h.UpdateFood)
	mux.HandleFunc("PUT /api/food/update/{id}", h.UpdateFood)
	mux.HandleFunc("DELETE /api/food/delete/all", h.DeleteAll)
	mux.HandleFunc("DELETE /api/food/delete/{id}", h.DeleteFood)
	return mux
}

func setupHandler(t *testing.T) (*mocks.MockFoodService, *mocks.MockCatalogService, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockFoodService(ctrl)
	catalog := mocks.NewMockCatalogService(ctrl)
	handler := handlers.NewFoodHandler(service, catalog, helpers.TestLogger())

	return service, catalog, newTestRouter(handler)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestFoodHandler_Search(t *testing.T) {
	t.Run("missing_term_is_bad_request", func(t *testing.T) {
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/search", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "Search term")
	})

	t.Run("no_results_is_not_found", func(t *testing.T) {
		_, catalog, mux := setupHandler(t)
		catalog.EXPECT().
			Search(gomock.Any(), "zzzz").
			Return(nil, domain.ErrNoResults)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/search?search=zzzz", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upstream_failure_is_server_error", func(t *testing.T) {
		_, catalog, mux := setupHandler(t)
		catalog.EXPECT().
			Search(gomock.Any(), "nutella").
			Return(nil, &domain.UpstreamError{Err: context.DeadlineExceeded})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/search?search=nutella", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("results_are_returned_as_json_array", func(t *testing.T) {
		_, catalog, mux := setupHandler(t)
		catalog.EXPECT().
			Search(gomock.Any(), "nutella").
			Return([]domain.CandidateProduct{*helpers.CreateTestCandidateProduct()}, nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/search?search=nutella", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var products []domain.CandidateProduct
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(t, products, 1)
		assert.Equal(t, "Nutella", products[0].Name)
	})
}

func TestFoodHandler_AddFood(t *testing.T) {
	t.Run("created_with_persisted_item", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		saved := helpers.CreateTestFoodItem()
		service.EXPECT().
			AddItem(gomock.Any(), gomock.Any()).
			Return(saved, nil)

		payload := `{"name":"Nutella","brands":"Ferrero","quantity":"400 g"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/food/add", bytes.NewBufferString(payload)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Food item added successfully", body["message"])
		assert.NotNil(t, body["item"])
	})

	t.Run("validation_error_lists_missing_fields", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		service.EXPECT().
			AddItem(gomock.Any(), gomock.Any()).
			Return(nil, &domain.ValidationError{
				Message: "missing required fields",
				MissingFields: &domain.MissingFields{
					Name: true,
				},
			})

		payload := `{"name":"   ","brands":"Ferrero","quantity":"400 g"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/food/add", bytes.NewBufferString(payload)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		missing := body["missingFields"].(map[string]interface{})
		assert.Equal(t, true, missing["name"])
		assert.Equal(t, false, missing["brands"])
		assert.Equal(t, false, missing["quantity"])
	})

	t.Run("malformed_json_is_bad_request", func(t *testing.T) {
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/food/add", bytes.NewBufferString("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFoodHandler_GetFood(t *testing.T) {
	t.Run("malformed_id_is_bad_request_never_not_found", func(t *testing.T) {
		// No service expectation: a malformed id must not reach the store.
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing_item_is_not_found", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		id := uuid.New()
		service.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, domain.ErrNotFound)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found_item_is_returned", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		id := uuid.New()
		service.EXPECT().
			GetByID(gomock.Any(), id).
			Return(helpers.CreateTestFoodItem(func(i *domain.FoodItem) { i.ID = id }), nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/food/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var item domain.FoodItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.Equal(t, id, item.ID)
	})
}

func TestFoodHandler_UpdateFood(t *testing.T) {
	id := uuid.New()

	t.Run("expiry_update_succeeds", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			UpdateExpiry(gomock.Any(), id, "2027-01-01").
			Return(nil)

		payload := `{"expiryDate":"2027-01-01"}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/"+id.String(), bytes.NewBufferString(payload)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not_found_and_unchanged_share_response_text", func(t *testing.T) {
		for name, serviceErr := range map[string]error{
			"not_found": domain.ErrNotFound,
			"unchanged": domain.ErrUnchanged,
		} {
			t.Run(name, func(t *testing.T) {
				service, _, mux := setupHandler(t)
				service.EXPECT().
					UpdateExpiry(gomock.Any(), id, "2027-01-01").
					Return(serviceErr)

				payload := `{"expiryDate":"2027-01-01"}`
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/"+id.String(), bytes.NewBufferString(payload)))

				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, "Food item not found or expiry date unchanged", decodeBody(t, rec)["error"])
			})
		}
	})

	t.Run("quantity_zero_reports_deletion", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			UpdateQuantity(gomock.Any(), id, 0).
			Return(true, nil)

		payload := `{"quantity":0}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/"+id.String(), bytes.NewBufferString(payload)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["message"], "deleted")
	})

	t.Run("negative_quantity_is_bad_request", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			UpdateQuantity(gomock.Any(), id, -2).
			Return(false, &domain.ValidationError{Message: "quantity cannot be negative"})

		payload := `{"quantity":-2}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/"+id.String(), bytes.NewBufferString(payload)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body_without_either_field_is_bad_request", func(t *testing.T) {
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/"+id.String(), bytes.NewBufferString(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed_id_is_bad_request", func(t *testing.T) {
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/food/update/oops", bytes.NewBufferString(`{"quantity":1}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFoodHandler_DeleteFood(t *testing.T) {
	t.Run("successful_delete", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		id := uuid.New()
		service.EXPECT().
			DeleteItem(gomock.Any(), id).
			Return(nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/"+id.String(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, id.String(), decodeBody(t, rec)["id"])
	})

	t.Run("missing_item_is_not_found", func(t *testing.T) {
		service, _, mux := setupHandler(t)

		id := uuid.New()
		service.EXPECT().
			DeleteItem(gomock.Any(), id).
			Return(domain.ErrNotFound)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed_id_is_bad_request", func(t *testing.T) {
		_, _, mux := setupHandler(t)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFoodHandler_DeleteAll(t *testing.T) {
	t.Run("reports_deleted_count", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			DeleteAll(gomock.Any()).
			Return(int64(4), nil)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/all", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(4), decodeBody(t, rec)["deleted"])
	})

	t.Run("empty_store_is_not_found", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			DeleteAll(gomock.Any()).
			Return(int64(0), domain.ErrEmptyStore)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/all", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No food items to delete", decodeBody(t, rec)["error"])
	})

	t.Run("delete_all_route_wins_over_id_wildcard", func(t *testing.T) {
		service, _, mux := setupHandler(t)
		service.EXPECT().
			DeleteAll(gomock.Any()).
			Return(int64(1), nil)

		// "all" is not a uuid; reaching DeleteAll proves route precedence.
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/food/delete/all", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
