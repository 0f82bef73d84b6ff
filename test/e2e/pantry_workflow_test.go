//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pantryhq/pantry-be/internal/adapters/catalog"
	"github.com/pantryhq/pantry-be/internal/adapters/db"
	redis_a "github.com/pantryhq/pantry-be/internal/adapters/redis_adapter"
	"github.com/pantryhq/pantry-be/internal/core/services"
	"github.com/pantryhq/pantry-be/internal/handlers"
	"github.com/pantryhq/pantry-be/test/helpers"
)

// PantryE2ESuite runs the full HTTP workflow against a real Postgres
// container, a miniredis cache and a stubbed catalog upstream.
type PantryE2ESuite struct {
	server       *httptest.Server
	upstream     *httptest.Server
	client       *http.Client
	baseURL      string
	testDB       *helpers.TestDB
	testRedis    *helpers.TestRedis
	upstreamHits atomic.Int64

	suite.Suite
}

func (s *PantryE2ESuite) SetupSuite() {
	s.testDB = helpers.SetupTestDB(s.T())
	s.testRedis = helpers.SetupTestRedis(s.T())

	logger := helpers.TestLogger()

	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.upstreamHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{
			"product_name": "Nutella",
			"brands": "Ferrero",
			"quantity": "400 g",
			"categories": "Spreads",
			"image_url": "https://img.example.org/nutella.jpg",
			"url": "https://world.openfoodfacts.org/product/3017620422003",
			"ingredients_text": "Sugar, palm oil, hazelnuts"
		}]}`))
	}))

	cache := redis_a.NewCache(s.testRedis.Client, time.Hour, logger)
	catalogClient := catalog.NewClient(&catalog.Config{
		BaseURL:  s.upstream.URL,
		Timeout:  5 * time.Second,
		PageSize: 24,
	}, logger)
	catalogService := services.NewCatalogService(catalogClient, cache, 15*time.Minute, logger)

	repo := db.NewFoodRepository(s.testDB.Database, logger)
	foodService := services.NewFoodService(repo, logger)

	handler := handlers.NewFoodHandler(foodService, catalogService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/food/search", handler.Search)
	mux.HandleFunc("POST /api/food/add", handler.AddFood)
	mux.HandleFunc("GET /api/food/inventory", handler.ListInventory)
	mux.HandleFunc("GET /api/food/{id}", handler.GetFood)
	mux.HandleFunc("PATCH /api/food/update/{id}", handler.UpdateFood)
	mux.HandleFunc("PUT /api/food/update/{id}", handler.UpdateFood)
	mux.HandleFunc("DELETE /api/food/delete/all", handler.DeleteAll)
	mux.HandleFunc("DELETE /api/food/delete/{id}", handler.DeleteFood)

	s.server = httptest.NewServer(mux)
	s.client = &http.Client{Timeout: 10 * time.Second}
	s.baseURL = s.server.URL + "/api/food"
}

func (s *PantryE2ESuite) TearDownSuite() {
	s.server.Close()
	s.upstream.Close()
}

func (s *PantryE2ESuite) SetupTest() {
	helpers.TruncateFoodItems(s.T(), s.testDB.PgxPool)
}

func (s *PantryE2ESuite) TestCompleteFoodWorkflow() {
	// 1. Add a food item.
	addReq := map[string]interface{}{
		"name":       "Nutella",
		"brands":     "Ferrero",
		"quantity":   "400 g",
		"expiryDate": "2026-12-01",
	}

	resp := s.makeRequest("POST", "/add", addReq)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	s.decodeResponse(resp, &created)
	s.Equal("Food item added successfully", created["message"])

	item := created["item"].(map[string]interface{})
	itemID := item["id"].(string)
	s.NotEmpty(itemID)

	// 2. Retrieve it by ID.
	resp = s.makeRequest("GET", "/"+itemID, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var retrieved map[string]interface{}
	s.decodeResponse(resp, &retrieved)
	s.Equal("Nutella", retrieved["name"])

	// 3. Add the same product again; the inventory view must collapse
	//    both records into one counted entry.
	resp = s.makeRequest("POST", "/add", addReq)
	s.Equal(http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.makeRequest("GET", "/inventory", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var entries []map[string]interface{}
	s.decodeResponse(resp, &entries)
	s.Require().Len(entries, 1)
	s.Equal(float64(2), entries[0]["count"])

	// 4. Update the expiry date.
	resp = s.makeRequest("PATCH", "/update/"+itemID, map[string]interface{}{
		"expiryDate": "2027-01-15",
	})
	s.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The same date again is reported as unchanged.
	resp = s.makeRequest("PATCH", "/update/"+itemID, map[string]interface{}{
		"expiryDate": "2027-01-15",
	})
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// 5. Setting quantity to zero removes the record.
	resp = s.makeRequest("PATCH", "/update/"+itemID, map[string]interface{}{
		"quantity": 0,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	s.decodeResponse(resp, &updated)
	s.Equal("Food item deleted (quantity reached zero)", updated["message"])

	resp = s.makeRequest("GET", "/"+itemID, nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// 6. Wipe the store; a second wipe finds nothing.
	resp = s.makeRequest("DELETE", "/delete/all", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var wiped map[string]interface{}
	s.decodeResponse(resp, &wiped)
	s.Equal(float64(1), wiped["deleted"])

	resp = s.makeRequest("DELETE", "/delete/all", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func (s *PantryE2ESuite) TestCatalogSearchIsCached() {
	before := s.upstreamHits.Load()

	resp := s.makeRequest("GET", "/search?search=nutella+e2e", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var first []map[string]interface{}
	s.decodeResponse(resp, &first)
	s.Require().Len(first, 1)
	s.Equal("Nutella", first[0]["name"])
	s.Equal("Ferrero", first[0]["brands"])

	// A repeated search is served from the cache.
	resp = s.makeRequest("GET", "/search?search=nutella+e2e", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var second []map[string]interface{}
	s.decodeResponse(resp, &second)
	s.Equal(first, second)

	s.Equal(before+1, s.upstreamHits.Load())
}

func (s *PantryE2ESuite) TestValidationErrors() {
	// Missing term on search.
	resp := s.makeRequest("GET", "/search", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Missing fields on add.
	resp = s.makeRequest("POST", "/add", map[string]interface{}{"name": "Only Name"})
	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	s.decodeResponse(resp, &body)
	missing := body["missingFields"].(map[string]interface{})
	s.Equal(false, missing["name"])
	s.Equal(true, missing["brands"])
	s.Equal(true, missing["quantity"])

	// Malformed ID never reaches the store.
	resp = s.makeRequest("GET", "/not-a-uuid", nil)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func (s *PantryE2ESuite) TestConcurrentAdds() {
	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(idx int) {
			defer func() { done <- true }()

			item := map[string]interface{}{
				"name":     fmt.Sprintf("Concurrent Item %d", idx),
				"brands":   "Load Test",
				"quantity": "1",
			}

			resp := s.makeRequest("POST", "/add", item)
			s.Equal(http.StatusCreated, resp.StatusCode)
			resp.Body.Close()
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	resp := s.makeRequest("GET", "/inventory", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var entries []map[string]interface{}
	s.decodeResponse(resp, &entries)
	s.Len(entries, 10)
}

// Helper methods

func (s *PantryE2ESuite) makeRequest(method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		s.NoError(err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reqBody)
	s.NoError(err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	s.NoError(err)

	return resp
}

func (s *PantryE2ESuite) decodeResponse(resp *http.Response, v interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(v)
	s.NoError(err)
}

func TestPantryE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(PantryE2ESuite))
}
