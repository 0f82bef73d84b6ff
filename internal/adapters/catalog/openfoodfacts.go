// internal/adapters/catalog/openfoodfacts.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/core/ports"
)

// Placeholder is substituted for every product field the upstream
// catalog omits, so candidates always arrive fully populated.
const Placeholder = "Not available"

// Config holds catalog client configuration
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

// DefaultConfig returns default catalog client configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  "https://world.openfoodfacts.org",
		Timeout:  10 * time.Second,
		PageSize: 24,
	}
}

// Client queries the Open Food Facts search endpoint and normalizes its
// heterogeneous product objects into the fixed candidate shape.
type Client struct {
	baseURL  string
	pageSize int
	http     *http.Client
	logger   *slog.Logger
}

var _ ports.CatalogClient = (*Client)(nil)

// NewClient creates a new catalog client
func NewClient(config *Config, logger *slog.Logger) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	return &Client{
		baseURL:  config.BaseURL,
		pageSize: config.PageSize,
		http:     &http.Client{Timeout: config.Timeout},
		logger:   logger.With(slog.String("client", "openfoodfacts")),
	}
}

// searchResponse mirrors the subset of the upstream payload we read.
type searchResponse struct {
	Products []searchProduct `json:"products"`
}

type searchProduct struct {
	ProductName     string `json:"product_name"`
	Brands          string `json:"brands"`
	Quantity        string `json:"quantity"`
	Categories      string `json:"categories"`
	ImageURL        string `json:"image_url"`
	URL             string `json:"url"`
	IngredientsText string `json:"ingredients_text"`
}

// Search queries the catalog by free-text term and maps each product
// field-by-field to the candidate shape.
func (c *Client) Search(ctx context.Context, term string) ([]domain.CandidateProduct, error) {
	endpoint := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		c.baseURL, url.QueryEscape(term), c.pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			Err: fmt.Errorf("unexpected status %d from catalog", resp.StatusCode),
		}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.UpstreamError{
			Err: fmt.Errorf("failed to decode catalog response: %w", err),
		}
	}

	products := make([]domain.CandidateProduct, 0, len(body.Products))
	for _, p := range body.Products {
		products = append(products, domain.CandidateProduct{
			Name:        orPlaceholder(p.ProductName),
			Brands:      orPlaceholder(p.Brands),
			Quantity:    orPlaceholder(p.Quantity),
			Categories:  orPlaceholder(p.Categories),
			ImageURL:    orPlaceholder(p.ImageURL),
			SourceURL:   orPlaceholder(p.URL),
			Ingredients: orPlaceholder(p.IngredientsText),
		})
	}

	c.logger.DebugContext(ctx, "catalog search completed",
		slog.String("term", term),
		slog.Int("results", len(products)),
		slog.Duration("duration", time.Since(start)))

	return products, nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
