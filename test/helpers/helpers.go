// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/pantryhq/pantry-be/internal/adapters/db"
	"github.com/pantryhq/pantry-be/internal/core/domain"
	"github.com/pantryhq/pantry-be/internal/pkg/config"
)

// TestDB represents a test database instance
type TestDB struct {
	PgxPool  *pgxpool.Pool
	Database *db.Database
	Resource *dockertest.Resource
	Pool     *dockertest.Pool
	Config   *db.Config
}

// TestRedis represents a test Redis instance
type TestRedis struct {
	Client *redis.Client
	Server *miniredis.Miniredis
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestDB creates a PostgreSQL container for integration tests
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	// Pull PostgreSQL image
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=test_pantry",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL container")

	// Clean up on test completion
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	// Get connection details
	dbConfig := &db.Config{
		Host:               "localhost",
		Port:               resource.GetPort("5432/tcp"),
		User:               "test",
		Password:           "test",
		Database:           "test_pantry",
		SSLMode:            "disable",
		MaxConnections:     5,
		MinConnections:     1,
		MaxConnLifetime:    time.Hour,
		MaxConnIdleTime:    time.Minute * 30,
		HealthCheckPeriod:  time.Minute,
		ConnectTimeout:     time.Second * 10,
		EnableQueryLogging: testing.Verbose(),
	}

	// Wait for database to be ready
	var database *db.Database
	err = pool.Retry(func() error {
		ctx := context.Background()
		var err error
		database, err = db.NewDatabase(ctx, dbConfig, TestLogger())
		if err != nil {
			return err
		}
		return database.Ping(ctx)
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	// Run the embedded migrations
	ctx := context.Background()
	migrationConfig := &db.MigrationConfig{
		DatabaseURL: fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbConfig.User, dbConfig.Password, dbConfig.Host, dbConfig.Port,
			dbConfig.Database, dbConfig.SSLMode),
		TableName:  "schema_migrations",
		SchemaName: "public",
	}

	err = db.RunMigrationsWithRetry(ctx, migrationConfig, TestLogger(), 3)
	require.NoError(t, err, "Could not run migrations")

	return &TestDB{
		PgxPool:  database.Pool(),
		Database: database,
		Resource: resource,
		Pool:     pool,
		Config:   dbConfig,
	}
}

// SetupTestRedis creates a mock Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Database: config.DatabaseConfig{
			Host:               "localhost",
			Port:               "5432",
			User:               "test",
			Password:           "test",
			Name:               "test_pantry",
			SSLMode:            "disable",
			MaxConnections:     10,
			MinConnections:     2,
			EnableQueryLogging: true,
		},
		Redis: config.RedisConfig{
			Host:     "localhost",
			Port:     "6379",
			DB:       0,
			TTL:      time.Hour,
			PoolSize: 10,
		},
		Catalog: config.CatalogConfig{
			BaseURL:  "https://world.openfoodfacts.org",
			Timeout:  10 * time.Second,
			PageSize: 24,
			CacheTTL: 15 * time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestFoodItem creates a test food item
func CreateTestFoodItem(overrides ...func(*domain.FoodItem)) *domain.FoodItem {
	item := &domain.FoodItem{
		ID:          uuid.New(),
		Name:        "Nutella",
		Brand:       "Ferrero",
		Quantity:    "400 g",
		Categories:  "Spreads, Hazelnut spreads",
		Ingredients: "Sugar, palm oil, hazelnuts, cocoa",
		ImageURL:    "https://images.example.org/nutella.jpg",
		SourceURL:   "https://world.openfoodfacts.org/product/3017620422003",
		ExpiryDate:  "2027-03-01",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	for _, override := range overrides {
		override(item)
	}

	return item
}

// CreateTestFoodItems creates count distinct test food items
func CreateTestFoodItems(count int) []domain.FoodItem {
	items := make([]domain.FoodItem, count)
	for i := 0; i < count; i++ {
		items[i] = *CreateTestFoodItem(func(item *domain.FoodItem) {
			item.Name = fmt.Sprintf("Test Food %d", i+1)
			item.Brand = fmt.Sprintf("Test Brand %d", i+1)
			item.Quantity = fmt.Sprintf("%d g", (i+1)*100)
		})
	}
	return items
}

// CreateTestCandidateProduct creates a test catalog candidate
func CreateTestCandidateProduct(overrides ...func(*domain.CandidateProduct)) *domain.CandidateProduct {
	product := &domain.CandidateProduct{
		Name:        "Nutella",
		Brands:      "Ferrero",
		Quantity:    "400 g",
		Categories:  "Spreads, Hazelnut spreads",
		ImageURL:    "https://images.example.org/nutella.jpg",
		SourceURL:   "https://world.openfoodfacts.org/product/3017620422003",
		Ingredients: "Sugar, palm oil, hazelnuts, cocoa",
	}

	for _, override := range overrides {
		override(product)
	}

	return product
}

// TruncateFoodItems truncates the food_items table
func TruncateFoodItems(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE food_items CASCADE")
	require.NoError(t, err, "Failed to truncate food_items")
}

// SeedFoodItems inserts the given items directly into the test database
func SeedFoodItems(t *testing.T, pool *pgxpool.Pool, items []domain.FoodItem) {
	t.Helper()

	ctx := context.Background()
	query := `
		INSERT INTO food_items (
			name, brand, quantity, categories, ingredients,
			image_url, source_url, expiry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range items {
		_, err := pool.Exec(ctx, query,
			item.Name, item.Brand, item.Quantity,
			nullable(item.Categories), nullable(item.Ingredients),
			nullable(item.ImageURL), nullable(item.SourceURL), nullable(item.ExpiryDate),
		)
		require.NoError(t, err, "Failed to seed food item")
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
