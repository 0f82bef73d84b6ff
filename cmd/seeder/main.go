package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pantryhq/pantry-be/internal/adapters/db"
	"github.com/pantryhq/pantry-be/internal/core/domain"
)

// seedItem is the on-disk shape of a seed record. It mirrors the API's
// add-item body so a seed file can double as request fixtures.
type seedItem struct {
	Name        string `json:"name"`
	Brands      string `json:"brands"`
	Quantity    string `json:"quantity"`
	Categories  string `json:"categories,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	SourceURL   string `json:"url,omitempty"`
	ExpiryDate  string `json:"expiryDate,omitempty"`
}

// defaultSeedItems is used when no seed file is given. Duplicate
// name+brand pairs are intentional so the inventory view has something
// to count.
var defaultSeedItems = []seedItem{
	{Name: "Nutella", Brands: "Ferrero", Quantity: "400 g", Categories: "Spreads, Hazelnut spreads", ExpiryDate: "2027-03-01"},
	{Name: "Nutella", Brands: "Ferrero", Quantity: "400 g", Categories: "Spreads, Hazelnut spreads", ExpiryDate: "2027-05-15"},
	{Name: "Whole Milk", Brands: "Arla", Quantity: "1 L", Categories: "Dairy, Milk", ExpiryDate: "2026-09-02"},
	{Name: "Basmati Rice", Brands: "Tilda", Quantity: "1 kg", Categories: "Rice"},
	{Name: "Basmati Rice", Brands: "Tilda", Quantity: "1 kg", Categories: "Rice"},
	{Name: "Basmati Rice", Brands: "Tilda", Quantity: "500 g", Categories: "Rice"},
	{Name: "Peanut Butter", Brands: "Calvé", Quantity: "350 g", Categories: "Spreads, Peanut butter", Ingredients: "Peanuts, vegetable oil, salt"},
	{Name: "Espresso Beans", Brands: "Lavazza", Quantity: "250 g", Categories: "Coffee", ExpiryDate: "2026-12-24"},
	{Name: "Canned Tomatoes", Brands: "Mutti", Quantity: "400 g", Categories: "Canned vegetables, Tomatoes", ExpiryDate: "2028-01-01"},
	{Name: "Oat Drink", Brands: "Oatly", Quantity: "1 L", Categories: "Plant-based drinks", ExpiryDate: "2026-08-30"},
}

func main() {
	// Parse flags
	var (
		seedFile = flag.String("file", "", "JSON file with seed items (defaults to built-in samples)")
		logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun   = flag.Bool("dry-run", false, "Preview changes without modifying database")
		truncate = flag.Bool("truncate", false, "Delete all existing food items before seeding")
	)
	flag.Parse()

	// Setup logging
	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	// Load seed items
	items := defaultSeedItems
	if *seedFile != "" {
		data, err := os.ReadFile(*seedFile)
		if err != nil {
			logger.Error("Failed to read seed file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		items = nil
		if err := json.Unmarshal(data, &items); err != nil {
			logger.Error("Failed to parse seed file", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	ctx := context.Background()

	if *dryRun {
		for i, item := range items {
			fmt.Printf("PREVIEW %d/%d: %s (%s) %s\n", i+1, len(items), item.Name, item.Brands, item.Quantity)
		}
		fmt.Println("\n[DRY RUN] No changes were made to the database")
		return
	}

	// Database connection
	dbConfig := db.DefaultConfig()
	dbConfig.Host = getEnv("DB_HOST", dbConfig.Host)
	dbConfig.Port = getEnv("DB_PORT", dbConfig.Port)
	dbConfig.User = getEnv("DB_USER", dbConfig.User)
	dbConfig.Password = getEnv("DB_PASSWORD", dbConfig.Password)
	dbConfig.Database = getEnv("DB_NAME", dbConfig.Database)
	dbConfig.SSLMode = getEnv("DB_SSL_MODE", dbConfig.SSLMode)

	database, err := db.NewDatabase(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	repo := db.NewFoodRepository(database, logger)

	if *truncate {
		removed, err := repo.DeleteAll(ctx)
		if err != nil {
			logger.Error("Failed to truncate food items", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Existing food items removed", slog.Int64("count", removed))
	}

	seeded := 0
	failed := 0

	for i, item := range items {
		fmt.Printf("PROGRESS: Seeding %d/%d: %s (%s)\n", i+1, len(items), item.Name, item.Brands)

		food := &domain.FoodItem{
			Name:        item.Name,
			Brand:       item.Brands,
			Quantity:    item.Quantity,
			Categories:  item.Categories,
			Ingredients: item.Ingredients,
			ImageURL:    item.ImageURL,
			SourceURL:   item.SourceURL,
			ExpiryDate:  item.ExpiryDate,
		}
		food.Normalize()
		if err := food.Validate(); err != nil {
			logger.Warn("Skipping invalid seed item",
				slog.String("name", item.Name),
				slog.String("error", err.Error()))
			failed++
			continue
		}

		if _, err := repo.Insert(ctx, food); err != nil {
			logger.Error("Failed to insert seed item",
				slog.String("name", item.Name),
				slog.String("error", err.Error()))
			failed++
			continue
		}
		seeded++
	}

	// Summary
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("SEEDING OPERATION SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Items Seeded: %d\n", seeded)
	fmt.Printf("Items Failed: %d\n", failed)

	logger.Info("Seed operation completed",
		slog.Int("seeded", seeded),
		slog.Int("failed", failed))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
