// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/food_repository.go -destination=food_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/food_service.go -destination=food_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/catalog.go -destination=catalog_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/database.go -destination=database_mock.go -package=mocks
