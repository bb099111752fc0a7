package domain

import (
	"context"
	"time"
)

// CatalogRepository provides read-only access to the product catalog
type CatalogRepository interface {
	// Products returns every product in catalog order. Callers must treat
	// the returned products as read-only.
	Products() []Product
	ProductByID(id string) (Product, error)
	Categories() []CategoryCount
	Len() int
}

// CacheRepository defines the interface for caching encoded responses
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
