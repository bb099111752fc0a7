package domain

import "errors"

var (
	// ErrInvalidCatalog is returned when catalog data fails load-time validation
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrProductNotFound is returned when a product id is not in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidAnalysis is returned when an AI analysis document cannot be decoded
	ErrInvalidAnalysis = errors.New("invalid analysis document")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
