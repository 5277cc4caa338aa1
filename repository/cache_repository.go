package repository

import "context"

// CacheRepository stores serialized quotes keyed by their normalized inputs.
// Expiry is configured on the implementation.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
