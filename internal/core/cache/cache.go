package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get and TTL when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Cache is the key/value port used by features that need shared state across viewer instances.
type Cache interface {
	// Get retrieves a value by key. Missing keys yield ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// TTL reports the remaining lifetime of key; 0 means it never expires.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
