// Package cache stores rendered graph artifacts keyed by the graph body and
// render options, so repeated renders of an unchanged graph are served from
// disk instead of re-running the Graphviz engine.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with optional per-entry TTL.
// A zero TTL means the entry never expires.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found;
	// expired entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKey derives the cache key for a rendered artifact from everything
// that determines its bytes: the serialized graph body, the output format,
// and the Graphviz attributes applied. Any change to any component yields a
// different key.
func ArtifactKey(body []byte, format string, attrs map[string]string) string {
	return hashKey("artifact", string(body), format, attrs)
}
