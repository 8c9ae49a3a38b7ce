package cache

import (
	"context"
	"time"
)

// Cache holds derived catalog views. A miss and a backend failure are both
// reported as found=false; callers fall back to the document store either way.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CatalogKeyPrefix = "catalog"
)

// CategoriesKey caches the distinct category values present in inventory.
var CategoriesKey = Key(CatalogKeyPrefix, "categories")
