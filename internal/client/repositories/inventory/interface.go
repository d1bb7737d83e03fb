// Package inventory persists each category's items as one JSON array in a
// kv.Store under "category_<name>".
package inventory

import (
	"context"

	"github.com/astroerik-coder/agrostock/internal/client/models"
)

// KeyPrefix precedes the category name in storage keys.
const KeyPrefix = "category_"

// Key returns the storage key of category.
func Key(category string) string {
	return KeyPrefix + category
}

type Repository interface {
	// Load returns the stored items of category; found is false when the
	// category was never written.
	Load(ctx context.Context, category string) (items []models.Item, found bool, err error)
	// Update atomically rewrites the category with fn(current, found).
	Update(ctx context.Context, category string, fn func(items []models.Item, found bool) ([]models.Item, error)) error
	// Stored lists the categories that have been written at least once.
	Stored(ctx context.Context) ([]string, error)
}
