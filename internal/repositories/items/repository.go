// Package items persists per-user item lists.
package items

import (
	"context"

	"github.com/curio-app/curio/internal/models"
)

// Repository describes persistence operations for items, partitioned by the
// owning user's email.
type Repository interface {
	// ListForUser returns the items owned by email, most recent first.
	ListForUser(ctx context.Context, email string) ([]models.Item, error)

	// ReplaceForUser overwrites the item list owned by email, leaving every
	// other user's slice untouched.
	ReplaceForUser(ctx context.Context, email string, items []models.Item) error
}
