// Package collections persists per-user collection lists.
package collections

import (
	"context"

	"github.com/curio-app/curio/internal/models"
)

// Repository describes persistence operations for collections. All data is
// partitioned by the owning user's email; an email only ever sees its own
// slice.
type Repository interface {
	// ListForUser returns the collections owned by email, most recent first.
	ListForUser(ctx context.Context, email string) ([]models.Collection, error)

	// ReplaceForUser overwrites the collection list owned by email, leaving
	// every other user's slice untouched.
	ReplaceForUser(ctx context.Context, email string, cols []models.Collection) error
}
