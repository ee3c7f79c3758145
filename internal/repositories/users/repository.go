// Package users persists the registered-user list.
package users

import (
	"context"

	"github.com/curio-app/curio/internal/models"
)

// Repository describes persistence operations for the user list.
type Repository interface {
	// List returns all registered users, in registration order.
	List(ctx context.Context) ([]models.User, error)

	// Replace overwrites the stored user list.
	Replace(ctx context.Context, users []models.User) error
}
