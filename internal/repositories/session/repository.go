// Package session persists the single active login session.
package session

import (
	"context"

	"github.com/curio-app/curio/internal/models"
)

// Repository describes persistence operations for the session slot.
// There is at most one session; setting a new one replaces the old.
type Repository interface {
	// Get returns the active session, or (nil, nil) when nobody is logged in.
	Get(ctx context.Context) (*models.Session, error)

	// Set replaces the active session.
	Set(ctx context.Context, s models.Session) error

	// Clear removes the active session. Idempotent.
	Clear(ctx context.Context) error
}
