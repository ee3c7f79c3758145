package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/storage"
)

// StoreRepository implements Repository on a storage.Store blob. The blob is
// a JSON array of users under storage.KeyUsers. A malformed blob decodes as
// an empty list: it is logged and the store self-heals on the next write.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.User, error) {
	blob, err := r.store.Read(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	if blob == "" {
		return []models.User{}, nil
	}

	var result []models.User
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		r.log.Error(ctx, "error decoding users blob, treating as empty", "error", err)
		return []models.User{}, nil
	}
	return result, nil
}

func (r *StoreRepository) Replace(ctx context.Context, users []models.User) error {
	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeyUsers, string(blob)); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	return nil
}
