package collections

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/storage"
)

// StoreRepository implements Repository on a storage.Store blob. The blob
// under storage.KeyCollections is a JSON object mapping user email to that
// user's collection list. A malformed blob decodes as an empty map: logged,
// self-healed on the next write.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) readAll(ctx context.Context) (map[string][]models.Collection, error) {
	blob, err := r.store.Read(ctx, storage.KeyCollections)
	if err != nil {
		return nil, fmt.Errorf("failed to read collections: %w", err)
	}
	if blob == "" {
		return map[string][]models.Collection{}, nil
	}

	var all map[string][]models.Collection
	if err := json.Unmarshal([]byte(blob), &all); err != nil {
		r.log.Error(ctx, "error decoding collections blob, treating as empty", "error", err)
		return map[string][]models.Collection{}, nil
	}
	return all, nil
}

func (r *StoreRepository) ListForUser(ctx context.Context, email string) ([]models.Collection, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	cols, ok := all[email]
	if !ok {
		return []models.Collection{}, nil
	}
	return cols, nil
}

func (r *StoreRepository) ReplaceForUser(ctx context.Context, email string, cols []models.Collection) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	all[email] = cols

	blob, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode collections: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeyCollections, string(blob)); err != nil {
		return fmt.Errorf("failed to write collections: %w", err)
	}
	return nil
}
