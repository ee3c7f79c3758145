package items

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/storage"
)

// StoreRepository implements Repository on a storage.Store blob. The blob
// under storage.KeyItems is a JSON object mapping user email to that user's
// item list. A malformed blob decodes as an empty map: logged, self-healed
// on the next write.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) readAll(ctx context.Context) (map[string][]models.Item, error) {
	blob, err := r.store.Read(ctx, storage.KeyItems)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	if blob == "" {
		return map[string][]models.Item{}, nil
	}

	var all map[string][]models.Item
	if err := json.Unmarshal([]byte(blob), &all); err != nil {
		r.log.Error(ctx, "error decoding items blob, treating as empty", "error", err)
		return map[string][]models.Item{}, nil
	}
	return all, nil
}

func (r *StoreRepository) ListForUser(ctx context.Context, email string) ([]models.Item, error) {
	all, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := all[email]
	if !ok {
		return []models.Item{}, nil
	}
	return items, nil
}

func (r *StoreRepository) ReplaceForUser(ctx context.Context, email string, items []models.Item) error {
	all, err := r.readAll(ctx)
	if err != nil {
		return err
	}
	all[email] = items

	blob, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if err := r.store.Write(ctx, storage.KeyItems, string(blob)); err != nil {
		return fmt.Errorf("failed to write items: %w", err)
	}
	return nil
}
