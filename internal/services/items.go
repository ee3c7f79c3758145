package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/curio-app/curio/internal/common"
	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/repositories/items"
)

// ItemService owns item CRUD for the authenticated user. The collection's
// denormalized item count is maintained here, inside create/update/delete,
// never by callers: +1 on create, -1 on delete, and a 0 delta on update to
// refresh the collection's updated_at.
type ItemService interface {
	ListForUser(ctx context.Context) ([]models.Item, error)
	ListForCollection(ctx context.Context, collectionID string) ([]models.Item, error)
	Create(ctx context.Context, collectionID, name, description, tagsRaw string) (*models.Item, error)
	Update(ctx context.Context, id, name, description, tagsRaw string) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}

type itemService struct {
	auth     AuthService
	itemRepo items.Repository
	cols     CollectionService
	log      logging.Logger
	now      func() time.Time
}

// NewItemService constructs an ItemService bound to the collection service
// that receives the count deltas.
func NewItemService(auth AuthService, itemRepo items.Repository, cols CollectionService, log logging.Logger) ItemService {
	return &itemService{auth: auth, itemRepo: itemRepo, cols: cols, log: log, now: time.Now}
}

func (s *itemService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func (s *itemService) ListForUser(ctx context.Context) ([]models.Item, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.ListForUser(ctx, email)
}

func (s *itemService) ListForCollection(ctx context.Context, collectionID string) ([]models.Item, error) {
	all, err := s.ListForUser(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Item, 0, len(all))
	for _, it := range all {
		if it.CollectionID == collectionID {
			result = append(result, it)
		}
	}
	return result, nil
}

func (s *itemService) Create(ctx context.Context, collectionID, name, description, tagsRaw string) (*models.Item, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", common.ErrValidation)
	}

	// The referenced collection must exist before an item can point at it.
	if _, err := s.cols.Get(ctx, collectionID); err != nil {
		return nil, err
	}

	all, err := s.itemRepo.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}

	now := s.timestamp()
	item := models.Item{
		ID:           uuid.NewString(),
		Name:         name,
		Description:  description,
		Tags:         models.ParseTags(tagsRaw),
		CollectionID: collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	updated := append([]models.Item{item}, all...)
	if err := s.itemRepo.ReplaceForUser(ctx, email, updated); err != nil {
		return nil, err
	}
	if _, err := s.cols.ApplyItemDelta(ctx, collectionID, 1); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "item created", "id", item.ID, "collection_id", collectionID)
	return &item, nil
}

func (s *itemService) Update(ctx context.Context, id, name, description, tagsRaw string) (*models.Item, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name cannot be empty", common.ErrValidation)
	}

	all, err := s.itemRepo.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			all[i].Name = name
			all[i].Description = description
			all[i].Tags = models.ParseTags(tagsRaw)
			all[i].UpdatedAt = s.timestamp()
			if err := s.itemRepo.ReplaceForUser(ctx, email, all); err != nil {
				return nil, err
			}
			// Zero delta still refreshes the collection's updated_at.
			if _, err := s.cols.ApplyItemDelta(ctx, all[i].CollectionID, 0); err != nil {
				return nil, err
			}
			it := all[i]
			return &it, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *itemService) Delete(ctx context.Context, id string) error {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return common.ErrUnauthorized
	}

	all, err := s.itemRepo.ListForUser(ctx, email)
	if err != nil {
		return err
	}

	var deleted *models.Item
	remaining := make([]models.Item, 0, len(all))
	for _, it := range all {
		if it.ID == id {
			d := it
			deleted = &d
			continue
		}
		remaining = append(remaining, it)
	}
	if deleted == nil {
		return common.ErrNotFound
	}

	if err := s.itemRepo.ReplaceForUser(ctx, email, remaining); err != nil {
		return err
	}
	if _, err := s.cols.ApplyItemDelta(ctx, deleted.CollectionID, -1); err != nil {
		return err
	}

	s.log.Info(ctx, "item deleted", "id", id, "collection_id", deleted.CollectionID)
	return nil
}
