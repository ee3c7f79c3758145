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
	"github.com/curio-app/curio/internal/repositories/collections"
	"github.com/curio-app/curio/internal/repositories/items"
)

// CollectionService owns collection CRUD for the authenticated user.
//
// Every operation is scoped to the current session: List returns an empty
// slice when nobody is logged in, mutations fail with common.ErrUnauthorized.
// Delete cascades to the owned items. ApplyItemDelta maintains the
// denormalized item count and is only called by the item service.
type CollectionService interface {
	List(ctx context.Context) ([]models.Collection, error)
	Get(ctx context.Context, id string) (*models.Collection, error)
	Create(ctx context.Context, name, description string, color models.Color) (*models.Collection, error)
	Update(ctx context.Context, id, name, description string, color models.Color) (*models.Collection, error)
	Delete(ctx context.Context, id string) error
	ApplyItemDelta(ctx context.Context, collectionID string, delta int) (*models.Collection, error)
}

type collectionService struct {
	auth     AuthService
	colRepo  collections.Repository
	itemRepo items.Repository
	log      logging.Logger
	now      func() time.Time
}

// NewCollectionService constructs a CollectionService. The item repository
// is needed for cascade deletes.
func NewCollectionService(auth AuthService, colRepo collections.Repository, itemRepo items.Repository, log logging.Logger) CollectionService {
	return &collectionService{auth: auth, colRepo: colRepo, itemRepo: itemRepo, log: log, now: time.Now}
}

func (s *collectionService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

func (s *collectionService) List(ctx context.Context) ([]models.Collection, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return []models.Collection{}, nil
	}
	return s.colRepo.ListForUser(ctx, email)
}

func (s *collectionService) Get(ctx context.Context, id string) (*models.Collection, error) {
	cols, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range cols {
		if cols[i].ID == id {
			c := cols[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

func (s *collectionService) Create(ctx context.Context, name, description string, color models.Color) (*models.Collection, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", common.ErrValidation)
	}
	if color == "" {
		color = models.ColorOrange
	}
	if !color.Valid() {
		return nil, fmt.Errorf("%w: unknown color %q", common.ErrValidation, color)
	}

	cols, err := s.colRepo.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}

	col := models.Collection{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Color:       color,
		ItemCount:   0,
		UpdatedAt:   s.timestamp(),
	}

	// Most recent first.
	updated := append([]models.Collection{col}, cols...)
	if err := s.colRepo.ReplaceForUser(ctx, email, updated); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "collection created", "id", col.ID, "name", col.Name)
	return &col, nil
}

func (s *collectionService) Update(ctx context.Context, id, name, description string, color models.Color) (*models.Collection, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: collection name cannot be empty", common.ErrValidation)
	}
	if !color.Valid() {
		return nil, fmt.Errorf("%w: unknown color %q", common.ErrValidation, color)
	}

	cols, err := s.colRepo.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range cols {
		if cols[i].ID == id {
			cols[i].Name = name
			cols[i].Description = description
			cols[i].Color = color
			cols[i].UpdatedAt = s.timestamp()
			if err := s.colRepo.ReplaceForUser(ctx, email, cols); err != nil {
				return nil, err
			}
			c := cols[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

// Delete removes the collection and every item referencing it. The item
// slice is persisted before the collection slice so a retry stays possible
// if the second write fails.
func (s *collectionService) Delete(ctx context.Context, id string) error {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return common.ErrUnauthorized
	}

	cols, err := s.colRepo.ListForUser(ctx, email)
	if err != nil {
		return err
	}

	remaining := make([]models.Collection, 0, len(cols))
	found := false
	for _, c := range cols {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return common.ErrNotFound
	}

	allItems, err := s.itemRepo.ListForUser(ctx, email)
	if err != nil {
		return err
	}
	keptItems := make([]models.Item, 0, len(allItems))
	for _, it := range allItems {
		if it.CollectionID != id {
			keptItems = append(keptItems, it)
		}
	}
	if err := s.itemRepo.ReplaceForUser(ctx, email, keptItems); err != nil {
		return err
	}
	if err := s.colRepo.ReplaceForUser(ctx, email, remaining); err != nil {
		return err
	}

	s.log.Info(ctx, "collection deleted", "id", id, "items_removed", len(allItems)-len(keptItems))
	return nil
}

func (s *collectionService) ApplyItemDelta(ctx context.Context, collectionID string, delta int) (*models.Collection, error) {
	email := s.auth.CurrentUserEmail(ctx)
	if email == "" {
		return nil, common.ErrUnauthorized
	}

	cols, err := s.colRepo.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}

	for i := range cols {
		if cols[i].ID == collectionID {
			cols[i].ItemCount += delta
			cols[i].UpdatedAt = s.timestamp()
			if err := s.colRepo.ReplaceForUser(ctx, email, cols); err != nil {
				return nil, err
			}
			c := cols[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}
