package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/repositories/collections"
	"github.com/curio-app/curio/internal/repositories/items"
	"github.com/curio-app/curio/internal/repositories/session"
	"github.com/curio-app/curio/internal/repositories/users"
	"github.com/curio-app/curio/internal/storage"
)

type testEnv struct {
	auth  AuthService
	cols  CollectionService
	items ItemService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	userRepo := users.NewStoreRepository(store, log)
	sessionRepo := session.NewStoreRepository(store, []byte("test-secret"), log)
	colRepo := collections.NewStoreRepository(store, log)
	itemRepo := items.NewStoreRepository(store, log)

	auth := NewAuthService(userRepo, sessionRepo, log)
	cols := NewCollectionService(auth, colRepo, itemRepo, log)
	its := NewItemService(auth, itemRepo, cols, log)

	return &testEnv{auth: auth, cols: cols, items: its}
}

// registerAndLogin creates an account and opens a session for it.
func (e *testEnv) registerAndLogin(t *testing.T, email, password string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.auth.Register(ctx, email, password, password)
	require.NoError(t, err)
	_, err = e.auth.Login(ctx, email, password)
	require.NoError(t, err)
}
