package controller

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/repositories/collections"
	"github.com/curio-app/curio/internal/repositories/items"
	"github.com/curio-app/curio/internal/repositories/session"
	"github.com/curio-app/curio/internal/repositories/users"
	"github.com/curio-app/curio/internal/services"
	"github.com/curio-app/curio/internal/storage"
)

// setupController builds a Controller over in-memory storage with the
// debounce disabled so search queries apply synchronously.
func setupController(t *testing.T) *Controller {
	t.Helper()
	store := storage.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	userRepo := users.NewStoreRepository(store, log)
	sessionRepo := session.NewStoreRepository(store, []byte("test-secret"), log)
	colRepo := collections.NewStoreRepository(store, log)
	itemRepo := items.NewStoreRepository(store, log)

	auth := services.NewAuthService(userRepo, sessionRepo, log)
	cols := services.NewCollectionService(auth, colRepo, itemRepo, log)
	its := services.NewItemService(auth, itemRepo, cols, log)

	return New(auth, cols, its, log, 0)
}

func loginAs(t *testing.T, c *Controller, email string) {
	t.Helper()
	ctx := context.Background()
	r := c.Register(ctx, map[string]string{
		"email":            email,
		"password":         "password1",
		"confirm_password": "password1",
	})
	require.Equal(t, LevelSuccess, r.Notice.Level, r.Notice.Text)
	r = c.Login(ctx, map[string]string{"email": email, "password": "password1"})
	require.Equal(t, LevelSuccess, r.Notice.Level, r.Notice.Text)
}

func createCollection(t *testing.T, c *Controller, name string) models.Collection {
	t.Helper()
	c.ToggleNewCollectionModal()
	r := c.SubmitCreateCollection(context.Background(), map[string]string{"name": name})
	require.Equal(t, LevelSuccess, r.Notice.Level, r.Notice.Text)

	cols, err := c.Collections(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cols)
	return cols[0]
}

func TestRegisterLoginFlow(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	r := c.Register(ctx, map[string]string{
		"email":            "alice@x.com",
		"password":         "password1",
		"confirm_password": "password1",
	})
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, RouteLogin, r.Redirect)

	r = c.Login(ctx, map[string]string{"email": "alice@x.com", "password": "password1"})
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, RouteHome, r.Redirect)
	assert.Equal(t, "alice@x.com", c.CurrentUserEmail(ctx))
}

func TestRegister_FailureProducesSingleErrorNotice(t *testing.T) {
	c := setupController(t)

	r := c.Register(context.Background(), map[string]string{
		"email":            "alice@x.com",
		"password":         "password1",
		"confirm_password": "different",
	})
	assert.Equal(t, LevelError, r.Notice.Level)
	assert.Equal(t, "passwords do not match", r.Notice.Text)
	assert.Empty(t, r.Redirect)
}

func TestCheckAuth_RedirectsWhenLoggedOut(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()

	assert.Equal(t, RouteLogin, c.CheckAuth(ctx).Redirect)

	loginAs(t, c, "alice@x.com")
	assert.Empty(t, c.CheckAuth(ctx).Redirect)
}

func TestCreateCollection_ScenarioFromListView(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")

	c.ToggleNewCollectionModal()
	assert.True(t, c.NewCollectionModalOpen())
	c.SetNewCollectionColor(models.ColorBlue)

	r := c.SubmitCreateCollection(ctx, map[string]string{"name": "Logos"})
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, "Collection 'Logos' created!", r.Notice.Text)
	assert.False(t, c.NewCollectionModalOpen(), "submit closes the modal")

	cols, err := c.Collections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Logos", cols[0].Name)
	assert.Equal(t, models.ColorBlue, cols[0].Color)
	assert.Equal(t, 0, cols[0].ItemCount)
}

func TestSubmitCreateCollection_EmptyNameKeepsModalOpen(t *testing.T) {
	c := setupController(t)
	loginAs(t, c, "alice@x.com")

	c.ToggleNewCollectionModal()
	r := c.SubmitCreateCollection(context.Background(), map[string]string{"name": "   "})
	assert.Equal(t, LevelError, r.Notice.Level)
	assert.True(t, c.NewCollectionModalOpen(), "failed submit leaves state untouched")
}

func TestToggleNewCollectionModal_ResetsFormOnClose(t *testing.T) {
	c := setupController(t)
	loginAs(t, c, "alice@x.com")

	c.ToggleNewCollectionModal()
	c.SetNewCollectionColor(models.ColorPink)
	c.ToggleNewCollectionModal()

	assert.Equal(t, models.ColorOrange, c.Form().Color, "closing resets the form to defaults")
}

func TestOpenEditCollectionModal_PrefillsForm(t *testing.T) {
	c := setupController(t)
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")

	c.OpenEditCollectionModal(col)
	assert.True(t, c.EditCollectionModalOpen())

	form := c.Form()
	assert.Equal(t, "Logos", form.Name)
	assert.Equal(t, col.Color, form.Color)

	c.CloseEditCollectionModal()
	c.CloseEditCollectionModal() // idempotent
	assert.False(t, c.EditCollectionModalOpen())
	assert.Empty(t, c.Form().Name)
}

func TestSubmitEditCollection_StaleTargetClosesModal(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")

	c.OpenEditCollectionModal(col)

	// The collection disappears while the modal is open.
	c.OpenDeleteCollectionModal(col)
	r := c.ConfirmDeleteCollection(ctx)
	require.Equal(t, LevelSuccess, r.Notice.Level)

	r = c.SubmitEditCollection(ctx, map[string]string{"name": "Renamed"})
	assert.Equal(t, LevelError, r.Notice.Level)
	assert.False(t, c.EditCollectionModalOpen(), "stale edit state is cleaned up")
}

func TestOpenCollection_MissRedirectsHome(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")

	r := c.OpenCollection(ctx, "no-such-id")
	assert.Equal(t, RouteHome, r.Redirect)
	assert.Nil(t, c.CurrentCollection())
}

func TestOpenCollection_LoadsDetailView(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")

	c.SetItemSearchQuery("leftover")
	r := c.OpenCollection(ctx, col.ID)
	assert.Empty(t, r.Redirect)
	require.NotNil(t, c.CurrentCollection())
	assert.Equal(t, col.ID, c.CurrentCollection().ID)
	assert.Equal(t, CollectionRoute(col.ID), c.Route())
	assert.Equal(t, "", c.ItemSearchQuery(), "navigation resets the item search")
}

func TestItemLifecycleOnDetailView(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")
	require.Empty(t, c.OpenCollection(ctx, col.ID).Redirect)

	c.ToggleNewItemModal()
	r := c.SubmitCreateItem(ctx, map[string]string{
		"name": "Logo A",
		"tags": "png, primary",
	})
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, "Item 'Logo A' added.", r.Notice.Text)
	assert.False(t, c.NewItemModalOpen())

	// The cached detail-view copy reflects the new count.
	require.NotNil(t, c.CurrentCollection())
	assert.Equal(t, 1, c.CurrentCollection().ItemCount)

	items, err := c.ItemsInCurrentCollection(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"png", "primary"}, items[0].Tags)

	c.OpenEditItemModal(items[0])
	r = c.SubmitEditItem(ctx, map[string]string{
		"name": "Logo A",
		"tags": " png ,, Primary ",
	})
	assert.Equal(t, LevelSuccess, r.Notice.Level)

	items, err = c.ItemsInCurrentCollection(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, []string{"png", "Primary"}, items[0].Tags)
	assert.Equal(t, 1, c.CurrentCollection().ItemCount)

	c.OpenDeleteItemModal(items[0])
	r = c.ConfirmDeleteItem(ctx)
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, 0, c.CurrentCollection().ItemCount)
}

func TestSubmitCreateItem_NoCollectionContext(t *testing.T) {
	c := setupController(t)
	loginAs(t, c, "alice@x.com")

	r := c.SubmitCreateItem(context.Background(), map[string]string{"name": "Logo A"})
	assert.Equal(t, LevelError, r.Notice.Level)
	assert.Equal(t, "Cannot add item: no collection context.", r.Notice.Text)
}

func TestConfirmDeleteCollection_OnDetailViewRedirects(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")
	require.Empty(t, c.OpenCollection(ctx, col.ID).Redirect)

	c.OpenDeleteCollectionModal(col)
	r := c.ConfirmDeleteCollection(ctx)
	assert.Equal(t, LevelSuccess, r.Notice.Level)
	assert.Equal(t, RouteHome, r.Redirect)
	assert.Nil(t, c.CurrentCollection())

	exists, err := c.CollectionsExist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSearchQueriesFilterViews(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")

	createCollection(t, c, "Logos")
	createCollection(t, c, "Stamps")

	c.SetSearchQuery("logo")
	cols, err := c.FilteredCollections(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "Logos", cols[0].Name)

	c.SetSearchQuery("")
	cols, err = c.FilteredCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, cols, 2)
}

func TestLogout_ClearsViewState(t *testing.T) {
	c := setupController(t)
	ctx := context.Background()
	loginAs(t, c, "alice@x.com")
	col := createCollection(t, c, "Logos")
	require.Empty(t, c.OpenCollection(ctx, col.ID).Redirect)

	r := c.Logout(ctx)
	assert.Equal(t, RouteLogin, r.Redirect)
	assert.Nil(t, c.CurrentCollection())
	assert.Equal(t, RouteLogin, c.Route())

	cols, err := c.Collections(ctx)
	require.NoError(t, err)
	assert.Empty(t, cols)
}
