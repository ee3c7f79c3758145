// Package controller is the presentation-facing façade over the services:
// it tracks which modal is open, which entity is being edited or deleted,
// the currently viewed collection, and the two search queries, and turns
// UI triggers into service mutations. Every command returns at most one
// Notice; failures leave the state as it was.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/curio-app/curio/internal/common"
	"github.com/curio-app/curio/internal/filter"
	"github.com/curio-app/curio/internal/logging"
	"github.com/curio-app/curio/internal/models"
	"github.com/curio-app/curio/internal/services"
)

// Routes understood by the presentation layer.
const (
	RouteHome  = "/"
	RouteLogin = "/login"

	collectionRoutePrefix = "/collections/"
)

// CollectionRoute returns the detail route for a collection id.
func CollectionRoute(id string) string {
	return collectionRoutePrefix + id
}

// CollectionForm holds the modal form fields shared by the new- and
// edit-collection dialogs.
type CollectionForm struct {
	Name        string
	Description string
	Color       models.Color
}

// Controller mediates between the presentation layer and the services.
// Commands run one at a time; the internal mutex only exists because the
// search debouncer fires on a timer goroutine.
type Controller struct {
	mu sync.Mutex

	auth  services.AuthService
	cols  services.CollectionService
	items services.ItemService
	log   logging.Logger

	route string

	searchQuery        string
	itemSearchQuery    string
	searchDebounce     *Debouncer
	itemSearchDebounce *Debouncer

	newCollectionOpen    bool
	editCollectionOpen   bool
	deleteCollectionOpen bool
	newItemOpen          bool
	editItemOpen         bool
	deleteItemOpen       bool

	editingCollection    *models.Collection
	deletingCollectionID string
	editingItem          *models.Item
	deletingItemID       string

	form              CollectionForm
	currentCollection *models.Collection
}

// New constructs a Controller. debounce is the search quiet interval; zero
// applies queries synchronously.
func New(auth services.AuthService, cols services.CollectionService, items services.ItemService, log logging.Logger, debounce time.Duration) *Controller {
	c := &Controller{
		auth:               auth,
		cols:               cols,
		items:              items,
		log:                log,
		route:              RouteLogin,
		searchDebounce:     NewDebouncer(debounce),
		itemSearchDebounce: NewDebouncer(debounce),
	}
	c.resetCollectionForm()
	return c
}

// --- auth commands ---

// Register creates an account from the registration form payload.
func (c *Controller) Register(ctx context.Context, form map[string]string) Result {
	_, err := c.auth.Register(ctx, form["email"], form["password"], form["confirm_password"])
	if err != nil {
		return errorResult(err)
	}
	r := successResult("Registration successful! Please log in.")
	r.Redirect = RouteLogin
	return r
}

// Login authenticates from the login form payload and navigates home.
func (c *Controller) Login(ctx context.Context, form map[string]string) Result {
	s, err := c.auth.Login(ctx, form["email"], form["password"])
	if err != nil {
		return errorResult(err)
	}

	c.mu.Lock()
	c.route = RouteHome
	c.mu.Unlock()

	r := successResult(fmt.Sprintf("Logged in as %s.", s.Email))
	r.Redirect = RouteHome
	return r
}

// Logout clears the session and navigates to the login view.
func (c *Controller) Logout(ctx context.Context) Result {
	if err := c.auth.Logout(ctx); err != nil {
		return errorResult(err)
	}

	c.mu.Lock()
	c.route = RouteLogin
	c.currentCollection = nil
	c.mu.Unlock()

	r := successResult("Logged out.")
	r.Redirect = RouteLogin
	return r
}

// CheckAuth redirects to the login view when nobody is logged in.
func (c *Controller) CheckAuth(ctx context.Context) Result {
	if !c.auth.IsAuthenticated(ctx) {
		return Result{Redirect: RouteLogin}
	}
	return Result{}
}

// CurrentUserEmail exposes the logged-in email to the presentation layer.
func (c *Controller) CurrentUserEmail(ctx context.Context) string {
	return c.auth.CurrentUserEmail(ctx)
}

// --- navigation ---

// VisitHome navigates to the collection list view.
func (c *Controller) VisitHome(ctx context.Context) Result {
	if !c.auth.IsAuthenticated(ctx) {
		return Result{Redirect: RouteLogin}
	}
	c.mu.Lock()
	c.route = RouteHome
	c.currentCollection = nil
	c.mu.Unlock()
	return Result{}
}

// OpenCollection navigates to a collection's detail view. The collection is
// looked up once per navigation; a miss is a hard redirect back to the list.
func (c *Controller) OpenCollection(ctx context.Context, id string) Result {
	if !c.auth.IsAuthenticated(ctx) {
		return Result{Redirect: RouteLogin}
	}

	col, err := c.cols.Get(ctx, id)
	if err != nil {
		c.mu.Lock()
		c.route = RouteHome
		c.currentCollection = nil
		c.mu.Unlock()
		return Result{Redirect: RouteHome}
	}

	c.mu.Lock()
	c.route = CollectionRoute(id)
	c.currentCollection = col
	c.itemSearchQuery = ""
	c.mu.Unlock()
	return Result{}
}

// Route returns the current route path.
func (c *Controller) Route() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.route
}

func (c *Controller) onDetailView() bool {
	return strings.HasPrefix(c.route, collectionRoutePrefix)
}

// CurrentCollection returns the collection backing the detail view, or nil
// when it has not been loaded.
func (c *Controller) CurrentCollection() *models.Collection {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentCollection == nil {
		return nil
	}
	col := *c.currentCollection
	return &col
}

// --- search ---

// SetSearchQuery updates the collection search box; the query takes effect
// after the debounce interval.
func (c *Controller) SetSearchQuery(query string) {
	c.searchDebounce.Trigger(func() {
		c.mu.Lock()
		c.searchQuery = query
		c.mu.Unlock()
	})
}

// SetItemSearchQuery updates the item search box for the detail view.
func (c *Controller) SetItemSearchQuery(query string) {
	c.itemSearchDebounce.Trigger(func() {
		c.mu.Lock()
		c.itemSearchQuery = query
		c.mu.Unlock()
	})
}

func (c *Controller) SearchQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searchQuery
}

func (c *Controller) ItemSearchQuery() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.itemSearchQuery
}

// --- derived views ---

// Collections returns the current user's collections, unfiltered.
func (c *Controller) Collections(ctx context.Context) ([]models.Collection, error) {
	return c.cols.List(ctx)
}

// FilteredCollections applies the collection search query.
func (c *Controller) FilteredCollections(ctx context.Context) ([]models.Collection, error) {
	cols, err := c.cols.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Collections(cols, c.SearchQuery()), nil
}

// Items returns the items of one collection, unfiltered.
func (c *Controller) Items(ctx context.Context, collectionID string) ([]models.Item, error) {
	return c.items.ListForCollection(ctx, collectionID)
}

// ItemsInCurrentCollection returns the detail view's items with the item
// search query applied. Empty when no collection is loaded.
func (c *Controller) ItemsInCurrentCollection(ctx context.Context) ([]models.Item, error) {
	current := c.CurrentCollection()
	if current == nil {
		return []models.Item{}, nil
	}
	its, err := c.items.ListForCollection(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	return filter.Items(its, c.ItemSearchQuery()), nil
}

// CollectionsExist reports whether the current user has any collections.
func (c *Controller) CollectionsExist(ctx context.Context) (bool, error) {
	cols, err := c.cols.List(ctx)
	if err != nil {
		return false, err
	}
	return len(cols) > 0, nil
}

// --- modal state ---

func (c *Controller) resetCollectionForm() {
	c.form = CollectionForm{Color: models.ColorOrange}
	c.editingCollection = nil
}

func (c *Controller) resetItemForm() {
	c.editingItem = nil
}

// ToggleNewCollectionModal opens or closes the new-collection dialog,
// resetting the form on close.
func (c *Controller) ToggleNewCollectionModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleNewCollectionModal()
}

func (c *Controller) toggleNewCollectionModal() {
	c.newCollectionOpen = !c.newCollectionOpen
	if !c.newCollectionOpen {
		c.resetCollectionForm()
	}
}

// OpenEditCollectionModal loads col into the form and opens the edit dialog.
func (c *Controller) OpenEditCollectionModal(col models.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingCollection = &col
	c.form = CollectionForm{Name: col.Name, Description: col.Description, Color: col.Color}
	c.editCollectionOpen = true
}

// CloseEditCollectionModal closes the edit dialog and clears the form.
// Idempotent.
func (c *Controller) CloseEditCollectionModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeEditCollectionModal()
}

func (c *Controller) closeEditCollectionModal() {
	c.editCollectionOpen = false
	c.resetCollectionForm()
}

// OpenDeleteCollectionModal opens the delete confirmation for col.
func (c *Controller) OpenDeleteCollectionModal(col models.Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletingCollectionID = col.ID
	c.deleteCollectionOpen = true
}

// CloseDeleteCollectionModal closes the delete confirmation. Idempotent.
func (c *Controller) CloseDeleteCollectionModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeDeleteCollectionModal()
}

func (c *Controller) closeDeleteCollectionModal() {
	c.deleteCollectionOpen = false
	c.deletingCollectionID = ""
}

// ToggleNewItemModal opens or closes the new-item dialog.
func (c *Controller) ToggleNewItemModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toggleNewItemModal()
}

func (c *Controller) toggleNewItemModal() {
	c.newItemOpen = !c.newItemOpen
	c.resetItemForm()
}

// OpenEditItemModal loads item into the form and opens the edit dialog.
func (c *Controller) OpenEditItemModal(item models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingItem = &item
	c.editItemOpen = true
}

// CloseEditItemModal closes the item edit dialog. Idempotent.
func (c *Controller) CloseEditItemModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeEditItemModal()
}

func (c *Controller) closeEditItemModal() {
	c.editItemOpen = false
	c.resetItemForm()
}

// OpenDeleteItemModal opens the delete confirmation for item.
func (c *Controller) OpenDeleteItemModal(item models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deletingItemID = item.ID
	c.deleteItemOpen = true
}

// CloseDeleteItemModal closes the item delete confirmation. Idempotent.
func (c *Controller) CloseDeleteItemModal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeDeleteItemModal()
}

func (c *Controller) closeDeleteItemModal() {
	c.deleteItemOpen = false
	c.deletingItemID = ""
}

// SetNewCollectionColor picks the accent color in the collection form.
func (c *Controller) SetNewCollectionColor(color models.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Color = color
}

// Form returns the current collection form contents.
func (c *Controller) Form() CollectionForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Modal flag accessors.

func (c *Controller) NewCollectionModalOpen() bool    { return c.flag(&c.newCollectionOpen) }
func (c *Controller) EditCollectionModalOpen() bool   { return c.flag(&c.editCollectionOpen) }
func (c *Controller) DeleteCollectionModalOpen() bool { return c.flag(&c.deleteCollectionOpen) }
func (c *Controller) NewItemModalOpen() bool          { return c.flag(&c.newItemOpen) }
func (c *Controller) EditItemModalOpen() bool         { return c.flag(&c.editItemOpen) }
func (c *Controller) DeleteItemModalOpen() bool       { return c.flag(&c.deleteItemOpen) }

func (c *Controller) flag(f *bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return *f
}

// --- collection commands ---

// SubmitCreateCollection creates a collection from the new-collection form
// payload; the color comes from the form state, not the payload.
func (c *Controller) SubmitCreateCollection(ctx context.Context, form map[string]string) Result {
	c.mu.Lock()
	color := c.form.Color
	c.mu.Unlock()

	col, err := c.cols.Create(ctx, form["name"], form["description"], color)
	if err != nil {
		return errorResult(err)
	}

	c.mu.Lock()
	c.newCollectionOpen = false
	c.resetCollectionForm()
	c.mu.Unlock()

	return successResult(fmt.Sprintf("Collection '%s' created!", col.Name))
}

// SubmitEditCollection applies the edit-collection form to the collection
// loaded by OpenEditCollectionModal.
func (c *Controller) SubmitEditCollection(ctx context.Context, form map[string]string) Result {
	c.mu.Lock()
	editing := c.editingCollection
	color := c.form.Color
	c.mu.Unlock()

	if editing == nil {
		return errorText("No collection selected for editing.")
	}

	col, err := c.cols.Update(ctx, editing.ID, form["name"], form["description"], color)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// The collection vanished under the open modal; drop the stale state.
			c.CloseEditCollectionModal()
		}
		return errorResult(err)
	}

	c.mu.Lock()
	c.closeEditCollectionModal()
	if c.currentCollection != nil && c.currentCollection.ID == col.ID {
		c.currentCollection = col
	}
	c.mu.Unlock()

	return successResult(fmt.Sprintf("Collection '%s' updated!", col.Name))
}

// ConfirmDeleteCollection deletes the collection picked by
// OpenDeleteCollectionModal, cascading to its items.
func (c *Controller) ConfirmDeleteCollection(ctx context.Context) Result {
	c.mu.Lock()
	id := c.deletingCollectionID
	c.mu.Unlock()

	if id == "" {
		return errorText("No collection selected for deletion.")
	}

	if err := c.cols.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.CloseDeleteCollectionModal()
		}
		return errorResult(err)
	}

	c.mu.Lock()
	c.closeDeleteCollectionModal()
	redirect := ""
	if c.currentCollection != nil && c.currentCollection.ID == id {
		c.currentCollection = nil
		c.route = RouteHome
		redirect = RouteHome
	}
	c.mu.Unlock()

	r := successResult("Collection deleted.")
	r.Redirect = redirect
	return r
}

// --- item commands ---

// SubmitCreateItem creates an item in the currently viewed collection. Items
// are always attached to the detail view's collection; there is no picker.
func (c *Controller) SubmitCreateItem(ctx context.Context, form map[string]string) Result {
	current := c.CurrentCollection()
	if current == nil {
		return errorText("Cannot add item: no collection context.")
	}

	item, err := c.items.Create(ctx, current.ID, form["name"], form["description"], form["tags"])
	if err != nil {
		return errorResult(err)
	}

	c.mu.Lock()
	c.newItemOpen = false
	c.resetItemForm()
	c.mu.Unlock()
	c.refreshCurrentCollection(ctx)

	return successResult(fmt.Sprintf("Item '%s' added.", item.Name))
}

// SubmitEditItem applies the edit-item form to the item loaded by
// OpenEditItemModal. The owning collection never changes.
func (c *Controller) SubmitEditItem(ctx context.Context, form map[string]string) Result {
	c.mu.Lock()
	editing := c.editingItem
	c.mu.Unlock()

	if editing == nil {
		return errorText("No item selected for editing.")
	}

	item, err := c.items.Update(ctx, editing.ID, form["name"], form["description"], form["tags"])
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.CloseEditItemModal()
		}
		return errorResult(err)
	}

	c.mu.Lock()
	c.closeEditItemModal()
	c.mu.Unlock()
	c.refreshCurrentCollection(ctx)

	return successResult(fmt.Sprintf("Item '%s' updated.", item.Name))
}

// ConfirmDeleteItem deletes the item picked by OpenDeleteItemModal.
func (c *Controller) ConfirmDeleteItem(ctx context.Context) Result {
	c.mu.Lock()
	id := c.deletingItemID
	c.mu.Unlock()

	if id == "" {
		return errorText("No item to delete.")
	}

	if err := c.items.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.CloseDeleteItemModal()
		}
		return errorResult(err)
	}

	c.mu.Lock()
	c.closeDeleteItemModal()
	c.mu.Unlock()
	c.refreshCurrentCollection(ctx)

	return successResult("Item deleted.")
}

// refreshCurrentCollection reloads the cached detail-view copy so derived
// fields (item_count, updated_at) stay current after item mutations.
func (c *Controller) refreshCurrentCollection(ctx context.Context) {
	current := c.CurrentCollection()
	if current == nil {
		return
	}
	col, err := c.cols.Get(ctx, current.ID)
	if err != nil {
		c.log.Warn(ctx, "current collection no longer exists", "id", current.ID)
		return
	}
	c.mu.Lock()
	c.currentCollection = col
	c.mu.Unlock()
}
