package controller

import "strings"

// KeyEvent is a raw key press forwarded by the presentation layer.
type KeyEvent struct {
	Key  string
	Meta bool
	Ctrl bool
}

// FocusTarget names the input element a key action should focus.
type FocusTarget string

const (
	FocusNone             FocusTarget = ""
	FocusCollectionSearch FocusTarget = "collection_search_input"
	FocusItemSearch       FocusTarget = "item_search_input"
)

// KeyAction tells the presentation layer what to do with the event.
type KeyAction struct {
	Focus          FocusTarget
	PreventDefault bool
}

// DispatchKey handles the global keyboard shortcuts:
//
//   - Cmd/Ctrl+K focuses the item search box on a detail view, otherwise the
//     collection search box.
//   - A bare "n" off the detail view opens the new-collection dialog.
//   - Escape closes whichever of the six modals is open, in a fixed order.
func (c *Controller) DispatchKey(ev KeyEvent) KeyAction {
	key := strings.ToLower(ev.Key)
	mod := ev.Meta || ev.Ctrl

	c.mu.Lock()
	defer c.mu.Unlock()

	if mod && key == "k" {
		if c.onDetailView() {
			return KeyAction{Focus: FocusItemSearch, PreventDefault: true}
		}
		return KeyAction{Focus: FocusCollectionSearch, PreventDefault: true}
	}

	if !mod && key == "n" {
		if !c.onDetailView() {
			c.newCollectionOpen = true
			return KeyAction{PreventDefault: true}
		}
		return KeyAction{}
	}

	if key == "escape" {
		if c.newCollectionOpen {
			c.toggleNewCollectionModal()
		}
		if c.editCollectionOpen {
			c.closeEditCollectionModal()
		}
		if c.deleteCollectionOpen {
			c.closeDeleteCollectionModal()
		}
		if c.newItemOpen {
			c.toggleNewItemModal()
		}
		if c.editItemOpen {
			c.closeEditItemModal()
		}
		if c.deleteItemOpen {
			c.closeDeleteItemModal()
		}
	}

	return KeyAction{}
}
