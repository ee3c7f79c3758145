package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/curio-app/curio/internal/controller"
	"github.com/curio-app/curio/internal/models"
)

func (a *App) ListItems(ctx context.Context) error {
	items, err := a.ctrl.ItemsInCurrentCollection(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items.")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "%s  %-20s [%s]\n", it.ID, it.Name, strings.Join(it.Tags, ", "))
	}
	return nil
}

func (a *App) AddItem(ctx context.Context) error {
	a.ctrl.ToggleNewItemModal()

	name, err := GetSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	tags, err := GetSimpleText(a.reader, "Tags (comma-separated)", a.out)
	if err != nil {
		return err
	}

	a.printResult(a.ctrl.SubmitCreateItem(ctx, map[string]string{
		"name":        name,
		"description": description,
		"tags":        tags,
	}))
	return nil
}

func (a *App) EditItem(ctx context.Context, id string) error {
	item, ok := a.findItem(ctx, id)
	if !ok {
		return nil
	}
	a.ctrl.OpenEditItemModal(*item)

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", item.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = item.Name
	}
	description, err := GetSimpleText(a.reader, fmt.Sprintf("Description [%s]", item.Description), a.out)
	if err != nil {
		return err
	}
	if description == "" {
		description = item.Description
	}
	tags, err := GetSimpleText(a.reader, fmt.Sprintf("Tags [%s]", strings.Join(item.Tags, ", ")), a.out)
	if err != nil {
		return err
	}
	if tags == "" {
		tags = strings.Join(item.Tags, ", ")
	}

	a.printResult(a.ctrl.SubmitEditItem(ctx, map[string]string{
		"name":        name,
		"description": description,
		"tags":        tags,
	}))
	return nil
}

func (a *App) DeleteItem(ctx context.Context, id string) error {
	item, ok := a.findItem(ctx, id)
	if !ok {
		return nil
	}
	a.ctrl.OpenDeleteItemModal(*item)

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete '%s'? (y/n)", item.Name), a.out)
	if err != nil {
		return err
	}
	if answer != "y" {
		a.ctrl.CloseDeleteItemModal()
		return nil
	}

	a.printResult(a.ctrl.ConfirmDeleteItem(ctx))
	return nil
}

func (a *App) SearchItems(ctx context.Context, query string) error {
	a.ctrl.SetItemSearchQuery(query)
	return a.ListItems(ctx)
}

func (a *App) findItem(ctx context.Context, id string) (*models.Item, bool) {
	items, err := a.ctrl.ItemsInCurrentCollection(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil, false
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	a.printResult(controller.Result{Notice: controller.Notice{Level: controller.LevelError, Text: "Item not found."}})
	return nil, false
}
