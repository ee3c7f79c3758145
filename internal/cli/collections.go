package cli

import (
	"context"
	"fmt"

	"github.com/curio-app/curio/internal/controller"
	"github.com/curio-app/curio/internal/models"
)

func (a *App) ListCollections(ctx context.Context) error {
	cols, err := a.ctrl.FilteredCollections(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}
	if len(cols) == 0 {
		fmt.Fprintln(a.out, "No collections.")
		return nil
	}
	for _, c := range cols {
		fmt.Fprintf(a.out, "%s  %-20s [%s]  %d items\n", c.ID, c.Name, c.Color, c.ItemCount)
	}
	return nil
}

func (a *App) NewCollection(ctx context.Context) error {
	a.ctrl.ToggleNewCollectionModal()

	name, err := GetSimpleText(a.reader, "Collection name", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}
	color, err := GetSimpleText(a.reader, fmt.Sprintf("Color %v", models.PresetColors), a.out)
	if err != nil {
		return err
	}
	if color != "" {
		a.ctrl.SetNewCollectionColor(models.Color(color))
	}

	a.printResult(a.ctrl.SubmitCreateCollection(ctx, map[string]string{
		"name":        name,
		"description": description,
	}))
	return nil
}

func (a *App) EditCollection(ctx context.Context, id string) error {
	col, ok := a.findCollection(ctx, id)
	if !ok {
		return nil
	}
	a.ctrl.OpenEditCollectionModal(*col)
	form := a.ctrl.Form()

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]", form.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = form.Name
	}
	description, err := GetSimpleText(a.reader, fmt.Sprintf("Description [%s]", form.Description), a.out)
	if err != nil {
		return err
	}
	if description == "" {
		description = form.Description
	}
	color, err := GetSimpleText(a.reader, fmt.Sprintf("Color [%s]", form.Color), a.out)
	if err != nil {
		return err
	}
	if color != "" {
		a.ctrl.SetNewCollectionColor(models.Color(color))
	}

	a.printResult(a.ctrl.SubmitEditCollection(ctx, map[string]string{
		"name":        name,
		"description": description,
	}))
	return nil
}

func (a *App) DeleteCollection(ctx context.Context, id string) error {
	col, ok := a.findCollection(ctx, id)
	if !ok {
		return nil
	}
	a.ctrl.OpenDeleteCollectionModal(*col)

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete '%s' and all its items? (y/n)", col.Name), a.out)
	if err != nil {
		return err
	}
	if answer != "y" {
		a.ctrl.CloseDeleteCollectionModal()
		return nil
	}

	a.printResult(a.ctrl.ConfirmDeleteCollection(ctx))
	return nil
}

func (a *App) OpenCollection(ctx context.Context, id string) error {
	a.printResult(a.ctrl.OpenCollection(ctx, id))
	if col := a.ctrl.CurrentCollection(); col != nil {
		fmt.Fprintf(a.out, "Viewing '%s' (%d items)\n", col.Name, col.ItemCount)
	}
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	a.ctrl.SetSearchQuery(query)
	return a.ListCollections(ctx)
}

func (a *App) Back(ctx context.Context) error {
	a.printResult(a.ctrl.VisitHome(ctx))
	return nil
}

// findCollection resolves an id against the user's collections, printing a
// notice on a miss so commands can simply bail out.
func (a *App) findCollection(ctx context.Context, id string) (*models.Collection, bool) {
	cols, err := a.ctrl.Collections(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil, false
	}
	for i := range cols {
		if cols[i].ID == id {
			return &cols[i], true
		}
	}
	a.printResult(controller.Result{Notice: controller.Notice{Level: controller.LevelError, Text: "Collection not found."}})
	return nil, false
}
