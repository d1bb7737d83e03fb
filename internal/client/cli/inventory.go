package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/astroerik-coder/agrostock/internal/client/models"
	"github.com/astroerik-coder/agrostock/internal/common"
)

// Categories prints the inventory categories, numbered for selection.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.loadCategories(ctx)
	if err != nil {
		return err
	}
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c)
	}
	return nil
}

// List prompts for a category and prints its items.
func (a *App) List(ctx context.Context) error {
	category, err := a.chooseCategory(ctx)
	if err != nil {
		return err
	}

	tctx, cancel := a.withTimeout(ctx)
	defer cancel()

	items, err := a.inventoryService.LoadCategory(tctx, category)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s:\n", category)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "  (sin elementos)")
		return nil
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "  %s\n", it)
	}
	return nil
}

// AddItem prompts for a category and the new item's fields, then appends it.
func (a *App) AddItem(ctx context.Context) error {
	category, err := a.chooseCategory(ctx)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		return err
	}
	rawAmount, err := getSimpleText(a.reader, "Cantidad", a.out)
	if err != nil {
		return err
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return common.Validation("amount", "Cantidad inválida")
	}
	unit, err := getSimpleText(a.reader, "Unidad (kg, L, unidades...)", a.out)
	if err != nil {
		return err
	}
	rawStatus, err := getSimpleText(a.reader, "Estado: "+numbered(models.KnownStatuses)+" u otro", a.out)
	if err != nil {
		return err
	}

	in := models.NewItem{
		Name:   name,
		Amount: amount,
		Unit:   unit,
		Status: pickOption(rawStatus, models.KnownStatuses),
	}

	tctx, cancel := a.withTimeout(ctx)
	defer cancel()

	item, err := a.inventoryService.AddItem(tctx, category, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Añadido a %s: %s\n", category, item)
	return nil
}

func (a *App) loadCategories(ctx context.Context) ([]string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.inventoryService.Categories(ctx)
}

// chooseCategory prints the categories and reads a choice by number or name.
func (a *App) chooseCategory(ctx context.Context) (string, error) {
	categories, err := a.loadCategories(ctx)
	if err != nil {
		return "", err
	}
	input, err := getSimpleText(a.reader, "Categoría: "+numbered(categories), a.out)
	if err != nil {
		return "", err
	}
	return pickOption(input, categories), nil
}

func numbered(options []string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprintf("%d) %s", i+1, o)
	}
	return strings.Join(parts, ", ")
}
