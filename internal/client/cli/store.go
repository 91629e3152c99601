package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/services"
)

func (a *App) CreateStore(ctx context.Context) error {
	var store services.NewStore
	var err error

	if store.StoreName, err = a.ask("Store name"); err != nil {
		return err
	}
	if store.ItemType, err = a.ask("Item type"); err != nil {
		return err
	}
	n, err := a.ask("Number of categories")
	if err != nil {
		return err
	}
	if store.NumCategories, err = strconv.Atoi(n); err != nil {
		return fmt.Errorf("number of categories must be a whole number: %q", n)
	}
	if store.Location, err = a.ask("Location"); err != nil {
		return err
	}

	storeID, err := a.storeService.CreateStore(ctx, store)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Store created, store ID %s\n", storeID)
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	itemType, err := a.ask("Item type")
	if err != nil {
		return err
	}

	if err := a.storeService.AddCategory(ctx, itemType); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Category added.")
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.storeService.Categories(ctx)
	if err != nil {
		return err
	}

	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories yet.")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintf(a.out, "%s  %s\n", c.CategoryID, c.ItemType)
	}
	return nil
}
