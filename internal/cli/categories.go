package cli

import (
	"context"
	"fmt"

	"github.com/jobport/adminctl/internal/models"
	"github.com/jobport/adminctl/internal/session"
)

func (a *App) Categories(ctx context.Context) error {
	if !a.navigate(session.RouteCategories) {
		return nil
	}
	categories, err := a.categories.List(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	renderCategoryTable(a.out, categories)
	return nil
}

func (a *App) Category(ctx context.Context, id string) error {
	if !a.navigate(session.RouteCategories) {
		return nil
	}
	c, err := a.categories.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "%s (%s), created %s\n", c.Name, c.ID, c.CreatedAt.Format(dateLayout))
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if !a.navigate(session.RouteCategories) {
		return nil
	}
	name, err := getLine(a.reader, "Name", a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	c, err := a.categories.Create(ctx, models.CategoryInput{Name: name})
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Created category %s (%s)\n", c.Name, c.ID)
	return nil
}

func (a *App) EditCategory(ctx context.Context, id string) error {
	if !a.navigate(session.RouteCategories) {
		return nil
	}
	current, err := a.categories.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, err)
	}
	name, err := promptDefault(a.reader, "Name", current.Name, a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	c, err := a.categories.Update(ctx, id, models.CategoryInput{Name: name})
	if err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Updated category %s\n", c.ID)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, id string) error {
	if !a.navigate(session.RouteCategories) {
		return nil
	}
	ok, err := promptBool(a.reader, fmt.Sprintf("Delete category %s?", id), false, a.out)
	if err != nil {
		return a.fail(ctx, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := a.categories.Delete(ctx, id); err != nil {
		return a.fail(ctx, err)
	}
	fmt.Fprintf(a.out, "Deleted category %s\n", id)
	return nil
}
