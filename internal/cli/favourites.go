package cli

import (
	"context"
	"fmt"

	"github.com/jobport/adminctl/internal/session"
)

// Favourites shows the saved jobs. The endpoint returns the jobs embedded
// when the backend expands them; otherwise only the ids are known.
func (a *App) Favourites(ctx context.Context) error {
	if !a.navigate(session.RouteFavourites) {
		return nil
	}
	u, err := a.users.Favourites(ctx)
	if err != nil {
		return a.fail(ctx, err)
	}
	if u.Favourites.Len() == 0 {
		fmt.Fprintln(a.out, "No favourites yet")
		return nil
	}
	if jobs := u.Favourites.Jobs(); len(jobs) > 0 {
		favs := map[string]bool{}
		for _, id := range u.Favourites.IDs() {
			favs[id] = true
		}
		renderJobTable(a.out, jobs, favs)
		return nil
	}
	for _, id := range u.Favourites.IDs() {
		fmt.Fprintln(a.out, id)
	}
	return nil
}

func (a *App) ToggleFavourite(ctx context.Context, jobID string) error {
	if !a.navigate(session.RouteFavourites) {
		return nil
	}
	if err := a.users.ToggleFavourite(ctx, jobID); err != nil {
		return a.fail(ctx, err)
	}
	saved, err := a.users.IsFavourite(ctx, jobID)
	if err != nil {
		return a.fail(ctx, err)
	}
	if saved {
		fmt.Fprintf(a.out, "Added %s to favourites\n", jobID)
	} else {
		fmt.Fprintf(a.out, "Removed %s from favourites\n", jobID)
	}
	return nil
}
