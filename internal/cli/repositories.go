package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/api"
)

// renderRepositories draws the pinned repository list. The list is fetched
// fresh on every render; the ordinals shown are what "unpin <n>" resolves
// against.
func (a *App) renderRepositories(ctx context.Context) {
	fmt.Fprintln(a.out, "== Repositories ==")

	repos, err := a.client.PinnedRepos(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to fetch pinned repositories", "error", err)
		fmt.Fprintln(a.out, "No repositories to show.")
		return
	}

	counts := a.fetchCounts(ctx, repos)
	ids := printRepoList(a, repos, counts)

	if ctx.Err() == nil {
		a.repoIDs = ids
	}
	if len(ids) > 0 {
		fmt.Fprintln(a.out, "Type 'unpin <n>' to remove a repository from the pinned list.")
	}
}

// Unpin removes the n-th listed repository from the pinned list and
// re-renders the current screen from a fresh fetch. Backend rejections
// (repository gone, not pinned) are shown and logged but never fatal.
func (a *App) Unpin(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.repoIDs) {
		fmt.Fprintln(a.out, "Usage: unpin <n> (see the list above)")
		return nil
	}
	id := a.repoIDs[n-1]

	if err := a.client.UnpinRepo(ctx, id); err != nil {
		a.log.Error(ctx, "unpin failed", "repo", id, "error", err)
		if re, ok := api.AsRequestError(err); ok && re.Message != "" {
			fmt.Fprintln(a.out, re.Message)
		} else {
			fmt.Fprintln(a.out, "Could not unpin the repository.")
		}
		return err
	}

	a.render()
	return nil
}
