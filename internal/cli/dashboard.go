package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/models"
)

// renderDashboard draws the landing screen: a greeting for the current user,
// the pinned repositories with their document counts, and the recently added
// files. The three top-level fetches run concurrently and independently; a
// failed section is logged and rendered empty, never fatal. Results arriving
// after the screen was left are dropped, not applied.
func (a *App) renderDashboard(ctx context.Context) {
	fmt.Fprintln(a.out, "== Dashboard ==")

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		user  *models.User
		repos []models.Repo
		files []models.File
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		u, err := a.client.CurrentUser(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			a.log.Error(ctx, "failed to fetch current user", "error", err)
			return
		}
		mu.Lock()
		user = u
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		r, err := a.client.PinnedRepos(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			a.log.Error(ctx, "failed to fetch pinned repositories", "error", err)
			return
		}
		mu.Lock()
		repos = r
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		f, err := a.client.RecentFiles(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			a.log.Error(ctx, "failed to fetch recent files", "error", err)
			return
		}
		mu.Lock()
		files = f
		mu.Unlock()
	}()
	wg.Wait()

	counts := a.fetchCounts(ctx, repos)

	if user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s (@%s)\n", user.DisplayName(), user.Username)
	}

	fmt.Fprintln(a.out, "Pinned repositories:")
	ids := printRepoList(a, repos, counts)

	fmt.Fprintln(a.out, "Recent files:")
	if len(files) == 0 {
		fmt.Fprintln(a.out, "  (none)")
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "  %s  %s\n", f.Filename, f.URL)
	}

	if ctx.Err() == nil {
		a.repoIDs = ids
	}
}

// fetchCounts loads document counts for each repository concurrently.
// Failed lookups are logged and simply missing from the result.
func (a *App) fetchCounts(ctx context.Context, repos []models.Repo) map[string]int {
	var mu sync.Mutex
	var wg sync.WaitGroup
	counts := make(map[string]int, len(repos))

	for _, r := range repos {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			n, err := a.client.DocumentCount(ctx, id)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				a.log.Error(ctx, "failed to fetch document count", "repo", id, "error", err)
				return
			}
			mu.Lock()
			counts[id] = n
			mu.Unlock()
		}(r.ID)
	}
	wg.Wait()
	return counts
}

func printRepoList(a *App, repos []models.Repo, counts map[string]int) []string {
	if len(repos) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return nil
	}

	ids := make([]string, 0, len(repos))
	for i, r := range repos {
		ids = append(ids, r.ID)
		if n, ok := counts[r.ID]; ok {
			fmt.Fprintf(a.out, "  %d. %s (%d documents)\n", i+1, r.Name, n)
		} else {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, r.Name)
		}
	}
	return ids
}
