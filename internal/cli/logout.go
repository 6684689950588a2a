package cli

import (
	"context"
	"fmt"
)

// Logout asks for confirmation before ending the session. Declining leaves
// everything as it was. The confirmation gates only this action; the rest of
// the REPL is untouched by it.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	return a.session.Logout(ctx, func() bool {
		return GetConfirmation(a.reader, "Are you sure you want to log out?", a.out)
	})
}
