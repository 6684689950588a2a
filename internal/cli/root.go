package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/session"
)

func (a *App) getStatus() string {
	if a.screen == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.screen)
}

// Run starts the read–eval–print loop.
//
// A session persisted by an earlier run is resumed first, then navigation
// heads for the dashboard; without a stored token the guard lands on the
// login screen instead. The loop exits on EOF or when the user types "exit"
// or "quit".
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to EduHub (type 'help' for commands)")

	a.session.Resume(ctx)
	a.NavigateTo(session.ScreenDashboard)

	for {
		fmt.Fprintf(a.out, "eduhub %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: dashboard, repos, chat, unpin <n>, refresh, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "dashboard", "home":
			a.NavigateTo(session.ScreenDashboard)

		case "chat":
			a.NavigateTo(session.ScreenChat)

		case "repos", "repositories":
			a.NavigateTo(session.ScreenRepositories)

		case "refresh":
			a.render()

		case "unpin":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: unpin <n>")
				continue
			}
			_ = a.Unpin(a.screenCtx, args[0])

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			// EOF after a final line without trailing newline
			return
		}
	}
}
