package cli

import "fmt"

// renderChat draws the chat screen. Messaging is not wired up yet; the
// screen exists so navigation and guarding behave like the rest of the app.
func (a *App) renderChat() {
	fmt.Fprintln(a.out, "== Chat ==")
	fmt.Fprintln(a.out, "Chat is not available yet. Check back soon.")
}
