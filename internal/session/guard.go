package session

import (
	"context"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/credstore"
)

// Screen identifies a navigable destination in the client.
type Screen string

const (
	ScreenLogin        Screen = "login"
	ScreenRegister     Screen = "register"
	ScreenDashboard    Screen = "dashboard"
	ScreenChat         Screen = "chat"
	ScreenRepositories Screen = "repositories"
)

// Protected reports whether a destination requires a stored session token.
func (s Screen) Protected() bool {
	switch s {
	case ScreenDashboard, ScreenChat, ScreenRepositories:
		return true
	}
	return false
}

// Guard substitutes the login screen for protected destinations when no
// session token is stored. Presence of a token is the only check performed:
// expiry and validity are the backend's problem, and an invalid stored token
// simply yields rejected API calls. A known limitation, kept deliberately.
type Guard struct {
	store credstore.Store
}

func NewGuard(store credstore.Store) *Guard {
	return &Guard{store: store}
}

// Resolve returns dest when it may render, or the login screen in its place.
// The substitution is immediate and synchronous; no redirect round-trip.
func (g *Guard) Resolve(ctx context.Context, dest Screen) Screen {
	if !dest.Protected() {
		return dest
	}

	token, err := g.store.Get(ctx)
	if err != nil || token == "" {
		return ScreenLogin
	}
	return dest
}
