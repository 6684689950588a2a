// Package session owns the client-side authentication lifecycle: the
// login/register/logout state machine and the protected-navigation guard.
package session

import (
	"context"
	"sync"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/api"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/common"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/credstore"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/logging"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/models"
)

// State is the session controller's lifecycle state.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateLoggingOut     State = "logging_out"
)

// Navigator is how the controller drives the view layer to a new screen.
type Navigator interface {
	NavigateTo(screen Screen)
}

// RegistrationData is the transient, client-only registration form. Password
// and ConfirmPassword must match before any request is attempted; this is
// the only client-side validation rule.
type RegistrationData struct {
	FirstName       string
	LastName        string
	Username        string
	Email           string
	Password        string
	ConfirmPassword string

	ProfilePicture *api.Attachment
}

// Controller orchestrates login, registration, and logout. All collaborators
// are injected so tests can run against fakes; there is no ambient session
// state anywhere else.
type Controller struct {
	client api.Client
	store  credstore.Store
	nav    Navigator
	log    logging.Logger

	mu    sync.Mutex
	state State
}

func NewController(client api.Client, store credstore.Store, nav Navigator, log logging.Logger) *Controller {
	return &Controller{
		client: client,
		store:  store,
		nav:    nav,
		log:    log,
		state:  StateAnonymous,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Resume restores the session from a token persisted by an earlier run.
// No backend round-trip happens: a stored token is trusted until an
// authenticated call fails.
func (c *Controller) Resume(ctx context.Context) State {
	token, err := c.store.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential store read failed on resume", "error", err)
	}
	if token != "" {
		c.setState(StateAuthenticated)
	}
	return c.State()
}

// Login authenticates against the backend. On success the token is persisted
// and navigation moves to the dashboard. On failure the store is untouched,
// the controller returns to Anonymous, and the caller gets the fixed
// invalid-credentials message regardless of backend detail text.
func (c *Controller) Login(ctx context.Context, identifier string, password []byte) error {
	c.setState(StateAuthenticating)

	token, err := c.client.Login(ctx, identifier, string(password))
	if err != nil {
		c.setState(StateAnonymous)
		c.log.Warn(ctx, "login rejected", "identifier", identifier, "error", err)
		return common.ErrInvalidCredentials
	}

	if err := c.store.Set(ctx, token); err != nil {
		c.setState(StateAnonymous)
		return err
	}

	c.setState(StateAuthenticated)
	c.nav.NavigateTo(ScreenDashboard)
	return nil
}

// Register creates a new account. A password/confirmation mismatch fails
// locally and never reaches the API client. Success does not authenticate:
// navigation returns to the login screen and the backend's message is
// surfaced there. Failure keeps the user on the registration form.
func (c *Controller) Register(ctx context.Context, data RegistrationData) (string, error) {
	if data.Password != data.ConfirmPassword {
		return "", common.ErrPasswordMismatch
	}

	c.setState(StateAuthenticating)

	msg, err := c.client.Register(ctx, api.RegistrationForm{
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Username:       data.Username,
		Email:          data.Email,
		Password:       data.Password,
		ProfilePicture: data.ProfilePicture,
	})

	c.setState(StateAnonymous)

	if err != nil {
		c.log.Warn(ctx, "registration rejected", "username", data.Username, "error", err)
		return "", common.ErrRegistrationFailed
	}

	c.nav.NavigateTo(ScreenLogin)
	return msg, nil
}

// Logout asks confirm before doing anything; a declined prompt changes no
// state at all. Once confirmed, the backend logout is attempted but its
// failure is only logged: the local credential store is cleared
// unconditionally and navigation returns to the login screen. Local state is
// authoritative for client behavior.
func (c *Controller) Logout(ctx context.Context, confirm func() bool) error {
	if !confirm() {
		return nil
	}

	c.setState(StateLoggingOut)

	if err := c.client.Logout(ctx); err != nil {
		c.log.Error(ctx, "backend logout failed, clearing local session anyway", "error", err)
	}

	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential store", "error", err)
	}

	c.setState(StateAnonymous)
	c.nav.NavigateTo(ScreenLogin)
	return nil
}

// CurrentUser fetches the profile for the active session. The result is
// never cached; consuming screens re-fetch on every render.
func (c *Controller) CurrentUser(ctx context.Context) (*models.User, error) {
	return c.client.CurrentUser(ctx)
}
