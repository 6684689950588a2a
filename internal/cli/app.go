// Package cli implements the terminal view layer of the EduHub client:
// a REPL whose screens mirror the web application's routes. All
// state-changing actions are delegated to the session controller; screens
// only fetch and render.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/api"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/config"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/credstore"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/logging"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/session"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	client  api.Client
	store   credstore.Store
	session sessionController
	guard   *session.Guard
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer

	// current screen plus its context; navigating away cancels the context
	// so in-flight fetches for the old screen are dropped, not applied
	screen     session.Screen
	screenCtx  context.Context
	screenStop context.CancelFunc

	// repository ids as last rendered, so "unpin <n>" can resolve ordinals;
	// refreshed from the backend on every render, never treated as a cache
	repoIDs []string
}

// sessionController is the slice of session.Controller the screens need.
// Tests substitute a stub.
type sessionController interface {
	State() session.State
	Resume(ctx context.Context) session.State
	Login(ctx context.Context, identifier string, password []byte) error
	Register(ctx context.Context, data session.RegistrationData) (string, error)
	Logout(ctx context.Context, confirm func() bool) error
}

var _ session.Navigator = (*App)(nil)

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credstore.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	store := credstore.NewSQLiteStore(db)
	client := api.NewHTTPClient(cfg.ServerEndpointAddr, store, log)

	a := &App{
		config: cfg,
		log:    log,
		client: client,
		store:  store,
		guard:  session.NewGuard(store),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.session = session.NewController(client, store, a, log)

	return a, nil
}

func (a *App) Close() error {
	if a.screenStop != nil {
		a.screenStop()
	}
	if err := a.client.Close(); err != nil {
		return err
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// NavigateTo routes every screen change through the guard: a protected
// destination without a stored token renders the login screen instead.
func (a *App) NavigateTo(dest session.Screen) {
	dest = a.guard.Resolve(context.Background(), dest)
	a.setScreen(dest)
}

func (a *App) setScreen(s session.Screen) {
	if a.screenStop != nil {
		a.screenStop()
	}
	a.screenCtx, a.screenStop = context.WithCancel(context.Background())
	a.screen = s
	a.render()
}

// render draws the current screen. Protected screens fetch fresh data each
// time; nothing is cached between renders.
func (a *App) render() {
	switch a.screen {
	case session.ScreenDashboard:
		a.renderDashboard(a.screenCtx)
	case session.ScreenRepositories:
		a.renderRepositories(a.screenCtx)
	case session.ScreenChat:
		a.renderChat()
	default:
		a.renderLoginIntro()
	}
}
