// Package api implements the EduHub backend HTTP client. One method per
// backend capability; the stored session token is attached as a bearer
// credential on every call except Login and Register.
package api

import (
	"context"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/models"
)

// Client is the surface consumed by the session controller and the screens.
type Client interface {
	// Login exchanges an identifier (email or username) and password for a
	// session token. The token is returned, not stored.
	Login(ctx context.Context, identifier, password string) (string, error)

	// Register creates a new account and returns the backend's success
	// message. It never authenticates the new user.
	Register(ctx context.Context, form RegistrationForm) (string, error)

	// Logout invalidates the session on the backend. Local state is not
	// touched here; that is the session controller's job.
	Logout(ctx context.Context) error

	// CurrentUser fetches the profile of the logged-in user.
	CurrentUser(ctx context.Context) (*models.User, error)

	// PinnedRepos lists the user's pinned repositories.
	PinnedRepos(ctx context.Context) ([]models.Repo, error)

	// DocumentCount returns the number of documents in a repository.
	DocumentCount(ctx context.Context, repoID string) (int, error)

	// RecentFiles lists the most recently added files across the user's
	// repositories.
	RecentFiles(ctx context.Context) ([]models.File, error)

	// UnpinRepo removes a repository from the user's pinned list.
	UnpinRepo(ctx context.Context, repoID string) error

	// Close releases transport resources.
	Close() error
}

// RegistrationForm carries the registration fields. The optional profile
// picture makes the request a multipart upload.
type RegistrationForm struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string

	ProfilePicture *Attachment
}

// Attachment is a binary file part of a multipart request.
type Attachment struct {
	Filename string
	Data     []byte
}
