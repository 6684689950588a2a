// Package models defines client-side projections of backend payloads.
// The backend owns and validates this data; the client only reads it.
package models

import "time"

// User is the profile object returned by GET /profile/me.
type User struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"firstname"`
	LastName          string    `json:"lastname"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	IsActive          bool      `json:"is_active"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
	PinnedRepos       []string  `json:"pinned_repos"`
}

// DisplayName joins the first and last name for screen headers.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
