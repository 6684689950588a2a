package models

import "time"

// Repo is a repository summary as returned by GET /repo/pinned.
type Repo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner_id"`
	Members   []string  `json:"members"`
	Files     []File    `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}
