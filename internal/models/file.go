package models

import "time"

// File is a file summary as returned inside repository payloads and by
// GET /repo/recent-files.
type File struct {
	Filename string    `json:"filename"`
	URL      string    `json:"url"`
	AddedAt  time.Time `json:"added_at,omitempty"`
}
