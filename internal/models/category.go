// Package models defines the records exchanged with the job-board API and
// the validated inputs the client submits to it. The backend owns every
// entity; the client only ever holds cache-lifetime copies.
package models

import "time"

// Category is a job category.
type Category struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryInput creates or fully replaces a category's name.
type CategoryInput struct {
	Name string `json:"name" validate:"required"`
}
