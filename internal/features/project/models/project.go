package models

import "time"

// Project is a read-only summary of a submitted project, owned and mutated by
// the external submission subsystem. This service only reads the fields a
// summary card needs.
type Project struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
