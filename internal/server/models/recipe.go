// Package models defines server-side data models persisted in the database.
package models

import "time"

// Recipe is a row of the recipes table.
type Recipe struct {
	ID          int64
	Title       string
	Description string
	// ImageKey is the object-storage key of the picture; empty when there is none.
	ImageKey     string
	Ingredients  string
	Instructions string
	UserEmail    string
	CreatedAt    time.Time
}
