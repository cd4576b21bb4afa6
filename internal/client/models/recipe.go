// Package models defines the client-side recipe data shapes. The JSON tags
// are the persisted format of the key-value stores and must not change.
package models

import "strings"

// DefaultImage is shown for recipes stored without an image.
const DefaultImage = "/default-image.jpg"

// Recipe is one record of the durable recipe collection.
type Recipe struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	UserEmail   string  `json:"userEmail"`
}

// ImageOrDefault returns the data URI, or DefaultImage when none is attached.
func (r Recipe) ImageOrDefault() string {
	if r.Image == nil || *r.Image == "" {
		return DefaultImage
	}
	return *r.Image
}

// OwnedBy reports whether session owns the record. An empty session owns nothing.
func (r Recipe) OwnedBy(session string) bool {
	return session != "" && session == r.UserEmail
}

// Draft is a recipe form that was submitted while logged out and is waiting
// for the user to come back from the login view.
type Draft struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

// Complete reports whether the required fields are filled.
func (d Draft) Complete() bool {
	return strings.TrimSpace(d.Title) != "" && strings.TrimSpace(d.Description) != ""
}

// RemoteRecipe is the payload of GET /api/recipes/{id}.
type RemoteRecipe struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// StringPtr returns nil for an empty string so it encodes as JSON null.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
