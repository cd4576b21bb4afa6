// Package services contains the application services of the recipebook
// client: the recipe collection with its ownership rules, the login session,
// the draft staged while logged out, and image encoding.
package services
