// Package services holds the server-side use cases of the recipe API.
package services
