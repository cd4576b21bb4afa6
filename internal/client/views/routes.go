package views

import (
	"strings"
	"sync"
)

const (
	RouteList      = "/"
	RouteLogin     = "/login"
	RouteAddRecipe = "/add-recipe"

	recipePrefix = "/recipe/"
	editPrefix   = "/edit-recipe/"
)

// RecipePath is the detail route of a recipe.
func RecipePath(id string) string { return recipePrefix + id }

// EditPath is the edit route of a recipe.
func EditPath(id string) string { return editPrefix + id }

// Route is a parsed navigation target.
type Route struct {
	Name string // one of the Route* constants, RecipePath("") or EditPath("")
	ID   string
}

// ParseRoute splits path into a route name and its id parameter.
func ParseRoute(path string) (Route, bool) {
	switch path {
	case RouteList, RouteLogin, RouteAddRecipe:
		return Route{Name: path}, true
	}
	for _, prefix := range []string{recipePrefix, editPrefix} {
		if id, ok := strings.CutPrefix(path, prefix); ok && id != "" && !strings.Contains(id, "/") {
			return Route{Name: prefix, ID: id}, true
		}
	}
	return Route{}, false
}

type Navigator interface {
	Navigate(route string)
}

// Router records the current route. Safe for concurrent use.
type Router struct {
	mu      sync.Mutex
	current string
	history []string
}

func NewRouter() *Router {
	return &Router{current: RouteList}
}

func (r *Router) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = append(r.history, r.current)
	r.current = route
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Back returns to the previous route, or the list when there is none.
func (r *Router) Back() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n := len(r.history); n > 0 {
		r.current = r.history[n-1]
		r.history = r.history[:n-1]
	} else {
		r.current = RouteList
	}
	return r.current
}
