package views

import (
	"context"
	"errors"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// Row is one rendered list entry. EditLink is empty and CanDelete false
// unless the logged-in user owns the recipe.
type Row struct {
	ID          int64
	Title       string
	Description string
	Image       string
	PostedBy    string
	ViewLink    string
	EditLink    string
	CanDelete   bool
}

// ListView shows the recipe collection with search, delete and logout.
type ListView struct {
	recipes services.RecipeService
	session services.SessionService
	nav     Navigator
	log     logging.Logger

	all  []models.Recipe
	user string
	term string

	Err string
}

func NewListView(recipes services.RecipeService, session services.SessionService, nav Navigator, log logging.Logger) *ListView {
	return &ListView{recipes: recipes, session: session, nav: nav, log: log}
}

// Mount reads the collection and the session once.
func (v *ListView) Mount(ctx context.Context) error {
	v.Err = ""

	list, err := v.recipes.List(ctx)
	if err != nil {
		v.log.Error(ctx, "load recipes", "error", err)
		v.Err = MsgSomethingFailed
		return err
	}

	user, err := v.session.CurrentUser(ctx)
	if err != nil {
		v.log.Error(ctx, "load session", "error", err)
		v.Err = MsgSomethingFailed
		return err
	}

	v.all = list
	v.user = user
	return nil
}

// User is the session identifier read at mount, or "".
func (v *ListView) User() string { return v.user }

// Search narrows the visible recipes by title. It does not touch the store.
func (v *ListView) Search(term string) []models.Recipe {
	v.term = term
	return v.Visible()
}

func (v *ListView) Term() string { return v.term }

func (v *ListView) Visible() []models.Recipe {
	return services.FilterByTitle(v.all, v.term)
}

// Empty reports whether there is nothing to show; render MsgNoRecipes then.
func (v *ListView) Empty() bool {
	return len(v.Visible()) == 0
}

func (v *ListView) Rows() []Row {
	visible := v.Visible()
	rows := make([]Row, 0, len(visible))
	for _, r := range visible {
		id := strconv.FormatInt(r.ID, 10)
		row := Row{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Image:       r.ImageOrDefault(),
			PostedBy:    r.UserEmail,
			ViewLink:    RecipePath(id),
		}
		if r.OwnedBy(v.user) {
			row.EditLink = EditPath(id)
			row.CanDelete = true
		}
		rows = append(rows, row)
	}
	return rows
}

// Delete removes the recipe from the store and from the view. Deleting an id
// that is not listed changes nothing.
func (v *ListView) Delete(ctx context.Context, id int64) error {
	v.Err = ""

	err := v.recipes.Delete(ctx, v.user, id)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorUnauthorized):
		v.Err = MsgLoginToDelete
		return err
	case errors.Is(err, common.ErrForbidden):
		v.Err = MsgNotOwner
		return err
	default:
		v.log.Error(ctx, "delete recipe", "id", id, "error", err)
		v.Err = MsgSomethingFailed
		return err
	}

	v.all = slices.DeleteFunc(v.all, func(r models.Recipe) bool { return r.ID == id })
	v.log.Info(ctx, "recipe deleted", "id", id)
	return nil
}

// Logout clears the session and moves to the login view.
func (v *ListView) Logout(ctx context.Context) error {
	if err := v.session.Logout(ctx); err != nil {
		v.log.Error(ctx, "logout", "error", err)
		v.Err = MsgSomethingFailed
		return err
	}
	v.user = ""
	v.nav.Navigate(RouteLogin)
	return nil
}
