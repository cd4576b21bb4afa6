package views

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// EditView changes title, description and image of an owned recipe.
type EditView struct {
	recipes services.RecipeService
	session services.SessionService
	nav     Navigator
	log     logging.Logger

	id          int64
	loaded      bool
	Title       string
	Description string
	picker      *imagePicker

	Err    string
	Notice string
}

func NewEditView(recipes services.RecipeService, session services.SessionService, nav Navigator, log logging.Logger) *EditView {
	return &EditView{recipes: recipes, session: session, nav: nav, log: log, picker: newImagePicker()}
}

// Mount loads the recipe named by the route parameter id.
func (v *EditView) Mount(ctx context.Context, id string) error {
	v.Err, v.Notice, v.loaded = "", "", false

	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		v.Err = MsgRecipeNotFound
		return common.ErrorNotFound
	}

	r, err := v.recipes.Get(ctx, n)
	if err != nil {
		v.Err = MsgRecipeNotFound
		if !errors.Is(err, common.ErrorNotFound) {
			v.log.Error(ctx, "load recipe", "id", n, "error", err)
		}
		return err
	}

	v.id = r.ID
	v.Title = r.Title
	v.Description = r.Description
	v.picker.set(r.Image)
	v.loaded = true
	return nil
}

func (v *EditView) ID() int64 { return v.id }

func (v *EditView) SelectImage(path string) { v.picker.selectImage(path) }

func (v *EditView) AwaitImage(ctx context.Context) error { return v.picker.await(ctx) }

func (v *EditView) Image() *string { return v.picker.current() }

// RemoveImage drops the attached image; the recipe then shows the default.
func (v *EditView) RemoveImage() { v.picker.set(nil) }

func (v *EditView) Submit(ctx context.Context) error {
	v.Err, v.Notice = "", ""
	if !v.loaded {
		v.Err = MsgRecipeNotFound
		return common.ErrorNotFound
	}

	d := models.Draft{Title: v.Title, Description: v.Description, Image: v.picker.current()}
	if !d.Complete() {
		v.Err = MsgFillAllFields
		return common.ErrValidation
	}

	user, err := v.session.CurrentUser(ctx)
	if err != nil {
		v.log.Error(ctx, "load session", "error", err)
		v.Err = MsgSomethingFailed
		return err
	}

	err = v.recipes.Update(ctx, user, v.id, d)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorUnauthorized):
		v.Err = MsgLoginToEdit
		return err
	case errors.Is(err, common.ErrForbidden):
		v.Err = MsgNotOwner
		return err
	case errors.Is(err, common.ErrorNotFound):
		v.Err = MsgRecipeNotFound
		return err
	default:
		v.log.Error(ctx, "update recipe", "id", v.id, "error", err)
		v.Err = MsgSomethingFailed
		return err
	}

	v.log.Info(ctx, "recipe updated", "id", v.id)
	v.Notice = MsgRecipeUpdated
	v.nav.Navigate(RouteList)
	return nil
}
