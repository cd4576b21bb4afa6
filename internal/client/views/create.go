package views

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/services"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/dmitrijs2005/recipebook/internal/logging"
)

// CreateState is the workflow position of a CreateView.
type CreateState int

const (
	StateDrafting CreateState = iota
	// StatePendingAuth: the form was staged and the user sent to log in.
	StatePendingAuth
	// StateRestored: a staged form was loaded back on mount.
	StateRestored
	StateSubmitted
)

func (s CreateState) String() string {
	switch s {
	case StatePendingAuth:
		return "pending-auth"
	case StateRestored:
		return "restored"
	case StateSubmitted:
		return "submitted"
	default:
		return "drafting"
	}
}

// CreateView is the new-recipe form.
type CreateView struct {
	recipes services.RecipeService
	session services.SessionService
	drafts  services.DraftService
	nav     Navigator
	log     logging.Logger

	Title       string
	Description string
	picker      *imagePicker
	state       CreateState

	Err    string
	Notice string
}

func NewCreateView(recipes services.RecipeService, session services.SessionService, drafts services.DraftService, nav Navigator, log logging.Logger) *CreateView {
	return &CreateView{
		recipes: recipes,
		session: session,
		drafts:  drafts,
		nav:     nav,
		log:     log,
		picker:  newImagePicker(),
	}
}

func (v *CreateView) State() CreateState { return v.state }

// Mount starts from an empty form, then restores a staged draft, if any, and
// deletes it from the session store so it is restored only once.
func (v *CreateView) Mount(ctx context.Context) error {
	v.Title, v.Description = "", ""
	v.Err, v.Notice = "", ""
	v.picker.set(nil)
	v.state = StateDrafting

	d, err := v.drafts.Consume(ctx)
	if err != nil {
		v.log.Warn(ctx, "restore draft", "error", err)
		return err
	}
	if d == nil {
		return nil
	}

	v.Title = d.Title
	v.Description = d.Description
	v.picker.set(d.Image)
	v.state = StateRestored
	v.log.Debug(ctx, "draft restored", "title", d.Title)
	return nil
}

// SelectImage starts decoding path in the background.
func (v *CreateView) SelectImage(path string) { v.picker.selectImage(path) }

// AwaitImage waits for the last SelectImage to finish.
func (v *CreateView) AwaitImage(ctx context.Context) error { return v.picker.await(ctx) }

func (v *CreateView) Image() *string { return v.picker.current() }

func (v *CreateView) draft() models.Draft {
	return models.Draft{Title: v.Title, Description: v.Description, Image: v.picker.current()}
}

// Submit saves the form. Without a session the form is staged and the user
// is sent to the login view; nothing is written to the recipe collection.
func (v *CreateView) Submit(ctx context.Context) error {
	v.Err, v.Notice = "", ""
	d := v.draft()

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

	if user == "" {
		if err := v.drafts.Stage(ctx, d); err != nil {
			v.log.Error(ctx, "stage draft", "error", err)
			v.Err = MsgSomethingFailed
			return err
		}
		v.state = StatePendingAuth
		v.nav.Navigate(RouteLogin)
		return nil
	}

	r, err := v.recipes.Add(ctx, user, d)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			v.Err = MsgFillAllFields
		} else {
			v.log.Error(ctx, "add recipe", "error", err)
			v.Err = MsgSomethingFailed
		}
		return err
	}

	v.log.Info(ctx, "recipe added", "id", r.ID, "owner", user)
	v.state = StateSubmitted
	v.Notice = MsgRecipeAdded
	v.nav.Navigate(RouteList)
	return nil
}
