package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/export"
	"github.com/dmitrijs2005/recipebook/internal/client/views"
	"github.com/dmitrijs2005/recipebook/internal/common"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) getStatus() string {
	user, _ := a.sessions.CurrentUser(context.Background())
	s := string(a.Mode())
	if user != "" {
		s = user + " " + s
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) listView(ctx context.Context) (*views.ListView, error) {
	v := views.NewListView(a.recipes, a.sessions, a.router, a.log)
	if err := v.Mount(ctx); err != nil {
		a.println(v.Err)
		return nil, err
	}
	return v, nil
}

// List prints the recipes whose title matches term.
func (a *App) List(ctx context.Context, term string) error {
	a.router.Navigate(views.RouteList)
	v, err := a.listView(ctx)
	if err != nil {
		return err
	}

	v.Search(term)
	if v.Empty() {
		a.println(views.MsgNoRecipes)
		return nil
	}
	for _, row := range v.Rows() {
		a.printRow(row)
	}
	return nil
}

func (a *App) printRow(r views.Row) {
	a.println(fmt.Sprintf("[%d] %s", r.ID, r.Title))
	a.println("    " + r.Description)
	a.println("    Posted by: " + r.PostedBy)
	a.println("    Image: " + describeImage(r.Image))

	links := "    View: " + r.ViewLink
	if r.EditLink != "" {
		links += "  Edit: " + r.EditLink
	}
	if r.CanDelete {
		links += fmt.Sprintf("  Delete: delete %d", r.ID)
	}
	a.println(links)
}

func describeImage(image string) string {
	if rest, ok := strings.CutPrefix(image, "data:"); ok {
		mime, _, _ := strings.Cut(rest, ";")
		return fmt.Sprintf("%s (inline, %d bytes encoded)", mime, len(image))
	}
	return image
}

// Show fetches one recipe from the server.
func (a *App) Show(ctx context.Context, id string) error {
	a.router.Navigate(views.RecipePath(id))

	v := views.NewDetailView(a.api, a.log)
	defer v.Close()

	v.Mount(ctx, id)
	if v.State() == views.DetailLoading {
		a.println(v.Message())
	}
	if err := v.Wait(ctx); err != nil {
		return err
	}

	r := v.Recipe()
	if r == nil {
		a.println(v.Message())
		return common.ErrorNotFound
	}

	a.println(r.Title)
	if r.ImageURL != "" {
		a.println("Image: " + r.ImageURL)
	}
	a.println(r.Description)
	a.println("Ingredients:")
	a.println(r.Ingredients)
	a.println("Instructions:")
	a.println(r.Instructions)
	a.println("Edit: " + v.EditLink())
	return nil
}

// Add runs the new-recipe form. When nobody is logged in the form is kept
// aside and the login prompt follows; after logging in the form comes back.
func (a *App) Add(ctx context.Context) error {
	a.router.Navigate(views.RouteAddRecipe)

	v := views.NewCreateView(a.recipes, a.sessions, a.drafts, a.router, a.log)
	if err := v.Mount(ctx); err != nil {
		a.println("Your unsaved recipe could not be restored.")
	}
	if v.State() == views.StateRestored {
		a.println("Restored your unsaved recipe. Press Enter to keep a value.")
	}

	var err error
	if v.Title, err = GetTextWithDefault(a.reader, "Title", v.Title, a.out); err != nil {
		return err
	}
	if v.Description, err = GetMultilineWithDefault(a.reader, "Description", v.Description, a.out); err != nil {
		return err
	}
	if err := a.pickImage(ctx, v, "Image file (optional)"); err != nil {
		return err
	}

	if err := v.Submit(ctx); err != nil {
		a.println(v.Err)
		return err
	}

	switch v.State() {
	case views.StatePendingAuth:
		a.println("Please log in to save your recipe.")
		return a.Login(ctx)
	case views.StateSubmitted:
		a.println(v.Notice)
	}
	return nil
}

type imageSelector interface {
	SelectImage(path string)
	AwaitImage(ctx context.Context) error
}

func (a *App) pickImage(ctx context.Context, v imageSelector, prompt string) error {
	path, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	v.SelectImage(path)
	if err := v.AwaitImage(ctx); err != nil {
		a.log.Warn(ctx, "image not attached", "path", path, "error", err)
		a.println("Could not attach the image: " + err.Error())
	}
	return nil
}

// Edit changes one of the user's recipes.
func (a *App) Edit(ctx context.Context, id string) error {
	a.router.Navigate(views.EditPath(id))

	v := views.NewEditView(a.recipes, a.sessions, a.router, a.log)
	if err := v.Mount(ctx, id); err != nil {
		a.println(v.Err)
		return err
	}

	var err error
	if v.Title, err = GetTextWithDefault(a.reader, "Title", v.Title, a.out); err != nil {
		return err
	}
	if v.Description, err = GetMultilineWithDefault(a.reader, "Description", v.Description, a.out); err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Image file (Enter keeps the current one, '-' removes it)", a.out)
	if err != nil {
		return err
	}
	switch path {
	case "":
	case "-":
		v.RemoveImage()
	default:
		v.SelectImage(path)
		if err := v.AwaitImage(ctx); err != nil {
			a.println("Could not attach the image: " + err.Error())
		}
	}

	if err := v.Submit(ctx); err != nil {
		a.println(v.Err)
		return err
	}
	a.println(v.Notice)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		a.println("Invalid recipe id: " + id)
		return err
	}

	v, err := a.listView(ctx)
	if err != nil {
		return err
	}
	if err := v.Delete(ctx, n); err != nil {
		a.println(v.Err)
		return err
	}
	a.println("Recipe deleted.")
	return nil
}

// Login stores the entered email as the session identifier. A form kept
// aside by Add is offered again right away.
func (a *App) Login(ctx context.Context) error {
	a.router.Navigate(views.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.sessions.Login(ctx, email); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.println("Please enter your email.")
		} else {
			a.log.Error(ctx, "login", "error", err)
			a.println(views.MsgSomethingFailed)
		}
		return err
	}
	a.log.Info(ctx, "logged in", "user", strings.TrimSpace(email))
	a.println("Logged in as " + strings.TrimSpace(email))

	pending, err := a.drafts.Pending(ctx)
	if err != nil {
		a.log.Warn(ctx, "check draft", "error", err)
		return nil
	}
	if pending {
		return a.Add(ctx)
	}
	a.router.Navigate(views.RouteList)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	v, err := a.listView(ctx)
	if err != nil {
		return err
	}
	if err := v.Logout(ctx); err != nil {
		a.println(v.Err)
		return err
	}
	a.println("Logged out.")
	return nil
}

// Export writes the (filtered) list to path.
func (a *App) Export(ctx context.Context, path, term string) error {
	v, err := a.listView(ctx)
	if err != nil {
		return err
	}

	list := v.Search(term)
	if err := export.Write(path, list); err != nil {
		a.log.Error(ctx, "export", "path", path, "error", err)
		a.println("Export failed: " + err.Error())
		return err
	}
	a.println(fmt.Sprintf("Exported %d %s to %s", len(list), plural(len(list)), path))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "recipe"
	}
	return "recipes"
}
