package views

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/common"
	"github.com/stretchr/testify/require"
)

func TestListView_EmptyCollection(t *testing.T) {
	e := newEnv(t)
	v := NewListView(e.recipes, e.sessions, e.router, e.log)

	require.NoError(t, v.Mount(context.Background()))
	require.True(t, v.Empty())
	require.Empty(t, v.Rows())
	require.Empty(t, v.Err)
}

func TestListView_SearchDoesNotTouchStore(t *testing.T) {
	e := newEnv(t)
	e.seed(t, "a@b.com", "Tomato Soup")
	e.seed(t, "a@b.com", "Pasta")
	e.seed(t, "a@b.com", "Chicken soup")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))
	before := e.stored(t)

	got := v.Search("soup")
	require.Len(t, got, 2)
	require.Equal(t, "Tomato Soup", got[0].Title)
	require.Equal(t, "Chicken soup", got[1].Title)

	require.Len(t, v.Search(""), 3)
	require.Equal(t, before, e.stored(t))

	v.Search("cake")
	require.True(t, v.Empty())
}

func TestListView_RowsShowControlsOnlyToOwner(t *testing.T) {
	e := newEnv(t)
	img := "data:image/png;base64,AA=="
	mine, err := e.repo.Append(context.Background(), models.Recipe{Title: "Mine", Description: "d", Image: &img, UserEmail: "a@b.com"})
	require.NoError(t, err)
	theirs := e.seed(t, "c@d.com", "Theirs")
	e.login(t, "a@b.com")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))
	rows := v.Rows()
	require.Len(t, rows, 2)

	require.Equal(t, mine.ID, rows[0].ID)
	require.True(t, rows[0].CanDelete)
	require.NotEmpty(t, rows[0].EditLink)
	require.Equal(t, img, rows[0].Image)
	require.Equal(t, "a@b.com", rows[0].PostedBy)

	require.Equal(t, theirs.ID, rows[1].ID)
	require.False(t, rows[1].CanDelete)
	require.Empty(t, rows[1].EditLink)
	require.NotEmpty(t, rows[1].ViewLink)
	require.Equal(t, models.DefaultImage, rows[1].Image)
}

func TestListView_DeleteWithoutSession(t *testing.T) {
	e := newEnv(t)
	r := e.seed(t, "a@b.com", "Soup")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))

	err := v.Delete(context.Background(), r.ID)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	require.Equal(t, MsgLoginToDelete, v.Err)
	require.Len(t, e.stored(t), 1)
	require.Len(t, v.Visible(), 1)
}

func TestListView_DeleteMissingIDIsIdempotent(t *testing.T) {
	e := newEnv(t)
	r := e.seed(t, "a@b.com", "Soup")
	e.login(t, "a@b.com")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))
	before := e.stored(t)

	require.NoError(t, v.Delete(context.Background(), r.ID+1))
	require.Equal(t, before, e.stored(t))
	require.Len(t, v.Visible(), 1)
}

func TestListView_DeleteByOwnerAndByOther(t *testing.T) {
	e := newEnv(t)
	mine := e.seed(t, "a@b.com", "Mine")
	theirs := e.seed(t, "c@d.com", "Theirs")
	e.login(t, "a@b.com")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))

	require.ErrorIs(t, v.Delete(context.Background(), theirs.ID), common.ErrForbidden)
	require.Equal(t, MsgNotOwner, v.Err)
	require.Len(t, e.stored(t), 2)

	require.NoError(t, v.Delete(context.Background(), mine.ID))
	require.Empty(t, v.Err)
	require.Equal(t, []models.Recipe{theirs}, e.stored(t))
	require.Equal(t, []models.Recipe{theirs}, v.Visible())
}

func TestListView_Logout(t *testing.T) {
	e := newEnv(t)
	e.login(t, "a@b.com")

	v := NewListView(e.recipes, e.sessions, e.router, e.log)
	require.NoError(t, v.Mount(context.Background()))
	require.Equal(t, "a@b.com", v.User())

	require.NoError(t, v.Logout(context.Background()))
	require.Empty(t, v.User())
	require.Equal(t, RouteLogin, e.router.Current())

	user, err := e.sessions.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Empty(t, user)
}
