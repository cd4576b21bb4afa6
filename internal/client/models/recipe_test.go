package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipe_PersistedShape(t *testing.T) {
	r := Recipe{ID: 1700000000000, Title: "Tacos", Description: "Spicy", UserEmail: "a@b.com"}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1700000000000,"title":"Tacos","description":"Spicy","image":null,"userEmail":"a@b.com"}`, string(b))
}

func TestDraft_PersistedShape(t *testing.T) {
	b, err := json.Marshal(Draft{Title: "Tacos", Description: "Spicy"})
	require.NoError(t, err)
	require.JSONEq(t, `{"title":"Tacos","description":"Spicy","image":null}`, string(b))
}

func TestRecipe_ImageOrDefault(t *testing.T) {
	require.Equal(t, DefaultImage, Recipe{}.ImageOrDefault())
	require.Equal(t, DefaultImage, Recipe{Image: StringPtr("")}.ImageOrDefault())
	require.Equal(t, "data:image/png;base64,AA==", Recipe{Image: StringPtr("data:image/png;base64,AA==")}.ImageOrDefault())
}

func TestRecipe_OwnedBy(t *testing.T) {
	r := Recipe{UserEmail: "a@b.com"}
	require.True(t, r.OwnedBy("a@b.com"))
	require.False(t, r.OwnedBy("c@d.com"))
	require.False(t, r.OwnedBy(""))
	require.False(t, Recipe{}.OwnedBy(""), "anonymous records are owned by nobody")
}

func TestDraft_Complete(t *testing.T) {
	require.True(t, Draft{Title: "a", Description: "b"}.Complete())
	require.False(t, Draft{Title: "", Description: "b"}.Complete())
	require.False(t, Draft{Title: "a", Description: "  "}.Complete())
}
