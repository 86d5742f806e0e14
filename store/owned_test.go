package store

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"platewise/recipe-api/db"
	"platewise/recipe-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"

	d, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(d))

	return d
}

func TestCreateAndListScopedToOwner(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.Favorite](d, "")

	require.NoError(t, s.Create(&model.Favorite{UserID: "ann", RecipeID: "1", Title: "Soup"}))
	require.NoError(t, s.Create(&model.Favorite{UserID: "ann", RecipeID: "2", Title: "Stew"}))
	require.NoError(t, s.Create(&model.Favorite{UserID: "bob", RecipeID: "1", Title: "Soup"}))

	ann, err := s.ListForOwner("ann")
	require.NoError(t, err)
	assert.Len(t, ann, 2)

	bob, err := s.ListForOwner("bob")
	require.NoError(t, err)
	assert.Len(t, bob, 1)

	empty, err := s.ListForOwner("nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCreateDuplicateRejected(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.Favorite](d, "")

	require.NoError(t, s.Create(&model.Favorite{UserID: "ann", RecipeID: "1", Title: "Soup"}))

	err := s.Create(&model.Favorite{UserID: "ann", RecipeID: "1", Title: "Soup again"})
	assert.ErrorIs(t, err, ErrDuplicate)

	list, err := s.ListForOwner("ann")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteByIDOwnership(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.Favorite](d, "")

	fav := model.Favorite{UserID: "ann", RecipeID: "1", Title: "Soup"}
	require.NoError(t, s.Create(&fav))

	id := strconv.FormatUint(uint64(fav.ID), 10)

	// Someone else's delete must look like the record doesn't exist
	assert.ErrorIs(t, s.DeleteByID("bob", id), ErrNotFound)

	list, err := s.ListForOwner("ann")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteByID("ann", id))
	assert.ErrorIs(t, s.DeleteByID("ann", id), ErrNotFound)
}

func TestDeleteByIDNonNumeric(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.Favorite](d, "")

	fav := model.Favorite{UserID: "ann", RecipeID: "1", Title: "Soup"}
	require.NoError(t, s.Create(&fav))

	// Ids that can't be a primary key must behave like missing records,
	// not like query errors
	assert.ErrorIs(t, s.DeleteByID("ann", "abc"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteByID("ann", ""), ErrNotFound)
	assert.ErrorIs(t, s.DeleteByID("ann", "-1"), ErrNotFound)

	list, err := s.ListForOwner("ann")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListOrdering(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.ViewedRecipe](d, "viewed_at desc")

	now := time.Now()
	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, s.Create(&model.ViewedRecipe{
			UserID:   "ann",
			RecipeID: title,
			Title:    title,
			ViewedAt: now.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, err := s.ListForOwner("ann")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Title)
	assert.Equal(t, "first", list[2].Title)
}

func TestDeleteAllForOwner(t *testing.T) {
	d := newTestDB(t)
	s := NewOwned[model.ViewedRecipe](d, "viewed_at desc")

	require.NoError(t, s.Create(&model.ViewedRecipe{UserID: "ann", RecipeID: "1", Title: "A", ViewedAt: time.Now()}))
	require.NoError(t, s.Create(&model.ViewedRecipe{UserID: "bob", RecipeID: "1", Title: "B", ViewedAt: time.Now()}))

	require.NoError(t, s.DeleteAllForOwner("ann"))

	ann, err := s.ListForOwner("ann")
	require.NoError(t, err)
	assert.Empty(t, ann)

	bob, err := s.ListForOwner("bob")
	require.NoError(t, err)
	assert.Len(t, bob, 1)

	// Deleting an already empty collection still succeeds
	require.NoError(t, s.DeleteAllForOwner("ann"))
}
