package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgaillard/souschef/internal/domain"
)

func newTestStorage(t *testing.T) *sqliteStorage {
	t.Helper()
	store, err := NewMemory()
	require.NoError(t, err, "NewMemory()")
	t.Cleanup(func() { _ = store.Close() })
	return store.(*sqliteStorage)
}

func testRecipe(t *testing.T, name string) *domain.Recipe {
	t.Helper()
	recipe, err := domain.NewRecipe(name, 4, []domain.Step{
		{Text: "Chop the onions", Technique: "dice"},
		{Text: "Sweat the onions", DurationMinutes: 10},
		{Text: "Simmer the sauce", DurationMinutes: 45},
		{Text: "Season and serve"},
	}, []domain.Ingredient{
		{Name: "onion", Quantity: 2},
		{Name: "olive oil", Quantity: 1.5, Unit: "tbsp"},
		{Name: "thyme", Preparation: "fresh", Optional: true},
	})
	require.NoError(t, err, "NewRecipe()")
	recipe.TotalTimeMinutes = 60
	return recipe
}

func TestNewMemory(t *testing.T) {
	store := newTestStorage(t)
	assert.NotNil(t, store.Recipes())
}

func TestRecipeRepository_SaveAndFind(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	recipe := testRecipe(t, "Tomato Sauce")
	require.NoError(t, repo.Save(ctx, recipe))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, recipe.ID)
		require.NoError(t, err)
		assert.Equal(t, recipe.Name, found.Name)
		assert.Equal(t, 4, found.Servings)
		assert.Equal(t, 60, found.TotalTimeMinutes)
		require.Len(t, found.Steps, 4)
		assert.Equal(t, "Sweat the onions", found.Steps[1].Text)
		assert.Equal(t, 10, found.Steps[1].DurationMinutes)
		assert.Equal(t, "dice", found.Steps[0].Technique)
		require.Len(t, found.Ingredients, 3)
		assert.Equal(t, 1.5, found.Ingredients[1].Quantity)
		assert.Equal(t, "tbsp", found.Ingredients[1].Unit)
		assert.True(t, found.Ingredients[2].Optional)
	})

	t.Run("find by name is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "tomato sauce")
		require.NoError(t, err)
		assert.Equal(t, recipe.ID, found.ID)
	})

	t.Run("find non-existent", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "non-existent-id")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

		_, err = repo.FindByName(ctx, "no such dish")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRecipeRepository_SaveReplacesExisting(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	recipe := testRecipe(t, "Risotto")
	require.NoError(t, repo.Save(ctx, recipe))

	recipe.Name = "Mushroom Risotto"
	recipe.Steps = recipe.Steps[:2]
	recipe.Ingredients = recipe.Ingredients[:1]
	require.NoError(t, repo.Save(ctx, recipe))

	found, err := repo.FindByID(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mushroom Risotto", found.Name)
	assert.Len(t, found.Steps, 2)
	assert.Len(t, found.Ingredients, 1)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "re-saving must not duplicate the recipe")
}

func TestRecipeRepository_FindAll(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	t.Run("empty database", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("ordered by name", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, testRecipe(t, "Shakshuka")))
		require.NoError(t, repo.Save(ctx, testRecipe(t, "Beef Bourguignon")))
		require.NoError(t, repo.Save(ctx, testRecipe(t, "paella")))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Beef Bourguignon", all[0].Name)
		assert.Equal(t, "paella", all[1].Name)
		assert.Equal(t, "Shakshuka", all[2].Name)
	})
}

func TestRecipeRepository_IngredientsIsolatedPerRecipe(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	// Both recipes carry the same ingredient names; each row must still
	// get its own identity.
	first := testRecipe(t, "French Onion Soup")
	second := testRecipe(t, "Onion Tart")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	foundFirst, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	foundSecond, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)

	require.Len(t, foundFirst.Ingredients, 3)
	require.Len(t, foundSecond.Ingredients, 3)
	for i := range foundFirst.Ingredients {
		assert.NotEqual(t, foundFirst.Ingredients[i].ID, foundSecond.Ingredients[i].ID,
			"ingredient %q must not share an ID across recipes", foundFirst.Ingredients[i].Name)
	}
}

func TestRecipeRepository_Search(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	require.NoError(t, repo.Save(ctx, testRecipe(t, "Coq au Vin")))
	require.NoError(t, repo.Save(ctx, testRecipe(t, "Beef Bourguignon")))
	require.NoError(t, repo.Save(ctx, testRecipe(t, "Ratatouille")))

	t.Run("fuzzy match", func(t *testing.T) {
		results, err := repo.Search(ctx, "coq")
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Coq au Vin", results[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		results, err := repo.Search(ctx, "zzzzzz")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestRecipeRepository_Delete(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	repo := store.Recipes()

	recipe := testRecipe(t, "To Delete")
	require.NoError(t, repo.Save(ctx, recipe))

	require.NoError(t, repo.Delete(ctx, recipe.ID))

	_, err := repo.FindByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	t.Run("cascades to children", func(t *testing.T) {
		var count int
		err := store.db.QueryRow(`SELECT COUNT(*) FROM steps`).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "steps should be deleted with their recipe")

		err = store.db.QueryRow(`SELECT COUNT(*) FROM ingredients`).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "ingredients should be deleted with their recipe")
	})

	t.Run("delete non-existent", func(t *testing.T) {
		err := repo.Delete(ctx, "non-existent-id")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}
