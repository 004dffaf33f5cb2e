package shopping

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderShoppingList(t *testing.T) {
	assert.Equal(t, "", RenderShoppingList(nil))
	assert.Equal(t, "flour: 300 g\nmilk: 1 l\n", RenderShoppingList([]domain.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", TotalAmount: 300},
		{Name: "milk", MeasurementUnit: "l", TotalAmount: 1},
	}))
}

func TestShoppingService_DownloadShoppingList(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewShoppingService(NewShoppingRepository(db))
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "author")
	shopper := testutil.CreateUser(t, db, "shopper")
	sugar := testutil.CreateIngredient(t, db, "sugar", "g")
	sugarUpper := testutil.CreateIngredient(t, db, "sugar", "G")
	eggs := testutil.CreateIngredient(t, db, "eggs", "pcs")

	a := testutil.CreateRecipe(t, db, author, "A", nil, testutil.LineItem{Ingredient: sugar, Amount: 2})
	b := testutil.CreateRecipe(t, db, author, "B", nil,
		testutil.LineItem{Ingredient: sugar, Amount: 3},
		testutil.LineItem{Ingredient: eggs, Amount: 4},
	)
	c := testutil.CreateRecipe(t, db, author, "C", nil, testutil.LineItem{Ingredient: sugarUpper, Amount: 7})
	notInCart := testutil.CreateRecipe(t, db, author, "D", nil, testutil.LineItem{Ingredient: sugar, Amount: 100})

	t.Run("empty cart", func(t *testing.T) {
		list, err := svc.DownloadShoppingList(ctx, shopper.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "", list)
	})

	for _, r := range []*entities.Recipe{a, b, c} {
		require.NoError(t, db.Create(&entities.ShoppingCart{UserID: shopper.ID, RecipeID: r.ID}).Error)
	}
	require.NoError(t, db.Create(&entities.ShoppingCart{UserID: author.ID, RecipeID: notInCart.ID}).Error)

	t.Run("sums per name and unit", func(t *testing.T) {
		list, err := svc.DownloadShoppingList(ctx, shopper.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "eggs: 4 pcs\nsugar: 7 G\nsugar: 5 g\n", list)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := svc.DownloadShoppingList(ctx, shopper.ID.String())
		require.NoError(t, err)
		second, err := svc.DownloadShoppingList(ctx, shopper.ID.String())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
