package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/testutil"
	"Foodgram-Backend/pkg/user"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	service RecipeService
	repo    RecipeRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := NewRecipeRepository(db)
	return fixture{
		db:      db,
		service: NewRecipeService(repo, user.NewUserRepository(db)),
		repo:    repo,
	}
}

func boolPtr(b bool) *bool { return &b }

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	sugar := testutil.CreateIngredient(t, f.db, "sugar", "g")
	flour := testutil.CreateIngredient(t, f.db, "flour", "g")
	sweet := testutil.CreateTag(t, f.db, "Sweet", "sweet")
	bake := testutil.CreateTag(t, f.db, "Bake", "bake")

	res, err := f.service.CreateRecipe(ctx, domain.RecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{
			{ID: sugar.ID.String(), Amount: 100},
			{ID: flour.ID.String(), Amount: 300},
		},
		Tags:        []string{sweet.ID.String(), bake.ID.String()},
		Image:       "data:image/png;base64,AAAA",
		Name:        " Pie ",
		Text:        "Mix and bake.",
		CookingTime: 45,
	}, author.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Pie", res.Name)
	assert.Equal(t, "author", res.Author.Username)
	require.Len(t, res.Tags, 2)
	assert.Equal(t, "Bake", res.Tags[0].Name)
	require.Len(t, res.Ingredients, 2)
	assert.Equal(t, "flour", res.Ingredients[0].Name)
	assert.Equal(t, 300, res.Ingredients[0].Amount)
	assert.False(t, res.IsFavorited)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestRecipeService_CreateRecipeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	sugar := testutil.CreateIngredient(t, f.db, "sugar", "g")
	sweet := testutil.CreateTag(t, f.db, "Sweet", "sweet")

	valid := func() domain.RecipeRequest {
		return domain.RecipeRequest{
			Ingredients: []domain.RecipeIngredientRequest{{ID: sugar.ID.String(), Amount: 5}},
			Tags:        []string{sweet.ID.String()},
			Name:        "Syrup",
			Text:        "Boil.",
			CookingTime: 10,
		}
	}

	tests := []struct {
		name   string
		mutate func(r *domain.RecipeRequest)
		want   error
	}{
		{"no ingredients", func(r *domain.RecipeRequest) { r.Ingredients = nil }, domain.ErrNoIngredients},
		{"duplicate ingredient", func(r *domain.RecipeRequest) {
			r.Ingredients = append(r.Ingredients, domain.RecipeIngredientRequest{ID: sugar.ID.String(), Amount: 3})
		}, domain.ErrDuplicateIngredient},
		{"unknown ingredient", func(r *domain.RecipeRequest) {
			r.Ingredients = append(r.Ingredients, domain.RecipeIngredientRequest{ID: uuid.NewString(), Amount: 3})
		}, domain.ErrUnknownIngredient},
		{"zero amount", func(r *domain.RecipeRequest) { r.Ingredients[0].Amount = 0 }, domain.ErrIngredientAmount},
		{"duplicate tag", func(r *domain.RecipeRequest) { r.Tags = append(r.Tags, sweet.ID.String()) }, domain.ErrDuplicateTag},
		{"unknown tag", func(r *domain.RecipeRequest) { r.Tags = append(r.Tags, uuid.NewString()) }, domain.ErrUnknownTag},
		{"cooking time too short", func(r *domain.RecipeRequest) { r.CookingTime = 0 }, domain.ErrCookingTimeOutOfSpan},
		{"cooking time too long", func(r *domain.RecipeRequest) { r.CookingTime = 301 }, domain.ErrCookingTimeOutOfSpan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			_, err := f.service.CreateRecipe(ctx, req, author.ID.String())
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
		})
	}

	assert.Zero(t, countRows(t, f.db, &entities.Recipe{}))
	assert.Zero(t, countRows(t, f.db, &entities.IngredientAmount{}))
}

func TestRecipeRepository_CreateRecipeRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	sugar := testutil.CreateIngredient(t, f.db, "sugar", "g")

	recipe := &entities.Recipe{AuthorID: author.ID, Name: "Broken", Text: "x", CookingTime: 5}
	err := f.repo.CreateRecipe(ctx, recipe, nil, []*entities.IngredientAmount{
		{IngredientID: sugar.ID, Amount: 1},
		{IngredientID: sugar.ID, Amount: 2},
	})
	require.Error(t, err)

	assert.Zero(t, countRows(t, f.db, &entities.Recipe{}))
	assert.Zero(t, countRows(t, f.db, &entities.IngredientAmount{}))
}

func TestRecipeService_UpdateRecipe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	stranger := testutil.CreateUser(t, f.db, "stranger")
	admin := testutil.CreateUser(t, f.db, "admin")
	sugar := testutil.CreateIngredient(t, f.db, "sugar", "g")
	salt := testutil.CreateIngredient(t, f.db, "salt", "g")
	sweet := testutil.CreateTag(t, f.db, "Sweet", "sweet")
	recipe := testutil.CreateRecipe(t, f.db, author, "Syrup", []*entities.Tag{sweet}, testutil.LineItem{Ingredient: sugar, Amount: 5})

	req := domain.RecipeRequest{
		Ingredients: []domain.RecipeIngredientRequest{{ID: salt.ID.String(), Amount: 2}},
		Name:        "Brine",
		Text:        "Dissolve.",
		CookingTime: 3,
	}

	_, err := f.service.UpdateRecipe(ctx, recipe.ID.String(), req, stranger.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	_, err = f.service.UpdateRecipe(ctx, recipe.ID.String(), req, "", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	res, err := f.service.UpdateRecipe(ctx, recipe.ID.String(), req, author.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "Brine", res.Name)
	assert.Empty(t, res.Tags)
	require.Len(t, res.Ingredients, 1)
	assert.Equal(t, "salt", res.Ingredients[0].Name)
	assert.Equal(t, recipe.CreatedAt.Unix(), res.CreatedAt.Unix())

	req.Name = "Admin brine"
	res, err = f.service.UpdateRecipe(ctx, recipe.ID.String(), req, admin.ID.String(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Admin brine", res.Name)

	_, err = f.service.UpdateRecipe(ctx, "nope", req, author.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipeCascades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	reader := testutil.CreateUser(t, f.db, "reader")
	sugar := testutil.CreateIngredient(t, f.db, "sugar", "g")
	sweet := testutil.CreateTag(t, f.db, "Sweet", "sweet")
	recipe := testutil.CreateRecipe(t, f.db, author, "Syrup", []*entities.Tag{sweet}, testutil.LineItem{Ingredient: sugar, Amount: 5})
	require.NoError(t, f.db.Create(&entities.Favourite{UserID: reader.ID, RecipeID: recipe.ID}).Error)
	require.NoError(t, f.db.Create(&entities.ShoppingCart{UserID: reader.ID, RecipeID: recipe.ID}).Error)

	err := f.service.DeleteRecipe(ctx, recipe.ID.String(), reader.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)

	require.NoError(t, f.service.DeleteRecipe(ctx, recipe.ID.String(), author.ID.String(), domain.RoleUser))

	assert.Zero(t, countRows(t, f.db, &entities.Recipe{}))
	assert.Zero(t, countRows(t, f.db, &entities.IngredientAmount{}))
	assert.Zero(t, countRows(t, f.db, &entities.Favourite{}))
	assert.Zero(t, countRows(t, f.db, &entities.ShoppingCart{}))
	assert.EqualValues(t, 1, countRows(t, f.db, &entities.Tag{}))

	_, err = f.service.GetRecipeDetail(ctx, recipe.ID.String(), "")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestRecipeService_GetRecipeDetailFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	author := testutil.CreateUser(t, f.db, "author")
	reader := testutil.CreateUser(t, f.db, "reader")
	recipe := testutil.CreateRecipe(t, f.db, author, "Tea", nil)
	require.NoError(t, f.db.Create(&entities.Favourite{UserID: reader.ID, RecipeID: recipe.ID}).Error)
	require.NoError(t, f.db.Create(&entities.Follow{UserID: reader.ID, AuthorID: author.ID}).Error)

	res, err := f.service.GetRecipeDetail(ctx, recipe.ID.String(), reader.ID.String())
	require.NoError(t, err)
	assert.True(t, res.IsFavorited)
	assert.False(t, res.IsInShoppingCart)
	assert.True(t, res.Author.IsSubscribed)

	res, err = f.service.GetRecipeDetail(ctx, recipe.ID.String(), "")
	require.NoError(t, err)
	assert.False(t, res.IsFavorited)
	assert.False(t, res.Author.IsSubscribed)
}

func names(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func TestRecipeService_GetRecipesFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, f.db, "alice")
	bob := testutil.CreateUser(t, f.db, "bob")
	a := testutil.CreateTag(t, f.db, "Alpha", "a")
	b := testutil.CreateTag(t, f.db, "Beta", "b")
	c := testutil.CreateTag(t, f.db, "Gamma", "c")

	both := testutil.CreateRecipe(t, f.db, alice, "both", []*entities.Tag{a, b})
	onlyA := testutil.CreateRecipe(t, f.db, bob, "onlyA", []*entities.Tag{a})
	onlyC := testutil.CreateRecipe(t, f.db, alice, "onlyC", []*entities.Tag{c})

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, r := range []*entities.Recipe{both, onlyA, onlyC} {
		require.NoError(t, f.db.Exec("UPDATE recipes SET created_at = ? WHERE id = ?",
			base.Add(time.Duration(i)*time.Hour), r.ID).Error)
	}

	require.NoError(t, f.db.Create(&entities.Favourite{UserID: bob.ID, RecipeID: both.ID}).Error)
	require.NoError(t, f.db.Create(&entities.ShoppingCart{UserID: bob.ID, RecipeID: onlyC.ID}).Error)

	t.Run("newest first", func(t *testing.T) {
		res, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, 1, 10, "")
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)
		assert.Equal(t, []string{"onlyC", "onlyA", "both"}, names(res))
	})

	t.Run("tag union is deduplicated", func(t *testing.T) {
		res, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{Tags: []string{"a", "b"}}, 1, 10, "")
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
		assert.Equal(t, []string{"onlyA", "both"}, names(res))
	})

	t.Run("author and tags combine", func(t *testing.T) {
		res, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{AuthorID: alice.ID.String(), Tags: []string{"a", "c"}}, 1, 10, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"onlyC", "both"}, names(res))
	})

	t.Run("malformed author matches nothing", func(t *testing.T) {
		res, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{AuthorID: "alice"}, 1, 10, "")
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, res)
	})

	t.Run("membership ignored for anonymous", func(t *testing.T) {
		res, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: boolPtr(true)}, 1, 10, "")
		require.NoError(t, err)
		assert.Len(t, res, 3)
	})

	t.Run("is_favorited", func(t *testing.T) {
		res, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: boolPtr(true)}, 1, 10, bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"both"}, names(res))
		assert.True(t, res[0].IsFavorited)

		res, _, err = f.service.GetRecipes(ctx, domain.RecipeFilter{IsFavorited: boolPtr(false)}, 1, 10, bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"onlyC", "onlyA"}, names(res))
	})

	t.Run("is_in_shopping_cart", func(t *testing.T) {
		res, _, err := f.service.GetRecipes(ctx, domain.RecipeFilter{IsInShoppingCart: boolPtr(true), Tags: []string{"c"}}, 1, 10, bob.ID.String())
		require.NoError(t, err)
		assert.Equal(t, []string{"onlyC"}, names(res))
		assert.True(t, res[0].IsInShoppingCart)
	})

	t.Run("pagination", func(t *testing.T) {
		res, count, err := f.service.GetRecipes(ctx, domain.RecipeFilter{}, 2, 2, "")
		require.NoError(t, err)
		assert.EqualValues(t, 3, count)
		assert.Equal(t, []string{"both"}, names(res))
	})
}
