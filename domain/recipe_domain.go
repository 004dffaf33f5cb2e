package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")

	ErrNoIngredients        = NewValidationError("a recipe must list at least one ingredient")
	ErrUnknownIngredient    = NewValidationError("you are trying to add a non-existent ingredient to the recipe")
	ErrDuplicateIngredient  = NewValidationError("a recipe cannot list the same ingredient more than once")
	ErrIngredientAmount     = NewValidationError("the amount of every ingredient must be at least 1")
	ErrDuplicateTag         = NewValidationError("a recipe cannot be assigned the same tag more than once")
	ErrUnknownTag           = NewValidationError("you are trying to assign a non-existent tag to the recipe")
	ErrCookingTimeOutOfSpan = NewValidationError("cooking time must be between 1 and 300 minutes")
)

const (
	MinCookingTime = 1
	MaxCookingTime = 300
)

type (
	RecipeIngredientRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount"`
	}

	// RecipeRequest is the payload of both create and update.
	RecipeRequest struct {
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
		Tags        []string                  `json:"tags" validate:"dive,uuid"`
		Image       string                    `json:"image"`
		Name        string                    `json:"name" validate:"required,max=200"`
		Text        string                    `json:"text" validate:"required"`
		CookingTime int                       `json:"cooking_time"`
	}

	// RecipeFilter narrows a recipe listing. Nil booleans are not applied.
	RecipeFilter struct {
		AuthorID         string
		Tags             []string
		IsFavorited      *bool
		IsInShoppingCart *bool
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	Recipe struct {
		ID               string                     `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserResponse               `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
		CreatedAt        time.Time                  `json:"created_at"`
	}

	RecipeMinified struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}
)
