package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/api/presenters"
	"Foodgram-Backend/internal/utils"
	"Foodgram-Backend/pkg/recipe"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	actorID, _ := currentUser(c)
	page, limit := parsePagination(c)
	filter := parseRecipeFilter(c)

	recipes, count, err := h.recipeService.GetRecipes(c.UserContext(), filter, page, limit, actorID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, listResponse(recipes, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	actorID, _ := currentUser(c)

	res, err := h.recipeService.GetRecipeDetail(c.UserContext(), c.Params("id"), actorID)
	if err != nil {
		return handleError(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, utils.TranslateValidation(err))
	}

	res, err := h.recipeService.CreateRecipe(c.UserContext(), *req, userID)
	if err != nil {
		return handleError(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID, role := currentUser(c)
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, utils.TranslateValidation(err))
	}

	res, err := h.recipeService.UpdateRecipe(c.UserContext(), c.Params("id"), *req, userID, role)
	if err != nil {
		return handleError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID, role := currentUser(c)

	if err := h.recipeService.DeleteRecipe(c.UserContext(), c.Params("id"), userID, role); err != nil {
		return handleError(c, domain.MessageFailedDeleteRecipe, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// parseRecipeFilter accepts tags both repeated and comma separated. Boolean
// flags only count when they are exactly "1" or "0".
func parseRecipeFilter(c *fiber.Ctx) domain.RecipeFilter {
	filter := domain.RecipeFilter{AuthorID: c.Query("author")}

	for _, raw := range c.Context().QueryArgs().PeekMulti("tags") {
		for _, slug := range strings.Split(string(raw), ",") {
			if slug = strings.TrimSpace(slug); slug != "" {
				filter.Tags = append(filter.Tags, slug)
			}
		}
	}

	filter.IsFavorited = parseFlag(c.Query("is_favorited"))
	filter.IsInShoppingCart = parseFlag(c.Query("is_in_shopping_cart"))
	return filter
}

func parseFlag(v string) *bool {
	switch v {
	case "1":
		b := true
		return &b
	case "0":
		b := false
		return &b
	default:
		return nil
	}
}
