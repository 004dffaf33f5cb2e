package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/api/presenters"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (string, string) {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return userID, role
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil || limit < 1 {
		limit = domain.DefaultPageSize
	}
	if limit > domain.MaxPageSize {
		limit = domain.MaxPageSize
	}
	return page, limit
}

// parseRecipesLimit reads recipes_limit; zero means no limit.
func parseRecipesLimit(c *fiber.Ctx) int {
	n, err := strconv.Atoi(c.Query("recipes_limit"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func listResponse(results any, page, limit int, total int64) fiber.Map {
	return fiber.Map{
		"results":    results,
		"pagination": domain.NewPagination(page, limit, total),
	}
}

func errorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrIngredientNotFound):
		return fiber.StatusNotFound, true

	case errors.Is(err, domain.ErrUnauthorizedRecipeAccess),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden, true

	case errors.Is(err, domain.ErrValidationFailed),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrRelationExists),
		errors.Is(err, domain.ErrRelationNotFound),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrTagExists),
		errors.Is(err, domain.ErrIngredientExists),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest, true

	default:
		return 0, false
	}
}

// handleError writes the response for a known error and hands anything else
// to the app ErrorHandler.
func handleError(c *fiber.Ctx, message string, err error) error {
	if status, ok := errorStatus(err); ok {
		return presenters.ErrorResponse(c, status, message, err)
	}
	return err
}
