package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/pkg/shopping"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		DownloadShoppingCart(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService) ShoppingHandler {
	return &shoppingHandler{shoppingService: shoppingService}
}

func (h *shoppingHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	userID, _ := currentUser(c)

	list, err := h.shoppingService.DownloadShoppingList(c.UserContext(), userID)
	if err != nil {
		return handleError(c, domain.MessageFailedDownloadShoppingList, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", domain.ShoppingListFilename))
	return c.Status(fiber.StatusOK).SendString(list)
}
