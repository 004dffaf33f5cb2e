package handlers

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/api/presenters"
	"Foodgram-Backend/pkg/membership"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	MembershipHandler interface {
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		GetSubscriptions(c *fiber.Ctx) error
	}

	membershipHandler struct {
		membershipService membership.MembershipService
	}
)

func NewMembershipHandler(membershipService membership.MembershipService) MembershipHandler {
	return &membershipHandler{membershipService: membershipService}
}

func (h *membershipHandler) Subscribe(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationFollow, domain.ToggleAdd)
}

func (h *membershipHandler) Unsubscribe(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationFollow, domain.ToggleRemove)
}

func (h *membershipHandler) AddFavorite(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationFavourite, domain.ToggleAdd)
}

func (h *membershipHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationFavourite, domain.ToggleRemove)
}

func (h *membershipHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationShoppingCart, domain.ToggleAdd)
}

func (h *membershipHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.toggle(c, domain.RelationShoppingCart, domain.ToggleRemove)
}

// toggle answers with the bare target view on 201, {"errors": msg} on a
// rejected toggle and an empty 204 after a removal.
func (h *membershipHandler) toggle(c *fiber.Ctx, kind domain.RelationKind, op domain.ToggleOp) error {
	userID, _ := currentUser(c)

	res, err := h.membershipService.Toggle(c.UserContext(), domain.ToggleRequest{
		ActorID:      userID,
		TargetID:     c.Params("id"),
		Kind:         kind,
		Op:           op,
		RecipesLimit: parseRecipesLimit(c),
	})
	if err != nil {
		var relErr *domain.RelationError
		switch {
		case errors.As(err, &relErr):
			return presenters.RelationErrorResponse(c, fiber.StatusBadRequest, relErr.Message)
		case errors.Is(err, domain.ErrSelfFollow):
			return presenters.RelationErrorResponse(c, fiber.StatusBadRequest, err.Error())
		}
		return handleError(c, domain.MessageFailedToggleRelationship, err)
	}

	if op == domain.ToggleRemove {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Body())
}

func (h *membershipHandler) GetSubscriptions(c *fiber.Ctx) error {
	userID, _ := currentUser(c)
	page, limit := parsePagination(c)

	subs, count, err := h.membershipService.GetSubscriptions(c.UserContext(), userID, page, limit, parseRecipesLimit(c))
	if err != nil {
		return handleError(c, domain.MessageFailedGetSubscriptions, err)
	}

	return presenters.SuccessResponse(c, listResponse(subs, page, limit, count), fiber.StatusOK, domain.MessageSuccessGetSubscriptions)
}
