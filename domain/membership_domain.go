package domain

import (
	"errors"
)

// RelationKind selects one of the membership fact tables.
type RelationKind int

const (
	RelationFollow RelationKind = iota
	RelationFavourite
	RelationShoppingCart
)

func (k RelationKind) String() string {
	switch k {
	case RelationFollow:
		return "follow"
	case RelationFavourite:
		return "favourite"
	case RelationShoppingCart:
		return "shopping_cart"
	default:
		return "unknown"
	}
}

// ToggleOp is the direction of a toggle.
type ToggleOp int

const (
	ToggleAdd ToggleOp = iota
	ToggleRemove
)

var (
	MessageSuccessGetSubscriptions  = "success get subscriptions"
	MessageFailedGetSubscriptions   = "failed to get subscriptions"
	MessageFailedToggleRelationship = "failed to update relationship"

	ErrRelationExists   = errors.New("relation already exists")
	ErrRelationNotFound = errors.New("relation does not exist")
	ErrSelfFollow       = errors.New("you cannot subscribe to yourself")
	ErrUnknownRelation  = errors.New("unknown relation kind")
)

type (
	// RelationError is an expected, client-correctable toggle outcome. Message names the target.
	RelationError struct {
		Kind    error
		Message string
	}

	ToggleRequest struct {
		ActorID      string
		TargetID     string
		Kind         RelationKind
		Op           ToggleOp
		RecipesLimit int
	}

	// ToggleResult is empty after a successful Remove.
	ToggleResult struct {
		User   *UserWithRecipes
		Recipe *RecipeMinified
	}
)

func (e *RelationError) Error() string { return e.Message }

func (e *RelationError) Unwrap() error { return e.Kind }

// Body returns the view a successful Add produced, or nil.
func (r ToggleResult) Body() any {
	switch {
	case r.User != nil:
		return r.User
	case r.Recipe != nil:
		return r.Recipe
	default:
		return nil
	}
}
