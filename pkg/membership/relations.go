package membership

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"fmt"
)

type targetType int

const (
	targetUser targetType = iota
	targetRecipe
)

// relation describes one membership table and how toggles on it are reported.
type relation struct {
	actorColumn  string
	targetColumn string
	target       targetType
	existsMsg    string
	notExistsMsg string
	newRow       func(actorID, targetID string) (any, error)
	model        func() any
}

var relations = map[domain.RelationKind]relation{
	domain.RelationFollow: {
		actorColumn:  "user_id",
		targetColumn: "author_id",
		target:       targetUser,
		existsMsg:    "You are already subscribed to %s",
		notExistsMsg: "You are not subscribed to %s",
		newRow: func(actorID, targetID string) (any, error) {
			row := &entities.Follow{}
			return row, parseIDs(actorID, targetID, &row.UserID, &row.AuthorID)
		},
		model: func() any { return &entities.Follow{} },
	},
	domain.RelationFavourite: {
		actorColumn:  "user_id",
		targetColumn: "recipe_id",
		target:       targetRecipe,
		existsMsg:    "Recipe %s is already in favourites",
		notExistsMsg: "Recipe %s is not in favourites",
		newRow: func(actorID, targetID string) (any, error) {
			row := &entities.Favourite{}
			return row, parseIDs(actorID, targetID, &row.UserID, &row.RecipeID)
		},
		model: func() any { return &entities.Favourite{} },
	},
	domain.RelationShoppingCart: {
		actorColumn:  "user_id",
		targetColumn: "recipe_id",
		target:       targetRecipe,
		existsMsg:    "Recipe %s is already in the shopping cart",
		notExistsMsg: "Recipe %s is not in the shopping cart",
		newRow: func(actorID, targetID string) (any, error) {
			row := &entities.ShoppingCart{}
			return row, parseIDs(actorID, targetID, &row.UserID, &row.RecipeID)
		},
		model: func() any { return &entities.ShoppingCart{} },
	},
}

func lookup(kind domain.RelationKind) (relation, error) {
	rel, ok := relations[kind]
	if !ok {
		return relation{}, fmt.Errorf("%w: %d", domain.ErrUnknownRelation, kind)
	}
	return rel, nil
}

func (r relation) alreadyExists(targetName string) error {
	return &domain.RelationError{Kind: domain.ErrRelationExists, Message: fmt.Sprintf(r.existsMsg, targetName)}
}

func (r relation) notRelated(targetName string) error {
	return &domain.RelationError{Kind: domain.ErrRelationNotFound, Message: fmt.Sprintf(r.notExistsMsg, targetName)}
}
