package shopping

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		AggregateShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

// AggregateShoppingList sums line item amounts over every recipe in the user's
// cart, grouped by the exact (name, unit) pair.
func (r *shoppingRepository) AggregateShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	items := make([]domain.ShoppingListItem, 0)
	if err := r.db.WithContext(ctx).
		Model(&entities.ShoppingCart{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_amounts.amount) AS total_amount").
		Joins("JOIN ingredient_amounts ON ingredient_amounts.recipe_id = shopping_carts.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = ingredient_amounts.ingredient_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name ASC, ingredients.measurement_unit ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
