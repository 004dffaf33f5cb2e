package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"

	"gorm.io/gorm"
)

// filterRecipes narrows a recipe query by f. Membership predicates need an
// actor and are skipped for anonymous requests.
func filterRecipes(f domain.RecipeFilter, actorID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.AuthorID != "" {
			db = db.Where("recipes.author_id = ?", f.AuthorID)
		}

		if len(f.Tags) > 0 {
			tagged := db.Session(&gorm.Session{NewDB: true}).
				Table("recipe_tags").
				Select("recipe_tags.recipe_id").
				Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
				Where("tags.slug IN ?", f.Tags)
			db = db.Where("recipes.id IN (?)", tagged)
		}

		if actorID == "" {
			return db
		}

		if f.IsFavorited != nil {
			db = membershipPredicate(db, &entities.Favourite{}, actorID, *f.IsFavorited)
		}
		if f.IsInShoppingCart != nil {
			db = membershipPredicate(db, &entities.ShoppingCart{}, actorID, *f.IsInShoppingCart)
		}
		return db
	}
}

func membershipPredicate(db *gorm.DB, model any, actorID string, keep bool) *gorm.DB {
	sub := db.Session(&gorm.Session{NewDB: true}).
		Model(model).
		Select("recipe_id").
		Where("user_id = ?", actorID)
	if keep {
		return db.Where("recipes.id IN (?)", sub)
	}
	return db.Where("recipes.id NOT IN (?)", sub)
}
