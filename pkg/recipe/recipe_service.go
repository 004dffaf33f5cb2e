package recipe

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/tag"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, authorID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest, actorID, role string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, id string, actorID, role string) error
		GetRecipeDetail(ctx context.Context, id string, actorID string) (domain.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, actorID string) ([]domain.Recipe, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, authorID string) (domain.Recipe, error) {
	authorUUID, err := uuid.Parse(authorID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	tagIDs, items, err := s.validateRecipe(ctx, req)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorUUID,
		Name:        strings.TrimSpace(req.Name),
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tagIDs, items); err != nil {
		return domain.Recipe{}, err
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest, actorID, role string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !canModify(recipe, actorID, role) {
		return domain.Recipe{}, domain.ErrUnauthorizedRecipeAccess
	}

	tagIDs, items, err := s.validateRecipe(ctx, req)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe.Name = strings.TrimSpace(req.Name)
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime
	if req.Image != "" {
		recipe.Image = req.Image
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tagIDs, items); err != nil {
		return domain.Recipe{}, err
	}

	return s.GetRecipeDetail(ctx, id, actorID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, actorID, role string) error {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(recipe, actorID, role) {
		return domain.ErrUnauthorizedRecipeAccess
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipe.ID.String())
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, actorID string) (domain.Recipe, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.Recipe{}, err
	}

	res, err := s.toRecipes(ctx, []*entities.Recipe{recipe}, actorID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return res[0], nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page, limit int, actorID string) ([]domain.Recipe, int64, error) {
	if filter.AuthorID != "" {
		if _, err := uuid.Parse(filter.AuthorID); err != nil {
			return []domain.Recipe{}, 0, nil
		}
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, actorID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res, err := s.toRecipes(ctx, recipes, actorID)
	if err != nil {
		return nil, 0, err
	}
	return res, count, nil
}

func (s *recipeService) getRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRecipeNotFound
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// validateRecipe checks the request against the ingredient and tag tables and
// returns the rows to persist.
func (s *recipeService) validateRecipe(ctx context.Context, req domain.RecipeRequest) ([]uuid.UUID, []*entities.IngredientAmount, error) {
	if req.CookingTime < domain.MinCookingTime || req.CookingTime > domain.MaxCookingTime {
		return nil, nil, domain.ErrCookingTimeOutOfSpan
	}
	if len(req.Ingredients) == 0 {
		return nil, nil, domain.ErrNoIngredients
	}

	seen := make(map[uuid.UUID]struct{}, len(req.Ingredients))
	ingredientIDs := make([]string, 0, len(req.Ingredients))
	items := make([]*entities.IngredientAmount, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return nil, nil, domain.ErrUnknownIngredient
		}
		if _, dup := seen[id]; dup {
			return nil, nil, domain.ErrDuplicateIngredient
		}
		if in.Amount < 1 {
			return nil, nil, domain.ErrIngredientAmount
		}
		seen[id] = struct{}{}
		ingredientIDs = append(ingredientIDs, id.String())
		items = append(items, &entities.IngredientAmount{IngredientID: id, Amount: in.Amount})
	}

	found, err := s.recipeRepository.CountIngredients(ctx, ingredientIDs)
	if err != nil {
		return nil, nil, err
	}
	if found != int64(len(ingredientIDs)) {
		return nil, nil, domain.ErrUnknownIngredient
	}

	seenTags := make(map[uuid.UUID]struct{}, len(req.Tags))
	tagIDs := make([]uuid.UUID, 0, len(req.Tags))
	tagKeys := make([]string, 0, len(req.Tags))
	for _, raw := range req.Tags {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, domain.ErrUnknownTag
		}
		if _, dup := seenTags[id]; dup {
			return nil, nil, domain.ErrDuplicateTag
		}
		seenTags[id] = struct{}{}
		tagIDs = append(tagIDs, id)
		tagKeys = append(tagKeys, id.String())
	}

	if len(tagKeys) > 0 {
		found, err := s.recipeRepository.CountTags(ctx, tagKeys)
		if err != nil {
			return nil, nil, err
		}
		if found != int64(len(tagKeys)) {
			return nil, nil, domain.ErrUnknownTag
		}
	}

	return tagIDs, items, nil
}

func (s *recipeService) toRecipes(ctx context.Context, recipes []*entities.Recipe, actorID string) ([]domain.Recipe, error) {
	recipeIDs := make([]string, 0, len(recipes))
	authorIDs := make([]string, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID.String())
		authorIDs = append(authorIDs, r.AuthorID.String())
	}

	favorited, err := s.recipeRepository.FavoritedRecipeIDs(ctx, actorID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := s.recipeRepository.InCartRecipeIDs(ctx, actorID, recipeIDs)
	if err != nil {
		return nil, err
	}
	subscribed, err := s.userRepository.SubscribedAuthorIDs(ctx, actorID, authorIDs)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		id := r.ID.String()
		res = append(res, toRecipe(r, favorited[id], inCart[id], subscribed[r.AuthorID.String()]))
	}
	return res, nil
}

func toRecipe(r *entities.Recipe, favorited, inCart, subscribed bool) domain.Recipe {
	tags := make([]domain.TagResponse, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, tag.ToTagResponse(t))
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(r.Ingredients))
	for _, item := range r.Ingredients {
		if item.Ingredient == nil {
			continue
		}
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			ID:              item.Ingredient.ID.String(),
			Name:            item.Ingredient.Name,
			MeasurementUnit: item.Ingredient.MeasurementUnit,
			Amount:          item.Amount,
		})
	}
	slices.SortFunc(ingredients, func(a, b domain.RecipeIngredientResponse) int {
		return strings.Compare(a.Name, b.Name)
	})

	var author domain.UserResponse
	if r.Author != nil {
		author = user.ToUserResponse(r.Author, subscribed)
	}

	return domain.Recipe{
		ID:               r.ID.String(),
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      favorited,
		IsInShoppingCart: inCart,
		Name:             r.Name,
		Image:            r.Image,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		CreatedAt:        r.CreatedAt,
	}
}

func ToRecipeMinified(r *entities.Recipe) domain.RecipeMinified {
	return domain.RecipeMinified{
		ID:          r.ID.String(),
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}

// canModify denies anything that is not clearly the author or an admin.
func canModify(r *entities.Recipe, actorID, role string) bool {
	if actorID == "" {
		return false
	}
	return role == domain.RoleAdmin || r.AuthorID.String() == actorID
}
