package membership

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/pkg/recipe"
	"Foodgram-Backend/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MembershipService interface {
		Toggle(ctx context.Context, req domain.ToggleRequest) (domain.ToggleResult, error)
		GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.UserWithRecipes, int64, error)
	}

	membershipService struct {
		membershipRepository MembershipRepository
		userRepository       user.UserRepository
		recipeRepository     recipe.RecipeRepository
	}

	// target is the resolved subject of a toggle.
	target struct {
		user   *entities.User
		recipe *entities.Recipe
	}
)

func NewMembershipService(
	membershipRepository MembershipRepository,
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
) MembershipService {
	return &membershipService{
		membershipRepository: membershipRepository,
		userRepository:       userRepository,
		recipeRepository:     recipeRepository,
	}
}

// Toggle adds or removes one membership fact. Add and Remove are each a
// single storage statement, so the outcome is decided by the database.
func (s *membershipService) Toggle(ctx context.Context, req domain.ToggleRequest) (domain.ToggleResult, error) {
	rel, err := lookup(req.Kind)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	t, err := s.resolveTarget(ctx, rel, req.TargetID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	if rel.target == targetUser && t.user.ID.String() == req.ActorID {
		return domain.ToggleResult{}, domain.ErrSelfFollow
	}

	targetID := t.id()
	switch req.Op {
	case domain.ToggleAdd:
		created, err := s.membershipRepository.Add(ctx, req.Kind, req.ActorID, targetID)
		if err != nil {
			return domain.ToggleResult{}, err
		}
		if !created {
			return domain.ToggleResult{}, rel.alreadyExists(t.name())
		}
		return s.view(ctx, t, req.RecipesLimit)

	case domain.ToggleRemove:
		deleted, err := s.membershipRepository.Remove(ctx, req.Kind, req.ActorID, targetID)
		if err != nil {
			return domain.ToggleResult{}, err
		}
		if !deleted {
			return domain.ToggleResult{}, rel.notRelated(t.name())
		}
		return domain.ToggleResult{}, nil

	default:
		return domain.ToggleResult{}, domain.ErrUnknownRelation
	}
}

func (s *membershipService) GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.UserWithRecipes, int64, error) {
	authors, count, err := s.membershipRepository.GetFollowedAuthors(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.UserWithRecipes, 0, len(authors))
	for _, a := range authors {
		view, err := s.authorView(ctx, a, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, view)
	}
	return res, count, nil
}

func (s *membershipService) resolveTarget(ctx context.Context, rel relation, id string) (target, error) {
	switch rel.target {
	case targetUser:
		if _, err := uuid.Parse(id); err != nil {
			return target{}, domain.ErrUserNotFound
		}
		u, err := s.userRepository.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return target{}, domain.ErrUserNotFound
			}
			return target{}, err
		}
		return target{user: u}, nil

	default:
		if _, err := uuid.Parse(id); err != nil {
			return target{}, domain.ErrRecipeNotFound
		}
		r, err := s.recipeRepository.GetRecipeByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return target{}, domain.ErrRecipeNotFound
			}
			return target{}, err
		}
		return target{recipe: r}, nil
	}
}

func (s *membershipService) view(ctx context.Context, t target, recipesLimit int) (domain.ToggleResult, error) {
	if t.user != nil {
		v, err := s.authorView(ctx, t.user, recipesLimit)
		if err != nil {
			return domain.ToggleResult{}, err
		}
		return domain.ToggleResult{User: &v}, nil
	}

	v := recipe.ToRecipeMinified(t.recipe)
	return domain.ToggleResult{Recipe: &v}, nil
}

// authorView renders an author as seen by one of their followers.
func (s *membershipService) authorView(ctx context.Context, author *entities.User, recipesLimit int) (domain.UserWithRecipes, error) {
	authorID := author.ID.String()

	recipes, err := s.recipeRepository.GetRecipesByAuthor(ctx, authorID, recipesLimit)
	if err != nil {
		return domain.UserWithRecipes{}, err
	}
	count, err := s.recipeRepository.CountRecipesByAuthor(ctx, authorID)
	if err != nil {
		return domain.UserWithRecipes{}, err
	}

	minified := make([]domain.RecipeMinified, 0, len(recipes))
	for _, r := range recipes {
		minified = append(minified, recipe.ToRecipeMinified(r))
	}

	return domain.UserWithRecipes{
		UserResponse: user.ToUserResponse(author, true),
		Recipes:      minified,
		RecipesCount: count,
	}, nil
}

func (t target) id() string {
	if t.user != nil {
		return t.user.ID.String()
	}
	return t.recipe.ID.String()
}

func (t target) name() string {
	if t.user != nil {
		return t.user.Username
	}
	return t.recipe.Name
}
