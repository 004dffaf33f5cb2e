package tag

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"Foodgram-Backend/internal/utils"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"gorm.io/gorm"
)

const (
	cacheSize    = 256
	allTagsKey   = "tags:all"
	tagKeyPrefix = "tag:"
)

type (
	TagService interface {
		GetTags(ctx context.Context) ([]domain.TagResponse, error)
		GetTagByID(ctx context.Context, id string) (domain.TagResponse, error)
		CreateTag(ctx context.Context, req domain.CreateTagRequest) (domain.TagResponse, error)
	}

	// tagService keeps tag reads in an LRU since tags change only through admin writes.
	tagService struct {
		tagRepository TagRepository
		cache         *lru.Cache
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	cache, _ := lru.New(cacheSize)
	return &tagService{
		tagRepository: tagRepository,
		cache:         cache,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.TagResponse, error) {
	if cached, ok := s.cache.Get(allTagsKey); ok {
		return slices.Clone(cached.([]domain.TagResponse)), nil
	}

	tags, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.TagResponse, 0, len(tags))
	for _, t := range tags {
		res = append(res, ToTagResponse(t))
	}
	s.cache.Add(allTagsKey, slices.Clone(res))
	return res, nil
}

func (s *tagService) GetTagByID(ctx context.Context, id string) (domain.TagResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.TagResponse{}, domain.ErrTagNotFound
	}
	if cached, ok := s.cache.Get(tagKeyPrefix + id); ok {
		return cached.(domain.TagResponse), nil
	}

	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TagResponse{}, domain.ErrTagNotFound
		}
		return domain.TagResponse{}, err
	}

	res := ToTagResponse(tag)
	s.cache.Add(tagKeyPrefix+id, res)
	return res, nil
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest) (domain.TagResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.tagRepository.CheckTagExists(ctx, name, req.Slug)
	if err != nil {
		return domain.TagResponse{}, err
	}
	if exists {
		return domain.TagResponse{}, domain.ErrTagExists
	}

	tag := &entities.Tag{
		ID:    uuid.New(),
		Name:  name,
		Color: utils.NormalizeTagColor(req.Color),
		Slug:  req.Slug,
	}
	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	s.cache.Remove(allTagsKey)
	return ToTagResponse(tag), nil
}

func ToTagResponse(tag *entities.Tag) domain.TagResponse {
	return domain.TagResponse{
		ID:    tag.ID.String(),
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}
