package tag

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/internal/testutil"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_CreateTag(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	res, err := svc.CreateTag(ctx, domain.CreateTagRequest{Name: "Завтрак", Color: "#FFAA00", Slug: "breakfast"})
	require.NoError(t, err)
	assert.Equal(t, "#ffaa00", res.Color)

	_, err = svc.CreateTag(ctx, domain.CreateTagRequest{Name: "Other", Color: "#fff", Slug: "breakfast"})
	assert.ErrorIs(t, err, domain.ErrTagExists)

	_, err = svc.CreateTag(ctx, domain.CreateTagRequest{Name: "Завтрак", Color: "#fff", Slug: "other"})
	assert.ErrorIs(t, err, domain.ErrTagExists)
}

func TestTagService_GetTagsRefreshesAfterCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	testutil.CreateTag(t, db, "Lunch", "lunch")

	tags, err := svc.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)

	_, err = svc.CreateTag(ctx, domain.CreateTagRequest{Name: "Dinner", Color: "#000", Slug: "dinner"})
	require.NoError(t, err)

	tags, err = svc.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Dinner", tags[0].Name)
	assert.Equal(t, "Lunch", tags[1].Name)
}

func TestTagService_GetTagByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	lunch := testutil.CreateTag(t, db, "Lunch", "lunch")

	res, err := svc.GetTagByID(ctx, lunch.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "lunch", res.Slug)

	_, err = svc.GetTagByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrTagNotFound)

	_, err = svc.GetTagByID(ctx, "lunch")
	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}

func TestTagService_GetTagsReturnsCopy(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()

	testutil.CreateTag(t, db, "Lunch", "lunch")

	first, err := svc.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	first[0].Name = "mutated"

	second, err := svc.GetTags(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Lunch", second[0].Name)

	second[0].Slug = "mutated"
	third, err := svc.GetTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lunch", third[0].Slug)
}
