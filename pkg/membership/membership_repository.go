package membership

import (
	"Foodgram-Backend/domain"
	"Foodgram-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MembershipRepository interface {
		Add(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error)
		Remove(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error)
		Exists(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error)
		Count(ctx context.Context, kind domain.RelationKind, actorID string) (int64, error)
		GetFollowedAuthors(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error)
	}

	membershipRepository struct {
		db *gorm.DB
	}
)

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Add inserts the fact unless it is already present and reports whether a row was written.
// The unique pair index makes concurrent adds of the same fact yield exactly one row.
func (r *membershipRepository) Add(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error) {
	rel, err := lookup(kind)
	if err != nil {
		return false, err
	}
	row, err := rel.newRow(actorID, targetID)
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Remove deletes the fact and reports whether it existed.
func (r *membershipRepository) Remove(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error) {
	rel, err := lookup(kind)
	if err != nil {
		return false, err
	}

	res := r.db.WithContext(ctx).
		Where(rel.actorColumn+" = ? AND "+rel.targetColumn+" = ?", actorID, targetID).
		Delete(rel.model())
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *membershipRepository) Exists(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error) {
	rel, err := lookup(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(rel.model()).
		Where(rel.actorColumn+" = ? AND "+rel.targetColumn+" = ?", actorID, targetID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *membershipRepository) Count(ctx context.Context, kind domain.RelationKind, actorID string) (int64, error) {
	rel, err := lookup(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(rel.model()).
		Where(rel.actorColumn+" = ?", actorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *membershipRepository) GetFollowedAuthors(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Follow{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("users.username ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func parseIDs(actorID, targetID string, actor, target *uuid.UUID) error {
	var err error
	if *actor, err = uuid.Parse(actorID); err != nil {
		return domain.ErrParseUUID
	}
	if *target, err = uuid.Parse(targetID); err != nil {
		return domain.ErrParseUUID
	}
	return nil
}
