package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

// NewFollowRepository will create an implementation of domain.FollowRepository
func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

func (m *followRepository) GetFollowees(ctx context.Context, followerID int64) ([]domain.Follow, error) {
	var follows []model.Follow
	err := m.DB.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Find(&follows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Follow, len(follows))
	for i := range follows {
		res[i] = follows[i].ToDomain()
	}
	return res, nil
}

// Follow inserts a fresh edge. The unique constraint on
// (follower_id, followee_id) catches concurrent duplicates.
func (m *followRepository) Follow(ctx context.Context, followerID, followeeID int64) (domain.Follow, error) {
	row := model.Follow{FollowerID: followerID, FolloweeID: followeeID}
	err := m.DB.WithContext(ctx).Create(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Follow{}, domain.ErrConflict
		}
		return domain.Follow{}, err
	}
	return row.ToDomain(), nil
}

func (m *followRepository) Unfollow(ctx context.Context, followerID, followeeID int64) (domain.Follow, error) {
	var row model.Follow
	err := m.DB.WithContext(ctx).
		First(&row, "follower_id = ? AND followee_id = ?", followerID, followeeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Follow{}, domain.ErrNotFound
		}
		return domain.Follow{}, err
	}

	if err := m.DB.WithContext(ctx).Delete(&model.Follow{}, row.ID).Error; err != nil {
		return domain.Follow{}, err
	}
	return row.ToDomain(), nil
}
