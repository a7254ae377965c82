package model

import (
	"time"

	"github.com/ktsk/conduit/domain"
)

type Follow struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	FollowerID int64 `gorm:"column:follower_id;uniqueIndex:idx_follower_followee;not null"`
	FolloweeID int64 `gorm:"column:followee_id;uniqueIndex:idx_follower_followee;not null"`
	CreatedAt  time.Time
}

func (Follow) TableName() string {
	return "user_follows"
}

func (m *Follow) ToDomain() domain.Follow {
	return domain.Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
	}
}
