package model

import (
	"time"

	"github.com/ktsk/conduit/domain"
)

type Favorite struct {
	UserID    int64 `gorm:"column:user_id;primaryKey"`
	ArticleID int64 `gorm:"column:article_id;primaryKey"`
	IsDeleted bool  `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt time.Time
}

func (Favorite) TableName() string {
	return "favorites"
}

func (m *Favorite) ToDomain() domain.Favorite {
	return domain.Favorite{
		UserID:    m.UserID,
		ArticleID: m.ArticleID,
		IsDeleted: m.IsDeleted,
		CreatedAt: m.CreatedAt,
	}
}
