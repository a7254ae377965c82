package model

import (
	"time"

	"github.com/ktsk/conduit/domain"
)

type Tag struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Tag       string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}

func (m *Tag) ToDomain() domain.Tag {
	return domain.Tag{
		ID:        m.ID,
		Tag:       m.Tag,
		CreatedAt: m.CreatedAt,
	}
}

type ArticleTag struct {
	ArticleID int64 `gorm:"column:article_id;uniqueIndex:idx_article_tag;not null"`
	TagID     int64 `gorm:"column:tag_id;uniqueIndex:idx_article_tag;not null"`
	CreatedAt time.Time
}

func (ArticleTag) TableName() string {
	return "article_tags"
}

func NewArticleTagFromDomain(at domain.ArticleTag) ArticleTag {
	return ArticleTag{
		ArticleID: at.ArticleID,
		TagID:     at.TagID,
		CreatedAt: at.CreatedAt,
	}
}
