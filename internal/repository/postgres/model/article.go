package model

import (
	"time"

	"github.com/ktsk/conduit/domain"
)

type Article struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	Body        string `gorm:"type:text;not null"`
	AuthorID    int64  `gorm:"column:author_id;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Article) TableName() string {
	return "articles"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		Body:        m.Body,
		AuthorID:    m.AuthorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
		AuthorID:    a.AuthorID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
