package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository will create an implementation of domain.ArticleRepository
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

// Create relies on the unique slug constraint: a colliding insert writes no
// row instead of failing, so concurrent creates of the same slug converge to
// one winner without client-side locking.
func (m *articleRepository) Create(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(articleModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}

	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) GetBySlug(ctx context.Context, slug string) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}

// Update runs the slug-collision check and the partial update in one
// transaction so a conflicting slug change applies no field at all.
func (m *articleRepository) Update(ctx context.Context, articleID int64, newSlug *string, patch domain.ArticleUpdate) (domain.Article, error) {
	var updated model.Article
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newSlug != nil {
			var count int64
			if err := tx.Model(&model.Article{}).
				Where("slug = ? AND id <> ?", *newSlug, articleID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return domain.ErrConflict
			}
		}

		fields := map[string]interface{}{}
		if newSlug != nil {
			fields["slug"] = *newSlug
		}
		if patch.Title != nil {
			fields["title"] = *patch.Title
		}
		if patch.Description != nil {
			fields["description"] = *patch.Description
		}
		if patch.Body != nil {
			fields["body"] = *patch.Body
		}

		if len(fields) > 0 {
			result := tx.Model(&model.Article{}).Where("id = ?", articleID).Updates(fields)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domain.ErrNotFound
			}
		}

		return tx.First(&updated, "id = ?", articleID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	return updated.ToDomain(), nil
}

// DeleteBySlug removes the article together with its tag associations and
// favorite rows, returning the deleted snapshot.
func (m *articleRepository) DeleteBySlug(ctx context.Context, slug string) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&article, "slug = ?", slug).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		if err := tx.Where("article_id = ?", article.ID).Delete(&model.ArticleTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Article{}, article.ID).Error
	})
	if err != nil {
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}
