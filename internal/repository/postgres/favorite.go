package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres/model"
)

type favoriteRepository struct {
	DB *gorm.DB
}

var _ domain.FavoriteRepository = (*favoriteRepository)(nil)

// NewFavoriteRepository will create an implementation of domain.FavoriteRepository
func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db}
}

// Add is a single atomic upsert: insert the pair, or flip is_deleted back to
// false when the row exists. Two concurrent favorites of the same pair
// converge on one row.
func (m *favoriteRepository) Add(ctx context.Context, userID, articleID int64) (domain.Favorite, error) {
	row := model.Favorite{UserID: userID, ArticleID: articleID}
	err := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "article_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"is_deleted": false}),
		}).
		Create(&row).Error
	if err != nil {
		return domain.Favorite{}, err
	}

	// reload for the authoritative snapshot, the upsert path does not
	// backfill created_at of a pre-existing row
	var stored model.Favorite
	if err := m.DB.WithContext(ctx).
		First(&stored, "user_id = ? AND article_id = ?", userID, articleID).Error; err != nil {
		return domain.Favorite{}, err
	}
	return stored.ToDomain(), nil
}

// Remove flips is_deleted on the existing row. A pair that was never
// favorited cannot be unfavorited.
func (m *favoriteRepository) Remove(ctx context.Context, userID, articleID int64) (domain.Favorite, error) {
	result := m.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Update("is_deleted", true)
	if result.Error != nil {
		return domain.Favorite{}, result.Error
	}
	if result.RowsAffected == 0 {
		return domain.Favorite{}, domain.ErrNotFound
	}

	var stored model.Favorite
	err := m.DB.WithContext(ctx).
		First(&stored, "user_id = ? AND article_id = ?", userID, articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Favorite{}, domain.ErrNotFound
		}
		return domain.Favorite{}, err
	}
	return stored.ToDomain(), nil
}

func (m *favoriteRepository) GetByArticle(ctx context.Context, articleID int64) ([]domain.Favorite, error) {
	var favorites []model.Favorite
	err := m.DB.WithContext(ctx).
		Where("article_id = ?", articleID).
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Favorite, len(favorites))
	for i := range favorites {
		res[i] = favorites[i].ToDomain()
	}
	return res, nil
}
