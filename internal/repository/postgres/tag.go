package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres/model"
)

type tagRepository struct {
	DB *gorm.DB
}

var _ domain.TagRepository = (*tagRepository)(nil)

// NewTagRepository will create an implementation of domain.TagRepository
func NewTagRepository(db *gorm.DB) *tagRepository {
	return &tagRepository{db}
}

// CreateTags bulk-inserts the vocabulary with conflict-do-nothing semantics.
// Rows that hit the unique constraint come back without an ID, so only the
// freshly inserted ones are returned.
func (m *tagRepository) CreateTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]model.Tag, len(names))
	for i, name := range names {
		rows[i] = model.Tag{Tag: name}
	}

	err := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tag"}},
			DoNothing: true,
		}).
		Create(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		if rows[i].ID != 0 {
			res = append(res, rows[i].ToDomain())
		}
	}
	return res, nil
}

func (m *tagRepository) GetExisting(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var tags []model.Tag
	err := m.DB.WithContext(ctx).Where("tag IN ?", names).Find(&tags).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tag, len(tags))
	for i := range tags {
		res[i] = tags[i].ToDomain()
	}
	return res, nil
}

// Associate bulk-inserts association pairs; pairs that already exist are
// skipped, so the operation is idempotent.
func (m *tagRepository) Associate(ctx context.Context, pairs []domain.ArticleTag) error {
	if len(pairs) == 0 {
		return nil
	}

	rows := make([]model.ArticleTag, len(pairs))
	for i, pair := range pairs {
		rows[i] = model.NewArticleTagFromDomain(pair)
	}

	return m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "article_id"}, {Name: "tag_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (m *tagRepository) GetForArticle(ctx context.Context, articleID int64) ([]domain.Tag, error) {
	var tags []model.Tag
	err := m.DB.WithContext(ctx).
		Model(&model.Tag{}).
		Joins("JOIN article_tags ON article_tags.tag_id = tags.id").
		Where("article_tags.article_id = ?", articleID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tag, len(tags))
	for i := range tags {
		res[i] = tags[i].ToDomain()
	}
	return res, nil
}

func (m *tagRepository) GetAll(ctx context.Context) ([]domain.Tag, error) {
	var tags []model.Tag
	err := m.DB.WithContext(ctx).Order("tag").Find(&tags).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Tag, len(tags))
	for i := range tags {
		res[i] = tags[i].ToDomain()
	}
	return res, nil
}
