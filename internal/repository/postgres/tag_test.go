package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/repository/postgres"
)

func tagRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tag", "created_at"})
}

func TestTagCreateTags(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewTagRepository(db)

	// "training" already exists, only "dragons" comes back with an id
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tags" .* ON CONFLICT \("tag"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	created, err := repo.CreateTags(context.Background(), []string{"dragons", "training"})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.NotZero(t, created[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagCreateTagsEmpty(t *testing.T) {
	db, _ := setupDB(t)
	repo := postgres.NewTagRepository(db)

	created, err := repo.CreateTags(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, created)
}

func TestTagGetExisting(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewTagRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tags" WHERE tag IN`).
		WillReturnRows(tagRows().
			AddRow(1, "dragons", now).
			AddRow(2, "training", now))

	tags, err := repo.GetExisting(context.Background(), []string{"dragons", "training"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "dragons", tags[0].Tag)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagAssociate(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewTagRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "article_tags" .* ON CONFLICT \("article_id","tag_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Associate(context.Background(), []domain.ArticleTag{
		{ArticleID: 10, TagID: 1},
		{ArticleID: 10, TagID: 2},
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagGetForArticle(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewTagRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "tags" JOIN article_tags ON article_tags\.tag_id = tags\.id WHERE article_tags\.article_id = \$1`).
		WillReturnRows(tagRows().AddRow(1, "dragons", now))

	tags, err := repo.GetForArticle(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "dragons", tags[0].Tag)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagGetAll(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewTagRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tags" ORDER BY tag`).
		WillReturnRows(tagRows().
			AddRow(1, "dragons", now).
			AddRow(2, "go", now))

	tags, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "dragons", tags[0].Tag)
	assert.Equal(t, "go", tags[1].Tag)

	assert.NoError(t, mock.ExpectationsWereMet())
}
