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

func favoriteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "article_id", "is_deleted", "created_at"})
}

func TestFavoriteAdd(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewFavoriteRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "favorites" .* ON CONFLICT \("user_id","article_id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE user_id = \$1 AND article_id = \$2`).
		WillReturnRows(favoriteRows().AddRow(7, 10, false, now))

	fav, err := repo.Add(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(7), fav.UserID)
	assert.False(t, fav.IsDeleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemove(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewFavoriteRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "favorites" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE user_id = \$1 AND article_id = \$2`).
		WillReturnRows(favoriteRows().AddRow(7, 10, true, now))

	fav, err := repo.Remove(context.Background(), 7, 10)
	require.NoError(t, err)
	assert.True(t, fav.IsDeleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveNeverFavorited(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewFavoriteRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "favorites" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.Remove(context.Background(), 7, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteGetByArticle(t *testing.T) {
	db, mock := setupDB(t)
	repo := postgres.NewFavoriteRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "favorites" WHERE article_id = \$1`).
		WillReturnRows(favoriteRows().
			AddRow(7, 10, false, now).
			AddRow(8, 10, true, now))

	favorites, err := repo.GetByArticle(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.False(t, favorites[0].IsDeleted)
	assert.True(t, favorites[1].IsDeleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
