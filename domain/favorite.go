package domain

import (
	"context"
	"time"
)

// Favorite is one user↔article favorite row. The row is never physically
// removed once created; unfavoriting flips IsDeleted instead.
type Favorite struct {
	UserID    int64
	ArticleID int64
	IsDeleted bool
	CreatedAt time.Time
}

// FavoriteRepository owns the logically-deleted favorite relation.
type FavoriteRepository interface {
	// Add favorites the article for the user: inserts the row, or flips
	// IsDeleted back to false if the pair already exists. The upsert is a
	// single atomic statement, never a read-then-write.
	Add(ctx context.Context, userID, articleID int64) (Favorite, error)

	// Remove sets IsDeleted on the existing row.
	// Returns ErrNotFound if the pair was never favorited.
	Remove(ctx context.Context, userID, articleID int64) (Favorite, error)

	// GetByArticle returns every row for the article, deleted ones
	// included. Callers filter on IsDeleted to derive the active count
	// and the favorited-by-me flag.
	GetByArticle(ctx context.Context, articleID int64) ([]Favorite, error)
}
