package domain

import (
	"context"
	"time"
)

// Tag is one entry of the tag vocabulary. Tag text is unique; tags are
// created lazily and never deleted.
type Tag struct {
	ID        int64
	Tag       string
	CreatedAt time.Time
}

// ArticleTag is one article↔tag association row.
type ArticleTag struct {
	ArticleID int64
	TagID     int64
	CreatedAt time.Time
}

// TagRepository owns the tag vocabulary and the article↔tag association.
type TagRepository interface {
	// CreateTags bulk-inserts tag names, silently skipping names that
	// already exist. Only the newly inserted rows are returned, so the
	// result may be smaller than the input.
	CreateTags(ctx context.Context, names []string) ([]Tag, error)

	// GetExisting resolves the subset of names that exist as rows.
	// Order is not guaranteed to match the input.
	GetExisting(ctx context.Context, names []string) ([]Tag, error)

	// Associate bulk-inserts association pairs, ignoring pairs that
	// already exist.
	Associate(ctx context.Context, pairs []ArticleTag) error

	// GetForArticle returns all tags currently associated with an article.
	GetForArticle(ctx context.Context, articleID int64) ([]Tag, error)

	// GetAll returns the whole vocabulary.
	GetAll(ctx context.Context) ([]Tag, error)
}
