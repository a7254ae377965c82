package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID          int64     // Unique identifier for the article
	Slug        string    // URL-safe identifier derived from the title, unique
	Title       string    // Article title
	Description string    // Short description
	Body        string    // Article body content
	AuthorID    int64     // Owning user
	CreatedAt   time.Time // Creation timestamp
	UpdatedAt   time.Time // Last update timestamp
}

// ArticleUpdate carries a partial article change. Nil fields keep their
// previous values.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Body        *string
}

// Profile is the outward-facing view of a user relative to a viewer.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}

// ArticleView is the assembled outward-facing article: the row itself plus
// its tag list, favorite aggregates and the author profile.
type ArticleView struct {
	Article
	TagList        []string
	Favorited      bool
	FavoritesCount int
	Author         Profile
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// Create inserts a new article. The slug is unique across all articles;
	// a colliding insert returns ErrConflict and writes nothing.
	// Backfills ID/CreatedAt/UpdatedAt on success.
	Create(ctx context.Context, a *Article) error

	// GetBySlug retrieves a single article by its slug.
	// Returns ErrNotFound if the article doesn't exist.
	GetBySlug(ctx context.Context, slug string) (Article, error)

	// Update applies the non-nil fields of patch to the article. When newSlug
	// is non-nil the slug changes too; a collision with another article's
	// slug returns ErrConflict and leaves every field untouched. The check
	// and the write run in one transaction.
	Update(ctx context.Context, articleID int64, newSlug *string, patch ArticleUpdate) (Article, error)

	// DeleteBySlug removes the article and its tag associations and
	// favorites, returning the deleted snapshot.
	// Returns ErrNotFound if the article doesn't exist.
	DeleteBySlug(ctx context.Context, slug string) (Article, error)
}

// ArticleCache is a read-through cache of article rows keyed by slug.
type ArticleCache interface {
	GetBySlug(ctx context.Context, slug string) (Article, error)
	Set(ctx context.Context, a *Article) error
	Delete(ctx context.Context, slug string) error
}

// PublicationUsecase defines the business logic contract for publishing:
// article lifecycle, favorites and the social graph around profiles.
type PublicationUsecase interface {
	// CreateArticle derives the slug from the title and stores the article
	// with its tag set. Returns ErrConflict if the slug already exists.
	CreateArticle(ctx context.Context, authorID int64, title, description, body string, tags []string) (ArticleView, error)

	// GetArticle assembles the article view. currentUserID may be nil for
	// anonymous access, in which case the favorited flag is always false.
	GetArticle(ctx context.Context, slug string, currentUserID *int64) (ArticleView, error)

	// UpdateArticle applies a partial change. Only the author may update;
	// a present title recomputes the slug. Returns ErrNotFound, ErrForbidden
	// or ErrConflict accordingly.
	UpdateArticle(ctx context.Context, slug string, currentUserID int64, patch ArticleUpdate) (ArticleView, error)

	// DeleteArticle removes the article. Author-only.
	DeleteArticle(ctx context.Context, slug string, currentUserID int64) error

	// FavoriteArticle and UnfavoriteArticle toggle the logically-deleted
	// favorite relation and return the refreshed view.
	FavoriteArticle(ctx context.Context, slug string, currentUserID int64) (ArticleView, error)
	UnfavoriteArticle(ctx context.Context, slug string, currentUserID int64) (ArticleView, error)

	// GetProfile resolves a user profile with the following flag relative
	// to currentUserID (nil for anonymous).
	GetProfile(ctx context.Context, username string, currentUserID *int64) (Profile, error)

	// FollowUser creates the follow edge if absent; idempotent from the
	// caller's perspective. UnfollowUser removes it, ErrNotFound if absent.
	FollowUser(ctx context.Context, username string, currentUserID int64) (Profile, error)
	UnfollowUser(ctx context.Context, username string, currentUserID int64) (Profile, error)

	// ListTags returns the whole tag vocabulary.
	ListTags(ctx context.Context) ([]string, error)
}
