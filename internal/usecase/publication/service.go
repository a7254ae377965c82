package publication

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ktsk/conduit/domain"
)

// Expected business failures, wrapped so the transport layer can map them by
// sentinel while keeping a meaningful outward message.
var (
	ErrSlugTaken = fmt.Errorf("slug already exists: %w", domain.ErrConflict)
	ErrNotAuthor = fmt.Errorf("you are not the author: %w", domain.ErrForbidden)
)

// Service composes the four stores into the publishing operations: article
// lifecycle, favorites, profiles and the follow graph. It holds no state of
// its own beyond references to the stores.
type Service struct {
	articleRepo  domain.ArticleRepository
	tagRepo      domain.TagRepository
	favoriteRepo domain.FavoriteRepository
	followRepo   domain.FollowRepository
	userRepo     domain.UserRepository
	articleCache domain.ArticleCache
}

var _ domain.PublicationUsecase = (*Service)(nil)

// NewService will create a new publication service object
func NewService(
	articleRepo domain.ArticleRepository,
	tagRepo domain.TagRepository,
	favoriteRepo domain.FavoriteRepository,
	followRepo domain.FollowRepository,
	userRepo domain.UserRepository,
	articleCache domain.ArticleCache,
) *Service {
	return &Service{
		articleRepo:  articleRepo,
		tagRepo:      tagRepo,
		favoriteRepo: favoriteRepo,
		followRepo:   followRepo,
		userRepo:     userRepo,
		articleCache: articleCache,
	}
}

// Slugify derives the URL-safe identifier from an article title:
// lowercased, whitespace and punctuation folded to hyphens.
func Slugify(title string) string {
	return slug.Make(title)
}

// normalizeTags trims, lowercases and dedupes tag names, dropping empties.
func normalizeTags(names []string) []string {
	seen := make(map[string]bool, len(names))
	res := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res
}

func (s *Service) CreateArticle(ctx context.Context, authorID int64, title, description, body string, tags []string) (domain.ArticleView, error) {
	article := domain.Article{
		Slug:        Slugify(title),
		Title:       title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
	}

	err := s.articleRepo.Create(ctx, &article)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ArticleView{}, ErrSlugTaken
		}
		return domain.ArticleView{}, err
	}

	tagList, err := s.setArticleTags(ctx, article.ID, normalizeTags(tags))
	if err != nil {
		return domain.ArticleView{}, err
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return domain.ArticleView{}, err
	}

	// a brand-new article has no favorites and its author never follows
	// themselves
	return domain.ArticleView{
		Article:        article,
		TagList:        tagList,
		Favorited:      false,
		FavoritesCount: 0,
		Author:         newProfile(author, false),
	}, nil
}

// setArticleTags makes an article's tag set exactly the given names:
// materialize missing vocabulary, resolve the full id set, then associate.
// Vocabulary creation and association are separate round-trips on purpose;
// the unique constraint plus conflict-do-nothing keeps concurrent creators
// of the same tag safe without client-side locking.
func (s *Service) setArticleTags(ctx context.Context, articleID int64, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}

	if _, err := s.tagRepo.CreateTags(ctx, names); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetExisting(ctx, names)
	if err != nil {
		return nil, err
	}

	pairs := make([]domain.ArticleTag, len(tags))
	for i, tag := range tags {
		pairs[i] = domain.ArticleTag{ArticleID: articleID, TagID: tag.ID}
	}
	if err := s.tagRepo.Associate(ctx, pairs); err != nil {
		return nil, err
	}

	return names, nil
}

func (s *Service) GetArticle(ctx context.Context, slug string, currentUserID *int64) (domain.ArticleView, error) {
	article, err := s.resolveArticle(ctx, slug)
	if err != nil {
		return domain.ArticleView{}, err
	}
	return s.assembleView(ctx, article, currentUserID)
}

func (s *Service) UpdateArticle(ctx context.Context, slug string, currentUserID int64, patch domain.ArticleUpdate) (domain.ArticleView, error) {
	// mutations read the store directly, never the cache
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.ArticleView{}, err
	}
	if article.AuthorID != currentUserID {
		return domain.ArticleView{}, ErrNotAuthor
	}

	// a changed title recomputes the slug; an absent title keeps it
	var newSlug *string
	if patch.Title != nil {
		derived := Slugify(*patch.Title)
		newSlug = &derived
	}

	updated, err := s.articleRepo.Update(ctx, article.ID, newSlug, patch)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ArticleView{}, ErrSlugTaken
		}
		return domain.ArticleView{}, err
	}

	s.evictCached(article.Slug)

	return s.assembleView(ctx, updated, &currentUserID)
}

func (s *Service) DeleteArticle(ctx context.Context, slug string, currentUserID int64) error {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != currentUserID {
		return ErrNotAuthor
	}

	if _, err := s.articleRepo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	s.evictCached(slug)
	return nil
}

func (s *Service) FavoriteArticle(ctx context.Context, slug string, currentUserID int64) (domain.ArticleView, error) {
	article, err := s.resolveArticle(ctx, slug)
	if err != nil {
		return domain.ArticleView{}, err
	}

	if _, err := s.favoriteRepo.Add(ctx, currentUserID, article.ID); err != nil {
		return domain.ArticleView{}, err
	}

	return s.assembleView(ctx, article, &currentUserID)
}

func (s *Service) UnfavoriteArticle(ctx context.Context, slug string, currentUserID int64) (domain.ArticleView, error) {
	article, err := s.resolveArticle(ctx, slug)
	if err != nil {
		return domain.ArticleView{}, err
	}

	if _, err := s.favoriteRepo.Remove(ctx, currentUserID, article.ID); err != nil {
		return domain.ArticleView{}, err
	}

	return s.assembleView(ctx, article, &currentUserID)
}

func (s *Service) GetProfile(ctx context.Context, username string, currentUserID *int64) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	following := false
	if currentUserID != nil {
		following, err = s.isFollowing(ctx, *currentUserID, target.ID)
		if err != nil {
			return domain.Profile{}, err
		}
	}
	return newProfile(target, following), nil
}

// FollowUser creates the edge only when none exists yet, so repeated follows
// are idempotent from the caller's perspective. The unique constraint on the
// pair catches the check-then-insert race.
func (s *Service) FollowUser(ctx context.Context, username string, currentUserID int64) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	following, err := s.isFollowing(ctx, currentUserID, target.ID)
	if err != nil {
		return domain.Profile{}, err
	}

	if !following {
		if _, err := s.followRepo.Follow(ctx, currentUserID, target.ID); err != nil {
			// a concurrent follow won the race, which is fine
			if !errors.Is(err, domain.ErrConflict) {
				return domain.Profile{}, err
			}
		}
	}

	return newProfile(target, true), nil
}

func (s *Service) UnfollowUser(ctx context.Context, username string, currentUserID int64) (domain.Profile, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	if _, err := s.followRepo.Unfollow(ctx, currentUserID, target.ID); err != nil {
		return domain.Profile{}, err
	}

	return newProfile(target, false), nil
}

func (s *Service) ListTags(ctx context.Context) ([]string, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]string, len(tags))
	for i := range tags {
		res[i] = tags[i].Tag
	}
	return res, nil
}

// resolveArticle reads through the cache; misses load from the store and
// repopulate asynchronously.
func (s *Service) resolveArticle(ctx context.Context, slug string) (domain.Article, error) {
	article, err := s.articleCache.GetBySlug(ctx, slug)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	article, err = s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.Article{}, err
	}

	go func(a domain.Article) {
		if err := s.articleCache.Set(context.Background(), &a); err != nil {
			logrus.Warnf("failed to set article cache: %v", err)
		}
	}(article)

	return article, nil
}

func (s *Service) evictCached(slug string) {
	go func() {
		if err := s.articleCache.Delete(context.Background(), slug); err != nil {
			logrus.Warnf("failed to evict article cache for %q: %v", slug, err)
		}
	}()
}

// assembleView resolves tags, favorites and the author concurrently and
// derives the aggregates: favorite count over active rows, the
// favorited-by-me flag, and the following flag relative to the viewer.
func (s *Service) assembleView(ctx context.Context, article domain.Article, currentUserID *int64) (domain.ArticleView, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		tags      []domain.Tag
		favorites []domain.Favorite
		author    domain.User
		following bool
	)

	g.Go(func() (err error) {
		tags, err = s.tagRepo.GetForArticle(gctx, article.ID)
		return
	})
	g.Go(func() (err error) {
		favorites, err = s.favoriteRepo.GetByArticle(gctx, article.ID)
		return
	})
	g.Go(func() (err error) {
		author, err = s.userRepo.GetByID(gctx, article.AuthorID)
		return
	})
	if currentUserID != nil {
		viewer := *currentUserID
		g.Go(func() (err error) {
			following, err = s.isFollowing(gctx, viewer, article.AuthorID)
			return
		})
	}

	if err := g.Wait(); err != nil {
		return domain.ArticleView{}, err
	}

	tagList := make([]string, len(tags))
	for i := range tags {
		tagList[i] = tags[i].Tag
	}

	favorited := false
	favoritesCount := 0
	for _, favorite := range favorites {
		if favorite.IsDeleted {
			continue
		}
		favoritesCount++
		if currentUserID != nil && favorite.UserID == *currentUserID {
			favorited = true
		}
	}

	return domain.ArticleView{
		Article:        article,
		TagList:        tagList,
		Favorited:      favorited,
		FavoritesCount: favoritesCount,
		Author:         newProfile(author, following),
	}, nil
}

func (s *Service) isFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	edges, err := s.followRepo.GetFollowees(ctx, followerID)
	if err != nil {
		return false, err
	}
	for _, edge := range edges {
		if edge.FolloweeID == followeeID {
			return true, nil
		}
	}
	return false, nil
}

func newProfile(u domain.User, following bool) domain.Profile {
	return domain.Profile{
		Username:  u.Username,
		Bio:       u.Bio,
		Image:     u.Image,
		Following: following,
	}
}
