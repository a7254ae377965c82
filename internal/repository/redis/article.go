package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ktsk/conduit/domain"
)

const (
	KeyArticleBySlug = "article:slug:%s"

	articleTTL = 10 * time.Minute
)

type articleCache struct {
	client *redis.Client
}

var _ domain.ArticleCache = (*articleCache)(nil)

// NewArticleCache caches article rows by slug. Favorite counts and flags are
// never cached, they are recomputed per request.
func NewArticleCache(client *redis.Client) *articleCache {
	return &articleCache{
		client,
	}
}

func (c *articleCache) GetBySlug(ctx context.Context, slug string) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticleBySlug, slug)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) Set(ctx context.Context, a *domain.Article) (err error) {
	key := fmt.Sprintf(KeyArticleBySlug, a.Slug)
	data, err := json.Marshal(a)
	if err != nil {
		return
	}
	err = c.client.Set(ctx, key, data, articleTTL).Err()
	return
}

func (c *articleCache) Delete(ctx context.Context, slug string) error {
	key := fmt.Sprintf(KeyArticleBySlug, slug)
	return c.client.Del(ctx, key).Err()
}
