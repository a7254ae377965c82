package response

import (
	"time"

	"github.com/ktsk/conduit/domain"
)

// ProfileResp represent the author block of an article and the profile
// endpoints.
type ProfileResp struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// ArticleResp represent the article as exposed over HTTP, with its tag list
// and the viewer-relative aggregates.
type ArticleResp struct {
	Slug           string      `json:"slug"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Body           string      `json:"body"`
	TagList        []string    `json:"tagList"`
	CreatedAt      string      `json:"createdAt"`
	UpdatedAt      string      `json:"updatedAt"`
	Favorited      bool        `json:"favorited"`
	FavoritesCount int         `json:"favoritesCount"`
	Author         ProfileResp `json:"author"`
}

type ArticleEnvelope struct {
	Article ArticleResp `json:"article"`
}

type ProfileEnvelope struct {
	Profile ProfileResp `json:"profile"`
}

type TagsEnvelope struct {
	Tags []string `json:"tags"`
}

func NewProfileResp(p domain.Profile) ProfileResp {
	return ProfileResp{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: p.Following,
	}
}

func NewArticleEnvelope(v domain.ArticleView) ArticleEnvelope {
	tagList := v.TagList
	if tagList == nil {
		tagList = []string{}
	}
	return ArticleEnvelope{
		Article: ArticleResp{
			Slug:           v.Article.Slug,
			Title:          v.Article.Title,
			Description:    v.Article.Description,
			Body:           v.Article.Body,
			TagList:        tagList,
			CreatedAt:      v.Article.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      v.Article.UpdatedAt.Format(time.RFC3339),
			Favorited:      v.Favorited,
			FavoritesCount: v.FavoritesCount,
			Author:         NewProfileResp(v.Author),
		},
	}
}
