package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/domain/mocks"
	"github.com/ktsk/conduit/internal/rest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs stands in for the auth middleware in handler tests.
func authAs(id int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		c.Set("token", "test-token")
		c.Next()
	}
}

func anonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}

func newArticleRouter(svc domain.PublicationUsecase, userID int64) *gin.Engine {
	router := gin.New()
	rest.NewArticleHandler(router.Group("/api"), svc, authAs(userID), anonymous())
	return router
}

func TestStoreArticle(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("CreateArticle", mock.Anything, int64(1), "How to Train Your Dragon", "Ever wondered how?", "Very carefully.", []string{"dragons"}).
		Return(domain.ArticleView{
			Article: domain.Article{Slug: "how-to-train-your-dragon", Title: "How to Train Your Dragon"},
			TagList: []string{"dragons"},
			Author:  domain.Profile{Username: "jake"},
		}, nil).Once()

	body := `{"article":{"title":"How to Train Your Dragon","description":"Ever wondered how?","body":"Very carefully.","tagList":["dragons"]}}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Article struct {
			Slug    string   `json:"slug"`
			TagList []string `json:"tagList"`
			Author  struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "how-to-train-your-dragon", resp.Article.Slug)
	assert.Equal(t, []string{"dragons"}, resp.Article.TagList)
	assert.Equal(t, "jake", resp.Article.Author.Username)

	svc.AssertExpectations(t)
}

func TestStoreArticleBlankTitle(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	body := `{"article":{"title":"   ","description":"d","body":"b"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreArticleMissingFields(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	body := `{"article":{"title":"Only a Title"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStoreArticleMalformedJSON(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(`{"article":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreArticleSlugConflict(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("CreateArticle", mock.Anything, int64(1), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ArticleView{}, domain.ErrConflict).Once()

	body := `{"article":{"title":"Taken","description":"d","body":"b"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	svc.AssertExpectations(t)
}

func TestGetArticleAnonymous(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("GetArticle", mock.Anything, "some-slug", (*int64)(nil)).
		Return(domain.ArticleView{
			Article: domain.Article{Slug: "some-slug"},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/articles/some-slug", nil)
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorited":false`)
	// absent tag set still marshals as an empty array, never null
	assert.Contains(t, rec.Body.String(), `"tagList":[]`)

	svc.AssertExpectations(t)
}

func TestGetArticleNotFound(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("GetArticle", mock.Anything, "missing", (*int64)(nil)).
		Return(domain.ArticleView{}, domain.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/articles/missing", nil)
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateArticleForbidden(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("UpdateArticle", mock.Anything, "not-mine", int64(1), mock.Anything).
		Return(domain.ArticleView{}, domain.ErrForbidden).Once()

	body := `{"article":{"body":"hijacked"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/articles/not-mine", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertExpectations(t)
}

func TestUpdateArticleBlankTitle(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	body := `{"article":{"title":""}}`
	req := httptest.NewRequest(http.MethodPut, "/api/articles/my-article", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "UpdateArticle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteArticle(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("DeleteArticle", mock.Anything, "doomed", int64(1)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/doomed", nil)
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	svc.AssertExpectations(t)
}

func TestFavoriteArticle(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("FavoriteArticle", mock.Anything, "liked", int64(1)).
		Return(domain.ArticleView{
			Article:        domain.Article{Slug: "liked"},
			Favorited:      true,
			FavoritesCount: 3,
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/articles/liked/favorite", nil)
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"favorited":true`)
	assert.Contains(t, rec.Body.String(), `"favoritesCount":3`)

	svc.AssertExpectations(t)
}

func TestUnfavoriteArticleNotFavorited(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("UnfavoriteArticle", mock.Anything, "unliked", int64(1)).
		Return(domain.ArticleView{}, domain.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/articles/unliked/favorite", nil)
	rec := httptest.NewRecorder()

	newArticleRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}
