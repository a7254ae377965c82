package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/rest/request"
	"github.com/ktsk/conduit/internal/rest/response"
)

// ArticleHandler represent the httphandler for article
type ArticleHandler struct {
	Service domain.PublicationUsecase
}

// NewArticleHandler will initialize the articles/ resources endpoint
func NewArticleHandler(g *gin.RouterGroup, svc domain.PublicationUsecase, requireAuth, optionalAuth gin.HandlerFunc) {
	handler := &ArticleHandler{
		Service: svc,
	}
	g.POST("/articles", requireAuth, handler.Store)
	g.GET("/articles/:slug", optionalAuth, handler.GetBySlug)
	g.PUT("/articles/:slug", requireAuth, handler.Update)
	g.DELETE("/articles/:slug", requireAuth, handler.Delete)
	g.POST("/articles/:slug/favorite", requireAuth, handler.Favorite)
	g.DELETE("/articles/:slug/favorite", requireAuth, handler.Unfavorite)
}

// Store will create a new article
func (h *ArticleHandler) Store(c *gin.Context) {
	var req request.CreateArticleReq
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Article.Title) == "" {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: "title must not be blank"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.Service.CreateArticle(
		c.Request.Context(),
		userID,
		req.Article.Title,
		req.Article.Description,
		req.Article.Body,
		req.Article.TagList,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleEnvelope(view))
}

// GetBySlug will get article by given slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	view, err := h.Service.GetArticle(c.Request.Context(), c.Param("slug"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleEnvelope(view))
}

// Update will patch the article's title, description or body
func (h *ArticleHandler) Update(c *gin.Context) {
	var req request.UpdateArticleReq
	if !bindJSON(c, &req) {
		return
	}
	if req.Article.Title != nil && strings.TrimSpace(*req.Article.Title) == "" {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: "title must not be blank"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	patch := domain.ArticleUpdate{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
	}
	view, err := h.Service.UpdateArticle(c.Request.Context(), c.Param("slug"), userID, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleEnvelope(view))
}

// Delete will remove the article by given slug
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteArticle(c.Request.Context(), c.Param("slug"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite marks the article as favorited by the current user
func (h *ArticleHandler) Favorite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.Service.FavoriteArticle(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleEnvelope(view))
}

// Unfavorite withdraws the current user's favorite from the article
func (h *ArticleHandler) Unfavorite(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.Service.UnfavoriteArticle(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewArticleEnvelope(view))
}
