package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/rest/response"
)

// TagHandler represent the httphandler for tags
type TagHandler struct {
	Service domain.PublicationUsecase
}

// NewTagHandler will initialize the tags/ resources endpoint
func NewTagHandler(g *gin.RouterGroup, svc domain.PublicationUsecase) {
	handler := &TagHandler{
		Service: svc,
	}
	g.GET("/tags", handler.List)
}

// List answers with every tag name in the vocabulary
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.Service.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if tags == nil {
		tags = []string{}
	}
	c.JSON(http.StatusOK, response.TagsEnvelope{Tags: tags})
}
