package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/rest/response"
)

// ProfileHandler represent the httphandler for profiles
type ProfileHandler struct {
	Service domain.PublicationUsecase
}

// NewProfileHandler will initialize the profiles/ resources endpoint
func NewProfileHandler(g *gin.RouterGroup, svc domain.PublicationUsecase, requireAuth, optionalAuth gin.HandlerFunc) {
	handler := &ProfileHandler{
		Service: svc,
	}
	g.GET("/profiles/:username", optionalAuth, handler.GetByUsername)
	g.POST("/profiles/:username/follow", requireAuth, handler.Follow)
	g.DELETE("/profiles/:username/follow", requireAuth, handler.Unfollow)
}

// GetByUsername will get the profile by given username
func (h *ProfileHandler) GetByUsername(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.Request.Context(), c.Param("username"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ProfileEnvelope{Profile: response.NewProfileResp(profile)})
}

// Follow adds the target user to the current user's followees
func (h *ProfileHandler) Follow(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.Service.FollowUser(c.Request.Context(), c.Param("username"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ProfileEnvelope{Profile: response.NewProfileResp(profile)})
}

// Unfollow removes the target user from the current user's followees
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.Service.UnfollowUser(c.Request.Context(), c.Param("username"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ProfileEnvelope{Profile: response.NewProfileResp(profile)})
}
