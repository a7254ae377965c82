package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/internal/rest/request"
	"github.com/ktsk/conduit/internal/rest/response"
)

// UserHandler represent the httphandler for users
type UserHandler struct {
	Service domain.UserUsecase
}

// NewUserHandler will initialize the users/ resources endpoint
func NewUserHandler(g *gin.RouterGroup, svc domain.UserUsecase, requireAuth gin.HandlerFunc) {
	handler := &UserHandler{
		Service: svc,
	}
	g.POST("/users", handler.Register)
	g.POST("/users/login", handler.Login)
	g.GET("/user", requireAuth, handler.Current)
	g.PUT("/user", requireAuth, handler.Update)
}

// Register creates a new account and answers with a fresh session token
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUserReq
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.Service.Register(c.Request.Context(), req.User.Username, req.User.Email, req.User.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewUserEnvelope(user, token))
}

// Login verifies the credentials and answers with a fresh session token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginUserReq
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.Service.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserEnvelope(user, token))
}

// Current answers with the authenticated user, echoing the presented token
func (h *UserHandler) Current(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.Service.GetCurrent(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserEnvelope(user, c.GetString("token")))
}

// Update patches the authenticated user's account fields
func (h *UserHandler) Update(c *gin.Context) {
	var req request.UpdateUserReq
	if !bindJSON(c, &req) {
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.Service.UpdateUser(
		c.Request.Context(),
		userID,
		req.User.Username,
		req.User.Email,
		req.User.Password,
		req.User.Bio,
		req.User.Image,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewUserEnvelope(user, c.GetString("token")))
}
