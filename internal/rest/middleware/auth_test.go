package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktsk/conduit/internal/auth"
	"github.com/ktsk/conduit/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService([]byte("test-secret"), time.Hour)
}

// echoIdentity reports whether an identity was set and which one.
func echoIdentity(c *gin.Context) {
	id, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": id})
}

func TestRequireAuthValidToken(t *testing.T) {
	tokens := newTokenService()
	token, err := tokens.Issue(42)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/secure", middleware.RequireAuth(tokens), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := gin.New()
	router.GET("/secure", middleware.RequireAuth(newTokenService()), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthWrongScheme(t *testing.T) {
	tokens := newTokenService()
	token, err := tokens.Issue(42)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/secure", middleware.RequireAuth(tokens), echoIdentity)

	// only the "Token" scheme is accepted
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	router := gin.New()
	router.GET("/secure", middleware.RequireAuth(newTokenService()), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token not-a-real-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthAnonymous(t *testing.T) {
	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(newTokenService()), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"anonymous":true`)
}

func TestOptionalAuthValidToken(t *testing.T) {
	tokens := newTokenService()
	token, err := tokens.Issue(7)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(tokens), echoIdentity)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Token "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}

func TestOptionalAuthInvalidTokenStillFails(t *testing.T) {
	router := gin.New()
	router.GET("/open", middleware.OptionalAuth(newTokenService()), echoIdentity)

	// present but invalid is an error, not anonymous access
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Token garbage")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
