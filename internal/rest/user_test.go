package rest_test

import (
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

func newUserRouter(svc domain.UserUsecase, userID int64) *gin.Engine {
	router := gin.New()
	rest.NewUserHandler(router.Group("/api"), svc, authAs(userID))
	return router
}

func TestRegisterUser(t *testing.T) {
	svc := new(mocks.UserUsecase)

	svc.On("Register", mock.Anything, "jake", "jake@jake.jake", "jakejake").
		Return(domain.User{ID: 1, Username: "jake", Email: "jake@jake.jake"}, "a.b.c", nil).Once()

	body := `{"user":{"username":"jake","email":"jake@jake.jake","password":"jakejake"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"a.b.c"`)
	assert.Contains(t, rec.Body.String(), `"username":"jake"`)
	// the hash must never appear in a response
	assert.NotContains(t, rec.Body.String(), "password")

	svc.AssertExpectations(t)
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	svc := new(mocks.UserUsecase)

	body := `{"user":{"username":"jake","email":"not-an-email","password":"jakejake"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterUserDuplicate(t *testing.T) {
	svc := new(mocks.UserUsecase)

	svc.On("Register", mock.Anything, "jake", "jake@jake.jake", "jakejake").
		Return(domain.User{}, "", domain.ErrConflict).Once()

	body := `{"user":{"username":"jake","email":"jake@jake.jake","password":"jakejake"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	svc.AssertExpectations(t)
}

func TestLoginUser(t *testing.T) {
	svc := new(mocks.UserUsecase)

	svc.On("Login", mock.Anything, "jake@jake.jake", "jakejake").
		Return(domain.User{ID: 1, Username: "jake", Email: "jake@jake.jake"}, "a.b.c", nil).Once()

	body := `{"user":{"email":"jake@jake.jake","password":"jakejake"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"a.b.c"`)

	svc.AssertExpectations(t)
}

func TestLoginUserBadCredentials(t *testing.T) {
	svc := new(mocks.UserUsecase)

	svc.On("Login", mock.Anything, "jake@jake.jake", "wrong").
		Return(domain.User{}, "", domain.ErrUnauthorized).Once()

	body := `{"user":{"email":"jake@jake.jake","password":"wrong"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertExpectations(t)
}

func TestCurrentUser(t *testing.T) {
	svc := new(mocks.UserUsecase)

	svc.On("GetCurrent", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Username: "jake", Email: "jake@jake.jake"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// the presented token is echoed back
	assert.Contains(t, rec.Body.String(), `"token":"test-token"`)

	svc.AssertExpectations(t)
}

func TestUpdateUser(t *testing.T) {
	svc := new(mocks.UserUsecase)

	bio := "new bio"
	svc.On("UpdateUser", mock.Anything, int64(1), (*string)(nil), (*string)(nil), (*string)(nil), &bio, (*string)(nil)).
		Return(domain.User{ID: 1, Username: "jake", Bio: bio}, nil).Once()

	body := `{"user":{"bio":"new bio"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newUserRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bio":"new bio"`)

	svc.AssertExpectations(t)
}
