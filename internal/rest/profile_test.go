package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ktsk/conduit/domain"
	"github.com/ktsk/conduit/domain/mocks"
	"github.com/ktsk/conduit/internal/rest"
)

func newProfileRouter(svc domain.PublicationUsecase, userID int64) *gin.Engine {
	router := gin.New()
	rest.NewProfileHandler(router.Group("/api"), svc, authAs(userID), anonymous())
	return router
}

func TestGetProfile(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("GetProfile", mock.Anything, "anne", (*int64)(nil)).
		Return(domain.Profile{Username: "anne", Bio: "bio"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/anne", nil)
	rec := httptest.NewRecorder()

	newProfileRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"anne"`)
	assert.Contains(t, rec.Body.String(), `"following":false`)

	svc.AssertExpectations(t)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("GetProfile", mock.Anything, "ghost", (*int64)(nil)).
		Return(domain.Profile{}, domain.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/profiles/ghost", nil)
	rec := httptest.NewRecorder()

	newProfileRouter(svc, 1).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertExpectations(t)
}

func TestFollowProfile(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("FollowUser", mock.Anything, "anne", int64(1)).
		Return(domain.Profile{Username: "anne", Following: true}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/profiles/anne/follow", nil)
	rec := httptest.NewRecorder()

	newProfileRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"following":true`)

	svc.AssertExpectations(t)
}

func TestUnfollowProfile(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("UnfollowUser", mock.Anything, "anne", int64(1)).
		Return(domain.Profile{Username: "anne", Following: false}, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/api/profiles/anne/follow", nil)
	rec := httptest.NewRecorder()

	newProfileRouter(svc, 1).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"following":false`)

	svc.AssertExpectations(t)
}

func TestListTagsEndpoint(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("ListTags", mock.Anything).Return([]string{"dragons", "go"}, nil).Once()

	router := gin.New()
	rest.NewTagHandler(router.Group("/api"), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tags":["dragons","go"]}`, rec.Body.String())

	svc.AssertExpectations(t)
}

func TestListTagsEmpty(t *testing.T) {
	svc := new(mocks.PublicationUsecase)

	svc.On("ListTags", mock.Anything).Return(nil, nil).Once()

	router := gin.New()
	rest.NewTagHandler(router.Group("/api"), svc)

	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"tags":[]}`, rec.Body.String())

	svc.AssertExpectations(t)
}
