package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/ktsk/conduit/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode will get the http status code for a domain error
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a domain error onto a status code and JSON body.
// Internal failures get a generic message, their details stay in the log.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		c.JSON(code, ResponseError{Message: domain.ErrInternalServerError.Error()})
		return
	}
	c.JSON(code, ResponseError{Message: err.Error()})
}

// bindJSON deserializes and validates the request body. Field-rule
// violations answer 422 with the violated fields listed, anything the
// decoder rejects answers 400. Returns false when the request was already
// answered.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, len(validationErrs))
		for i, fieldErr := range validationErrs {
			fields[i] = fieldErr.Field()
		}
		c.JSON(http.StatusUnprocessableEntity, ResponseError{
			Message: "validation failed on: " + strings.Join(fields, ", "),
		})
		return false
	}

	c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	return false
}

// requireUserID reads the identity set by the auth middleware, failing the
// request when it is missing.
func requireUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return 0, false
	}
	return v.(int64), true
}

// currentUserID reads the identity if present; nil means anonymous access.
func currentUserID(c *gin.Context) *int64 {
	v, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id := v.(int64)
	return &id
}
