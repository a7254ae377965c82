package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the inserted item already exists
	ErrConflict = errors.New("your item already exists")
	// ErrForbidden will throw if the authenticated user does not own the resource
	ErrForbidden = errors.New("you are not allowed to modify this item")
	// ErrUnauthorized will throw if the request carries no valid session credential
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrCacheMiss will throw if the requested item is not cached
	ErrCacheMiss = errors.New("cache miss")
)
