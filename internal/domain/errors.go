package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrListNotFound is returned when no Bring list carries the configured name
	ErrListNotFound = errors.New("shopping list not found")

	// ErrUnauthorized is returned when Bring rejects the credentials or token
	ErrUnauthorized = errors.New("bring authentication failed")

	// ErrNotFound is returned when Bring answers 404
	ErrNotFound = errors.New("bring resource not found")

	// ErrBringAPIFailure is returned when a Bring API request fails
	ErrBringAPIFailure = errors.New("bring API request failed")

	// ErrNotLoggedIn is returned when an authenticated call is made before Login
	ErrNotLoggedIn = errors.New("bring session is not logged in")

	// ErrInvalidRequest is returned for an operation or notification type Bring does not know
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

// ListNotFoundError carries the list name that could not be resolved
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrListNotFound, e.Name)
}

// Is lets errors.Is match ErrListNotFound
func (e *ListNotFoundError) Is(target error) bool {
	return target == ErrListNotFound
}
