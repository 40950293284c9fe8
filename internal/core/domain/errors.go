package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when the backend rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a refresh token is rejected or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotAuthenticated marks a request with no resolvable session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidCategory is returned for a feedback category outside the enum.
	ErrInvalidCategory = errors.New("invalid feedback category")
	// ErrInvalidStatus is returned for a feedback status outside the enum.
	ErrInvalidStatus = errors.New("invalid feedback status")
)

// RemoteError carries the human-readable message list the backend attaches
// to a failed operation.
type RemoteError struct {
	StatusCode int
	Messages   []string
}

func (e *RemoteError) Error() string {
	if len(e.Messages) == 0 {
		return "backend request failed"
	}
	return "backend request failed: " + strings.Join(e.Messages, "; ")
}

// First returns the first backend message, or "" when none was provided.
// Routes surface it directly to the user on unexpected failures.
func (e *RemoteError) First() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}
