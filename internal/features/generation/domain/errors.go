package domain

import "errors"

var (
	// ErrInvalidIdea is returned when the idea text fails validation.
	ErrInvalidIdea = errors.New("invalid idea")
	// ErrUnsafePath is returned when a generated path would escape the workspace.
	ErrUnsafePath = errors.New("unsafe path")
	// ErrNotFound is returned when a history record does not exist.
	ErrNotFound = errors.New("not found")
)
