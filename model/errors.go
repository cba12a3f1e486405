package model

import (
	"fmt"
	"strings"
)

// ValidationError indicates a malformed or semantically invalid request
// (missing required field, bad id, self-referential dependency).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates the referenced entity does not exist or does not
// belong to the requesting user.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// DependencyError indicates a status transition was attempted while one or
// more prerequisite tasks are incomplete. Blocking carries the human-readable
// names of the unmet prerequisites.
type DependencyError struct {
	Blocking []string
}

func (e *DependencyError) Error() string {
	if len(e.Blocking) == 0 {
		return "task has unmet dependencies"
	}
	return "task is blocked by incomplete dependencies: " + strings.Join(e.Blocking, ", ")
}
