package services

import (
	"errors"

	"brainscript/db"
)

var (
	// ErrNotFound matches every NotFoundError
	ErrNotFound = errors.New("not found")
	// ErrFavoriteUnsupported is returned when toggling a collection without a favorite flag
	ErrFavoriteUnsupported = errors.New("favorites are not supported for this file type")
	// ErrEmailInUse is returned when a new Google account's email is already registered
	ErrEmailInUse = errors.New("an account with this email already exists")
	// ErrVersionConflict means the user document changed between load and save
	ErrVersionConflict = db.ErrVersionConflict
)

// ValidationError reports a bad or missing request field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// NotFoundError names the missing thing, e.g. "User" or "Note"
type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string { return e.What + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func notFound(what string) error { return &NotFoundError{What: what} }
