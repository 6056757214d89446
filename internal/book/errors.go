package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrNotPersisted is returned when a freshly inserted book cannot be read back.
	ErrNotPersisted = errors.New("book not persisted")
	// ErrDuplicateID is returned by a repository asked to insert an id it already holds.
	ErrDuplicateID = errors.New("duplicate book id")
)

// Mode selects the wording of validation failures.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) verb() string {
	if m == ModeUpdate {
		return "update"
	}
	return "add"
}

// ValidationError describes why a payload was rejected.
type ValidationError struct {
	Mode   Mode
	Reason string
}

func (e *ValidationError) Error() string {
	return "Failed to " + e.Mode.verb() + " book. " + e.Reason
}

const (
	reasonMissingName  = "Please fill in the book name"
	reasonReadPage     = "readPage cannot be greater than pageCount"
	reasonInvalidInput = "Request body is not valid JSON"
)

// NewInvalidBodyError reports a request body that could not be decoded.
func NewInvalidBodyError(mode Mode) *ValidationError {
	return &ValidationError{Mode: mode, Reason: reasonInvalidInput}
}
