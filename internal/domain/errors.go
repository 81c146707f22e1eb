package domain

import "errors"

var (
	// ErrNotFound indicates that a referenced candidate, role, client or
	// advisor does not exist in the roster.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStage indicates a value outside the fixed stage vocabulary.
	ErrInvalidStage = errors.New("invalid pipeline stage")

	// ErrInvalidPriority indicates a value outside high|low|deprioritized.
	ErrInvalidPriority = errors.New("invalid role priority")
)
