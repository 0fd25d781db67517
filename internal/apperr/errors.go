package apperr

import "errors"

var (
	// ErrStorageUnavailable signals that a storage backend could not be
	// reached or opened. The application degrades to an empty state
	// instead of crashing.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotFound signals an operation referencing a missing entity id.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals rejected input (empty required fields etc.)
	// before it reaches the store.
	ErrValidation = errors.New("invalid input")

	// ErrRenderPrecondition signals an export attempted before the note's
	// preview has been rendered.
	ErrRenderPrecondition = errors.New("preview not rendered")

	// ErrReference signals a cross-reference pointing outside its owner,
	// e.g. switching to a profile of another workspace.
	ErrReference = errors.New("reference violation")
)
