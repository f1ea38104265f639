package errors

import "errors"

// This package defines a centralized set of sentinel errors for the client.
// Stores and the API layer return these so callers can branch with
// `errors.Is()` without depending on HTTP status codes or response bodies.

var (
	// ErrNoProject signifies that an operation requiring a selected project
	// was invoked without one. It is raised locally, before any network call.
	ErrNoProject = errors.New("no project selected")

	// ErrNotFound signifies that the server could not locate the requested
	// resource. Mapped from a 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that a request payload failed validation,
	// either client-side before the request was issued or server-side with
	// a 400 response.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized signifies a missing or rejected session.
	// Mapped from 401 and 403 responses.
	ErrUnauthorized = errors.New("not authorized")
)
