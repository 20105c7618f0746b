package workflow

import "errors"

// Error taxonomy for workflow operations. Every operation failure wraps one
// of these sentinels so callers can classify with errors.Is and map to an
// HTTP status at the boundary. All four are recoverable.
var (
	// ErrValidation covers malformed or missing input: empty cart, missing
	// transaction reference, non-positive quantity.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized means the actor lacks the role or ownership to
	// perform the action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStateConflict means the target entity is not in the status the
	// operation requires, e.g. verifying an already-verified payment.
	ErrStateConflict = errors.New("invalid state")
	// ErrNotFound means a referenced id does not exist.
	ErrNotFound = errors.New("not found")
)
