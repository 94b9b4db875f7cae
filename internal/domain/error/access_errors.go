package error

import "errors"

// Access-control domain errors.
var (
	// ErrPropertyAccessDenied is returned when a user tries to touch a
	// property that is not assigned to them.
	ErrPropertyAccessDenied = errors.New("no access to this property")

	// ErrInsufficientRole is returned when the user's role does not permit
	// the operation.
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
