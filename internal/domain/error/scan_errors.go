package error

import "errors"

// Document scanning errors. Parse failures are deliberately distinct from
// transport/service failures so callers can tell "the model answered
// garbage" from "the service was unreachable".
var (
	// ErrScanUnavailable is returned when the vision service is not
	// configured or cannot be reached.
	ErrScanUnavailable = errors.New("document scan service unavailable")

	// ErrScanParse is returned when the vision service answered but its
	// response could not be parsed against the expected schema.
	ErrScanParse = errors.New("could not parse scan response")
)
