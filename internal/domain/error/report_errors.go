package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriod is returned when a report period ends before it
	// starts. Insufficient data is never an error: calculations that cannot
	// produce a figure return an absence value instead.
	ErrInvalidPeriod = errors.New("period end before period start")

	// ErrUnknownExportType is returned for an export type outside
	// expenses/meters/recurring.
	ErrUnknownExportType = errors.New("unknown export type")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	ErrCodeInvalidPeriod     ReportErrorCode = "RPT-010001"
	ErrCodeUnknownExportType ReportErrorCode = "RPT-010002"
	ErrCodeReportAccess      ReportErrorCode = "RPT-010003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{Code: code, Message: message, Err: err}
}
