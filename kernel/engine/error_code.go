package engine

import "errors"

// ErrorCode is a stable machine-readable code for engine errors.
type ErrorCode string

const (
	ErrorCodeValidation          ErrorCode = "ERR_VALIDATION"
	ErrorCodeConcurrencyConflict ErrorCode = "ERR_CONCURRENCY_CONFLICT"
	ErrorCodeInvalidTransition   ErrorCode = "ERR_INVALID_TRANSITION"
	ErrorCodeSessionFinalized    ErrorCode = "ERR_SESSION_FINALIZED"
)

// CodedError exposes a stable code for programmatic handling.
type CodedError interface {
	error
	Code() ErrorCode
}

// ErrorCodeOf extracts the code from err, unwrapping as needed. Returns
// "" for uncoded errors.
func ErrorCodeOf(err error) ErrorCode {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}
