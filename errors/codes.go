package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors, raised before any network call.
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Protocol errors, raised while interpreting API responses.
const (
	// ErrCodeInvalidURL indicates a URL does not belong to the configured API base URL.
	ErrCodeInvalidURL ErrorCode = "INVALID_URL"
	// ErrCodeDeserialization indicates a payload could not be decoded.
	ErrCodeDeserialization ErrorCode = "DESERIALIZATION_ERROR"
)

// ErrCodeInternal indicates an unexpected client-side failure.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

// validationCodes are the codes that describe caller input problems.
var validationCodes = map[ErrorCode]bool{
	ErrCodeInvalidInput:  true,
	ErrCodeMissingField:  true,
	ErrCodeInvalidFormat: true,
}

// IsValidationCode returns true if the code describes a caller input problem.
func IsValidationCode(code ErrorCode) bool {
	return validationCodes[code]
}
