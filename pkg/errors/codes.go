package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal    ErrorCode = "COMMON_001"
	ErrCodeBadRequest  ErrorCode = "COMMON_002"
	ErrCodeNotFound    ErrorCode = "COMMON_003"
	ErrCodeTimeout     ErrorCode = "COMMON_004"
	ErrCodeValidation  ErrorCode = "COMMON_005"
	ErrCodeUnavailable ErrorCode = "COMMON_006"
)

// Submission pipeline error codes.  All four are terminal for the current
// submission: the caller corrects the input and resubmits, no partial results
// are ever produced.
const (
	// ErrCodeUploadSchema — uploaded CSV is readable but lacks the required
	// "smiles" column.
	ErrCodeUploadSchema ErrorCode = "SUB_001"

	// ErrCodeUploadParse — uploaded CSV is malformed or unreadable.
	ErrCodeUploadParse ErrorCode = "SUB_002"

	// ErrCodeNoInput — zero identifiers resolved from either input channel.
	ErrCodeNoInput ErrorCode = "SUB_003"

	// ErrCodeScoring — the scoring adapter failed (timeout, inference error);
	// the whole submission aborts, never a partially scored table.
	ErrCodeScoring ErrorCode = "SUB_004"

	// ErrCodeThreshold — decision threshold outside [0, 1].
	ErrCodeThreshold ErrorCode = "SUB_005"
)

// Short aliases used at call sites.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeTimeout      = ErrCodeTimeout
	CodeUnavailable  = ErrCodeUnavailable
	CodeUnknown      = ErrorCode("UNKNOWN")
	CodeOK           = ErrorCode("OK")

	CodeUploadSchema = ErrCodeUploadSchema
	CodeUploadParse  = ErrCodeUploadParse
	CodeNoInput      = ErrCodeNoInput
	CodeScoring      = ErrCodeScoring
	CodeThreshold    = ErrCodeThreshold
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:    http.StatusInternalServerError,
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeNotFound:    http.StatusNotFound,
	ErrCodeTimeout:     http.StatusGatewayTimeout,
	ErrCodeValidation:  http.StatusUnprocessableEntity,
	ErrCodeUnavailable: http.StatusServiceUnavailable,

	ErrCodeUploadSchema: http.StatusUnprocessableEntity,
	ErrCodeUploadParse:  http.StatusBadRequest,
	ErrCodeNoInput:      http.StatusBadRequest,
	ErrCodeScoring:      http.StatusBadGateway,
	ErrCodeThreshold:    http.StatusBadRequest,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:    "internal server error",
	ErrCodeBadRequest:  "bad request",
	ErrCodeNotFound:    "resource not found",
	ErrCodeTimeout:     "request timeout",
	ErrCodeValidation:  "validation failed",
	ErrCodeUnavailable: "service unavailable",

	ErrCodeUploadSchema: "uploaded CSV must contain a 'smiles' column",
	ErrCodeUploadParse:  "failed to read uploaded CSV",
	ErrCodeNoInput:      "provide at least one SMILES string",
	ErrCodeScoring:      "activity scoring failed",
	ErrCodeThreshold:    "threshold must be between 0.0 and 1.0",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError reports whether the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError reports whether the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}
