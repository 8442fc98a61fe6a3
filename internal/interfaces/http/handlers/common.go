// Common helper functions for HTTP handlers.
package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/turtacn/gpcr-studio/pkg/errors"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeAppError maps application-level errors to HTTP status codes using the
// pkg/errors code table.  Server-side failures are masked with the default
// message so internals never leak to API callers.
func writeAppError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	resp := ErrorResponse{Code: code.String()}
	if errors.IsServerError(code) {
		resp.Message = errors.DefaultMessageForCode(code)
	} else {
		var ae *errors.AppError
		if stderrors.As(err, &ae) {
			resp.Message = ae.Message
			resp.Detail = ae.Detail
		} else {
			resp.Message = err.Error()
		}
	}
	writeJSON(w, status, resp)
}

// writeAttachment streams a download blob with the given content type and
// filename.
func writeAttachment(w http.ResponseWriter, contentType, filename string, blob []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob)
}
