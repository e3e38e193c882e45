package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
)

// ErrorCollector counts error responses for the metrics endpoint.
type ErrorCollector interface {
	IncErrors()
}

var (
	errorCollector ErrorCollector
	exposeDetails  bool
)

// SetErrorCollector wires the metrics collector; set once at startup.
func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

// SetExposeDetails controls whether raw error detail is included in bodies.
// Production keeps it off.
func SetExposeDetails(expose bool) {
	exposeDetails = expose
}

type errorBody struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Detail  string            `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// Error renders a coded error as {message} with the status its code maps to.
// Uncoded errors become a 500 with a generic message.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Message: "Internal server error"}

	var coded *common.Error
	if errors.As(err, &coded) {
		status = statusFor(coded.Code)
		body.Message = coded.Message
		body.Fields = coded.Fields
		if exposeDetails && coded.Cause != nil {
			body.Detail = coded.Cause.Error()
		}
	} else if exposeDetails && err != nil {
		body.Detail = err.Error()
	}

	if status >= http.StatusInternalServerError && errorCollector != nil {
		errorCollector.IncErrors()
	}
	JSON(w, status, body)
}

// Duplicate application and duplicate registration report 400, matching the
// public API contract.
func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeConflict:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
