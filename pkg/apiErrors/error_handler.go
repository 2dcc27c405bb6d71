package apiErrors

import (
	"encoding/json"
	"net/http"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/pkg/log"
)

// APIError pairs an HTTP status with a stable machine-readable code.
type APIError struct {
	Status int
	Code   string
}

var (
	ErrInvalidRequest     = APIError{Status: http.StatusBadRequest, Code: "invalid_request"}
	ErrNotFound           = APIError{Status: http.StatusNotFound, Code: "not_found"}
	ErrConflict           = APIError{Status: http.StatusConflict, Code: "conflict"}
	ErrInternalServer     = APIError{Status: http.StatusInternalServerError, Code: "internal_error"}
	ErrServiceUnavailable = APIError{Status: http.StatusServiceUnavailable, Code: "service_unavailable"}
)

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// WriteError writes a JSON error envelope with the APIError's status code.
func WriteError(w http.ResponseWriter, apiErr APIError, message string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)

	if err := json.NewEncoder(w).Encode(errorResponse{
		Code:    apiErr.Code,
		Message: message,
		Details: details,
	}); err != nil {
		log.L.WithError(err).Warn("error encoding error response")
	}
}
