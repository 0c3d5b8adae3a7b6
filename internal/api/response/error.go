package response

import (
	"net/http"
	"time"

	"github.com/bNTGeez/value-g/internal/api/middleware"
	"github.com/rs/zerolog/log"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details
type ErrorDetail struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Error codes
const (
	ErrCodeInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrCodeInvalidParameter = "INVALID_PARAMETER"
	ErrCodeNotFound         = "NOT_FOUND"

	// Configuration errors
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// External API errors
	ErrCodeExternalAPIError = "EXTERNAL_API_ERROR"
)

// Error sends an error response
func Error(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	ErrorWithDetails(w, r, statusCode, code, message, "")
}

// ErrorWithDetails sends an error response with additional details
func ErrorWithDetails(w http.ResponseWriter, r *http.Request, statusCode int, code, message, details string) {
	resp := ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: middleware.GetRequestID(r.Context()),
			Timestamp: time.Now(),
		},
	}

	log.Warn().
		Str("request_id", resp.Error.RequestID).
		Str("error_code", code).
		Str("message", message).
		Int("status", statusCode).
		Msg("API error response")

	JSON(w, statusCode, resp)
}

// BadRequest sends a 400 Bad Request error
func BadRequest(w http.ResponseWriter, r *http.Request, message, details string) {
	ErrorWithDetails(w, r, http.StatusBadRequest, ErrCodeInvalidParameter, message, details)
}

// ConfigurationError sends a 503: the service cannot work until it is configured
func ConfigurationError(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusServiceUnavailable, ErrCodeConfiguration, message)
}

// ExternalAPIError sends a 502 with a user-facing message.
// The cause is logged, not returned.
func ExternalAPIError(w http.ResponseWriter, r *http.Request, serviceName, message string, err error) {
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Str("service", serviceName).
			Msg("External API error")
	}
	Error(w, r, http.StatusBadGateway, ErrCodeExternalAPIError, message)
}
