package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bNTGeez/value-g/internal/api/middleware"
	"github.com/rs/zerolog/log"
)

// SuccessResponse represents a successful API response
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// Meta represents metadata in response
type Meta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Success sends a successful response with data
func Success(w http.ResponseWriter, r *http.Request, data interface{}) {
	JSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: newMeta(r),
	})
}

// SuccessList sends a successful response with list data and count
func SuccessList(w http.ResponseWriter, r *http.Request, data interface{}, count int) {
	meta := newMeta(r)
	meta.Count = count
	JSON(w, http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// JSON writes any payload as JSON with the given status
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func newMeta(r *http.Request) Meta {
	return Meta{
		RequestID: middleware.GetRequestID(r.Context()),
		Timestamp: time.Now(),
	}
}
