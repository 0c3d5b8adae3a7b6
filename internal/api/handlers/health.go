package handlers

import (
	"net/http"
	"time"

	"github.com/bNTGeez/value-g/internal/api/response"
	"github.com/bNTGeez/value-g/internal/dashboard"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	table     *dashboard.Table
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(table *dashboard.Table, version string) *HealthHandler {
	return &HealthHandler{
		table:     table,
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// DetailedHealthResponse represents detailed health information
type DetailedHealthResponse struct {
	Status        string                `json:"status"`
	Version       string                `json:"version"`
	UptimeSeconds int64                 `json:"uptime_seconds"`
	Timestamp     time.Time             `json:"timestamp"`
	Dashboard     dashboard.FetchStatus `json:"dashboard"`
	Stats         dashboard.TableStats  `json:"stats"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Detailed returns uptime and dashboard cycle state.
// A dashboard in Error does not make the process unhealthy.
// GET /health/detailed
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, DetailedHealthResponse{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now(),
		Dashboard:     h.table.State().Status,
		Stats:         h.table.Stats(),
	})
}
