package rest

import (
	"context"
	"net/http"
	"time"
)

// pingTimeout bounds each verse store ping made by a probe.
const pingTimeout = 3 * time.Second

// storePinger is satisfied by both verse repositories.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	driver  string
	lexicon LexiconStats
	version string
}

// LexiconStats reports how many entries each lexicon holds.
type LexiconStats struct {
	Greek  int `json:"greek"`
	Hebrew int `json:"hebrew"`
}

// NewHealthHandler creates a HealthHandler. driver names the verse store
// backend in /health output.
func NewHealthHandler(store storePinger, driver string, lexicon LexiconStats, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, lexicon: lexicon, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string        `json:"status"`
	Driver  string        `json:"driver,omitempty"`
	Latency string        `json:"latency,omitempty"`
	Entries *LexiconStats `json:"entries,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the verse store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: verse store ping with latency, lexicon
// sizes and build version. An empty lexicon marks the service as down.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["verse_store"] = CompStatus{Status: "down", Driver: h.driver}
		overallStatus = "down"
	} else {
		components["verse_store"] = CompStatus{
			Status:  "ok",
			Driver:  h.driver,
			Latency: latency.String(),
		}
	}

	lex := h.lexicon
	if lex.Greek == 0 || lex.Hebrew == 0 {
		components["lexicon"] = CompStatus{Status: "down", Entries: &lex}
		overallStatus = "down"
	} else {
		components["lexicon"] = CompStatus{Status: "ok", Entries: &lex}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
