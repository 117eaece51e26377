package webserver

import (
	"encoding/json"
	"net/http"
)

// registerRoutes sets up the health endpoint and static report serving.
func registerRoutes(mux *http.ServeMux, cfg Config) {
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.Handle("/", http.FileServer(http.Dir(cfg.ReportDir)))
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"}) //nolint:errcheck
}
