package handlers

import (
	"iss-pass-service/internal/api/dto"
	"net/http"
)

// Health reports liveness only. It does not probe the upstream lookup
// services, so a healthy server can still fail /passes.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
