package api

import (
	"iss-pass-service/internal/api/handlers"
	"iss-pass-service/internal/platform/metrics"
	"iss-pass-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(finder ports.PassFinder) http.Handler {
	mux := http.NewServeMux()

	passHandler := &handlers.PassHandler{Finder: finder}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/passes", passHandler.Next)
	mux.Handle("/metrics", metrics.Handler())

	instrumented := metrics.Middleware(mux, "/health", "/passes", "/metrics")
	return requestIDMiddleware(loggingMiddleware(instrumented))
}
