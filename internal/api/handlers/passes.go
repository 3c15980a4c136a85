package handlers

import (
	"context"
	"errors"
	"iss-pass-service/internal/api/dto"
	"iss-pass-service/internal/domain"
	"iss-pass-service/internal/ports"
	"log"
	"net/http"
)

// PassHandler exposes upcoming passes over the server's own location.
type PassHandler struct {
	Finder ports.PassFinder
}

func (h *PassHandler) Next(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	passes, err := h.Finder.NextPassesForCurrentLocation(r.Context())
	if err != nil {
		log.Printf("next passes failed: %v", err)
		status, res := errorResponse(err)
		writeJSON(w, r, status, res)
		return
	}

	res := dto.ListPassesResponse{
		Passes: make([]dto.PassResponse, 0, len(passes)),
	}
	for _, p := range passes {
		res.Passes = append(res.Passes, dto.PassResponse{
			RiseTime: p.RiseTime,
			Duration: p.Duration,
			RiseAt:   p.RiseAt().UTC(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// errorResponse maps a lookup failure to an HTTP status. Failures of an
// upstream service are a bad gateway; anything else is internal.
func errorResponse(err error) (int, dto.ErrorResponse) {
	stage, ok := domain.StageOf(err)
	if !ok {
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
	}

	res := dto.ErrorResponse{Error: err.Error(), Stage: string(stage)}

	var te *domain.TransportError
	if errors.As(err, &te) && isTimeout(te.Err) {
		return http.StatusGatewayTimeout, res
	}
	return http.StatusBadGateway, res
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

