package ports

import (
	"context"
	"iss-pass-service/internal/domain"
)

// Contract for retrieving upcoming overhead passes for a location.
type PassScheduleResolver interface {
	// Return upcoming passes in upstream order. An empty schedule is not an error.
	ResolvePasses(ctx context.Context, coords domain.Coordinates) (domain.PassSchedule, error)
}
