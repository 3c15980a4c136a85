package ports

import (
	"context"
	"iss-pass-service/internal/domain"
)

// Contract for finding upcoming passes over the current location.
type PassFinder interface {
	NextPassesForCurrentLocation(ctx context.Context) (domain.PassSchedule, error)
}
