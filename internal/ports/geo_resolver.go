package ports

import (
	"context"
	"iss-pass-service/internal/domain"
)

// Contract for turning an IP address into approximate coordinates.
type GeoResolver interface {
	// Return latitude and longitude for ip. Partial coordinates are never a success.
	ResolveCoordinates(ctx context.Context, ip domain.IPAddress) (domain.Coordinates, error)
}
