package ports

import (
	"context"
	"iss-pass-service/internal/domain"
)

// Contract for discovering the caller's public IP address.
type IPResolver interface {
	// Return the public IP address of the machine making the request.
	ResolveIP(ctx context.Context) (domain.IPAddress, error)
}
