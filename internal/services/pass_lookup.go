package services

import (
	"context"
	"errors"
	"iss-pass-service/internal/domain"
	"iss-pass-service/internal/platform/metrics"
	"iss-pass-service/internal/platform/obs"
	"iss-pass-service/internal/ports"
	"time"
)

// PassLookup chains the three lookups: public IP, then coordinates for
// that IP, then upcoming passes for those coordinates.
//
// Stages run strictly in order on the caller's goroutine. The first failure
// ends the run and is returned exactly as the failing stage produced it.
// PassLookup holds no per-run state and is safe for concurrent use.
type PassLookup struct {
	ip     ports.IPResolver
	geo    ports.GeoResolver
	passes ports.PassScheduleResolver
}

func NewPassLookup(
	ip ports.IPResolver,
	geo ports.GeoResolver,
	passes ports.PassScheduleResolver,
) (*PassLookup, error) {
	if ip == nil || geo == nil || passes == nil {
		return nil, errors.New("new pass lookup: all resolvers are required")
	}

	return &PassLookup{ip: ip, geo: geo, passes: passes}, nil
}

// NextPassesForCurrentLocation returns the upcoming passes over the
// caller's approximate location. There is no partial result: either the
// full schedule or a single error.
func (p *PassLookup) NextPassesForCurrentLocation(ctx context.Context) (_ domain.PassSchedule, err error) {
	defer obs.Time(ctx, "passLookup.NextPassesForCurrentLocation")(&err)

	ip, err := runStage(domain.StageIP, func() (domain.IPAddress, error) {
		return p.ip.ResolveIP(ctx)
	})
	if err != nil {
		return nil, err
	}

	coords, err := runStage(domain.StageGeo, func() (domain.Coordinates, error) {
		return p.geo.ResolveCoordinates(ctx, ip)
	})
	if err != nil {
		return nil, err
	}

	passes, err := runStage(domain.StagePasses, func() (domain.PassSchedule, error) {
		return p.passes.ResolvePasses(ctx, coords)
	})
	if err != nil {
		return nil, err
	}

	return passes, nil
}

func runStage[T any](stage domain.Stage, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	metrics.ObserveLookup(string(stage), time.Since(start), err)
	return v, err
}
