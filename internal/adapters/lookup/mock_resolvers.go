package lookup

import (
	"context"
	"iss-pass-service/internal/domain"
)

// MockIPResolver returns a fixed IP or error. OnCall, when set, is invoked
// before the result is returned.
type MockIPResolver struct {
	IP     domain.IPAddress
	Err    error
	OnCall func(stage domain.Stage)
}

func (m *MockIPResolver) ResolveIP(ctx context.Context) (domain.IPAddress, error) {
	if m.OnCall != nil {
		m.OnCall(domain.StageIP)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.IP, nil
}

// MockGeoResolver maps IP addresses to coordinates.
type MockGeoResolver struct {
	Coords map[domain.IPAddress]domain.Coordinates
	Err    error
	OnCall func(stage domain.Stage)
}

func (m *MockGeoResolver) ResolveCoordinates(ctx context.Context, ip domain.IPAddress) (domain.Coordinates, error) {
	if m.OnCall != nil {
		m.OnCall(domain.StageGeo)
	}
	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}
	c, ok := m.Coords[ip]
	if !ok {
		return domain.Coordinates{}, &domain.UpstreamError{Stage: domain.StageGeo, Message: "unknown ip " + ip.String()}
	}
	return c, nil
}

// MockPassScheduleResolver maps coordinates to pass schedules.
type MockPassScheduleResolver struct {
	Passes map[domain.Coordinates]domain.PassSchedule
	Err    error
	OnCall func(stage domain.Stage)
}

func (m *MockPassScheduleResolver) ResolvePasses(ctx context.Context, coords domain.Coordinates) (domain.PassSchedule, error) {
	if m.OnCall != nil {
		m.OnCall(domain.StagePasses)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Passes[coords]
	if !ok {
		return nil, &domain.UpstreamError{Stage: domain.StagePasses, Message: "no passes for coordinates"}
	}
	out := make(domain.PassSchedule, len(p))
	copy(out, p)
	return out, nil
}
