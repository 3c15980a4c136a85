package app

import (
	"fmt"
	"iss-pass-service/internal/adapters/lookup"
	"iss-pass-service/internal/config"
	"iss-pass-service/internal/services"
	"net/http"
)

// Components are the concrete resolvers and the orchestrator built from them.
type Components struct {
	IP     *lookup.IPifyResolver
	Geo    *lookup.IPWhoisResolver
	Passes *lookup.FlyoverResolver
	Lookup *services.PassLookup
}

// Build wires concrete adapters behind the ports. All resolvers share a
// single http.Client configured with the configured timeout.
func Build(cfg config.Config) (*Components, error) {
	session := &http.Client{Timeout: cfg.HTTPTimeout}

	ip, err := lookup.NewIPifyResolver(session, cfg.IPServiceURL)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	geo, err := lookup.NewIPWhoisResolver(session, cfg.GeoServiceURL)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	passes, err := lookup.NewFlyoverResolver(session, cfg.PassServiceURL)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	pl, err := services.NewPassLookup(ip, geo, passes)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	return &Components{IP: ip, Geo: geo, Passes: passes, Lookup: pl}, nil
}
