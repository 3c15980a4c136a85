package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultIPServiceURL   = "https://api.ipify.org"
	DefaultGeoServiceURL  = "http://ipwho.is"
	DefaultPassServiceURL = "https://iss-flyover.herokuapp.com"
	DefaultHTTPTimeout    = 10 * time.Second
	DefaultPort           = "8080"
)

// Config holds the lookup endpoints and server settings.
// Values come from defaults, then an optional TOML file, then the environment.
type Config struct {
	IPServiceURL   string        `toml:"ip_service_url"`
	GeoServiceURL  string        `toml:"geo_service_url"`
	PassServiceURL string        `toml:"pass_service_url"`
	HTTPTimeout    time.Duration `toml:"http_timeout"`
	Port           string        `toml:"port"`
}

func Default() Config {
	return Config{
		IPServiceURL:   DefaultIPServiceURL,
		GeoServiceURL:  DefaultGeoServiceURL,
		PassServiceURL: DefaultPassServiceURL,
		HTTPTimeout:    DefaultHTTPTimeout,
		Port:           DefaultPort,
	}
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load builds a Config. A missing file at path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: decode %q: %w", path, err)
		}
	}

	cfg.IPServiceURL = Get("IP_SERVICE_URL", cfg.IPServiceURL)
	cfg.GeoServiceURL = Get("GEO_SERVICE_URL", cfg.GeoServiceURL)
	cfg.PassServiceURL = Get("PASS_SERVICE_URL", cfg.PassServiceURL)
	cfg.Port = Get("PORT", cfg.Port)

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: parse HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	endpoints := []struct {
		name  string
		value string
	}{
		{"ip_service_url", c.IPServiceURL},
		{"geo_service_url", c.GeoServiceURL},
		{"pass_service_url", c.PassServiceURL},
	}

	for _, e := range endpoints {
		u, err := url.Parse(e.value)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s: %q is not an absolute http(s) url", e.name, e.value)
		}
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive, got %s", c.HTTPTimeout)
	}

	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must be non-empty")
	}

	return nil
}
