package lookup

import (
	"context"
	"errors"
	"iss-pass-service/internal/domain"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"strings"
	"testing"
)

func newIPWhoisForTest(t *testing.T, h http.HandlerFunc) *IPWhoisResolver {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	r, err := NewIPWhoisResolver(server.Client(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestIPWhoisResolveCoordinates(t *testing.T) {
	var gotPath string
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		gotPath = req.URL.Path
		w.Write([]byte(`{"ip":"1.2.3.4","success":true,"latitude":10.0,"longitude":20.0}`))
	})

	coords, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/1.2.3.4" {
		t.Fatalf("path = %q, want /1.2.3.4", gotPath)
	}
	if coords != (domain.Coordinates{Lat: 10.0, Lon: 20.0}) {
		t.Fatalf("coords = %+v", coords)
	}

	again, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")
	if err != nil || again != coords {
		t.Fatalf("second call = (%+v, %v), want (%+v, nil)", again, err, coords)
	}
}

func TestIPWhoisWithoutSuccessFlag(t *testing.T) {
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"latitude":-33.8688,"longitude":151.2093}`))
	})

	coords, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != -33.8688 || coords.Lon != 151.2093 {
		t.Fatalf("coords = %+v", coords)
	}
}

func TestIPWhoisSuccessFalseIsUpstreamError(t *testing.T) {
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"ip":"10.0.0.1","success":false,"message":"Reserved range"}`))
	})

	_, err := r.ResolveCoordinates(context.Background(), "10.0.0.1")

	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if ue.Message != "Reserved range" {
		t.Fatalf("message = %q, want Reserved range", ue.Message)
	}
}

func TestIPWhoisStatusErrorCarriesMessage(t *testing.T) {
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"success":false,"message":"You've hit the monthly limit"}`))
	})

	_, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")

	var se *domain.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if se.Code != http.StatusTooManyRequests {
		t.Fatalf("code = %d, want 429", se.Code)
	}
	if se.Message != "You've hit the monthly limit" {
		t.Fatalf("message = %q", se.Message)
	}
}

func TestIPWhoisStatusErrorWithoutJSONBody(t *testing.T) {
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")

	var se *domain.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if se.Message != "" {
		t.Fatalf("message = %q, want empty", se.Message)
	}
}

func TestIPWhoisParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed json", `not json`, ""},
		{"missing latitude", `{"success":true,"longitude":20.0}`, "latitude"},
		{"missing longitude", `{"success":true,"latitude":10.0}`, "longitude"},
		{"null latitude", `{"latitude":null,"longitude":20.0}`, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
				w.Write([]byte(tt.body))
			})

			coords, err := r.ResolveCoordinates(context.Background(), "1.2.3.4")

			var pe *domain.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %T: %v", err, err)
			}
			if coords != (domain.Coordinates{}) {
				t.Fatalf("expected zero coordinates on failure, got %+v", coords)
			}
			if tt.field != "" && !strings.Contains(err.Error(), tt.field) {
				t.Fatalf("error %q does not name field %q", err.Error(), tt.field)
			}
		})
	}
}

func TestIPWhoisEmptyIP(t *testing.T) {
	called := false
	r := newIPWhoisForTest(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	_, err := r.ResolveCoordinates(context.Background(), "")
	if !errors.Is(err, domain.ErrEmptyIP) {
		t.Fatalf("expected ErrEmptyIP, got %v", err)
	}
	if stage, ok := domain.StageOf(err); !ok || stage != domain.StageGeo {
		t.Fatalf("StageOf = (%q, %v), want geo", stage, ok)
	}
	if called {
		t.Fatal("no request should be issued for an empty ip")
	}
}

func TestIPWhoisTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	url := server.URL
	server.Close()

	r, err := NewIPWhoisResolver(nil, url)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = r.ResolveCoordinates(context.Background(), "1.2.3.4")

	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
	if te.Stage != domain.StageGeo {
		t.Fatalf("stage = %q, want geo", te.Stage)
	}
	var ue *neturl.Error
	if !errors.As(te.Unwrap(), &ue) {
		t.Fatalf("expected the client's *url.Error as cause, got %T", te.Unwrap())
	}
}
