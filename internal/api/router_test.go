package api

import (
	"context"
	"encoding/json"
	"errors"
	"iss-pass-service/internal/api/dto"
	"iss-pass-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type finderFunc func(ctx context.Context) (domain.PassSchedule, error)

func (f finderFunc) NextPassesForCurrentLocation(ctx context.Context) (domain.PassSchedule, error) {
	return f(ctx)
}

func serve(t *testing.T, finder finderFunc, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	NewRouter(finder).ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, nil, http.MethodGet, "/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestPassesSuccess(t *testing.T) {
	finder := func(ctx context.Context) (domain.PassSchedule, error) {
		return domain.PassSchedule{{RiseTime: 1000, Duration: 300}}, nil
	}

	rec := serve(t, finder, http.MethodGet, "/passes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected X-Request-ID response header")
	}

	var res dto.ListPassesResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Passes) != 1 {
		t.Fatalf("passes = %+v, want 1", res.Passes)
	}
	p := res.Passes[0]
	if p.RiseTime != 1000 || p.Duration != 300 {
		t.Fatalf("pass = %+v", p)
	}
	if !p.RiseAt.Equal(time.Unix(1000, 0)) {
		t.Fatalf("rise_at = %v", p.RiseAt)
	}
}

func TestPassesEmptyIsOK(t *testing.T) {
	finder := func(ctx context.Context) (domain.PassSchedule, error) {
		return domain.PassSchedule{}, nil
	}

	rec := serve(t, finder, http.MethodGet, "/passes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"passes":[]`) {
		t.Fatalf("body = %q, want empty passes array", rec.Body.String())
	}
}

func TestPassesErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantStage  string
	}{
		{"status error", domain.NewStatusError(domain.StageIP, 404, ""), http.StatusBadGateway, "ip"},
		{"upstream error", &domain.UpstreamError{Stage: domain.StageGeo, Message: "Reserved range"}, http.StatusBadGateway, "geo"},
		{"timeout", &domain.TransportError{Stage: domain.StagePasses, Err: context.DeadlineExceeded}, http.StatusGatewayTimeout, "passes"},
		{"rejected input", &domain.InputError{Stage: domain.StageGeo, Err: domain.ErrEmptyIP}, http.StatusBadGateway, "geo"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finder := func(ctx context.Context) (domain.PassSchedule, error) { return nil, tt.err }

			rec := serve(t, finder, http.MethodGet, "/passes")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var res dto.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if res.Stage != tt.wantStage {
				t.Fatalf("stage = %q, want %q", res.Stage, tt.wantStage)
			}
		})
	}
}

func TestPassesMethodNotAllowed(t *testing.T) {
	rec := serve(t, nil, http.MethodPost, "/passes")

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("Allow = %q", rec.Header().Get("Allow"))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(t, nil, http.MethodGet, "/metrics")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
