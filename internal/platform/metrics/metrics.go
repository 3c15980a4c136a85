package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	lookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "isspass_lookup_total",
			Help: "Total number of lookup stage executions by outcome.",
		},
		[]string{"stage", "outcome"},
	)

	lookupDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "isspass_lookup_duration_seconds",
			Help:    "Lookup stage duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "isspass_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"route", "method", "code"},
	)
)

func init() {
	prometheus.MustRegister(lookupTotal)
	prometheus.MustRegister(lookupDurationSeconds)
	prometheus.MustRegister(httpRequestsTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveLookup records one stage execution.
func ObserveLookup(stage string, d time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	lookupTotal.WithLabelValues(stage, outcome).Inc()
	lookupDurationSeconds.WithLabelValues(stage).Observe(d.Seconds())
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// OtherRoute labels requests whose path is not one of the known routes.
const OtherRoute = "other"

// Middleware counts requests by route, method and status code. Paths not
// listed in routes share the OtherRoute label so unknown paths cannot grow
// the number of series.
func Middleware(next http.Handler, routes ...string) http.Handler {
	known := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		known[r] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := r.URL.Path
		if _, ok := known[route]; !ok {
			route = OtherRoute
		}
		httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(rw.statusCode)).Inc()
	})
}
