package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server-level series. Per-strategy series (decmul_multiplications_total,
// decmul_multiplication_duration_seconds) live in the multiply package and
// are exposed by the same handler.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "decmul_active_requests",
		Help: "Requests currently being served",
	})
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "decmul_requests_total",
		Help: "Requests served, by path and status code",
	}, []string{"path", "code"})
	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "decmul_rate_limited_total",
		Help: "Requests rejected by the per-client rate limiter",
	})
)

// Metrics exposes the default Prometheus registry.
type Metrics struct {
	handler http.Handler
}

func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// WritePrometheus writes every registered series in text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activeRequests.Inc()
		defer activeRequests.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		requestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.status)).Inc()
	}
}
