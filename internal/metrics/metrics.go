package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samvad-hq/samvad-status-probe/internal/domain"
)

// Collector exposes probe outcomes as Prometheus metrics. It is safe for
// concurrent use.
type Collector struct {
	probesTotal   *prometheus.CounterVec
	probeDuration *prometheus.HistogramVec
	lastStatus    *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers the probe metrics on reg. A nil reg gets a private registry.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Collector{
		probesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statusprobe_probes_total",
				Help: "Total number of probes by outcome and error kind",
			},
			[]string{"probe", "outcome", "kind"},
		),
		probeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statusprobe_probe_duration_seconds",
				Help:    "Duration of probe exchanges in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"probe"},
		),
		lastStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "statusprobe_last_status_code",
				Help: "HTTP status code observed by the latest probe (0 when none)",
			},
			[]string{"probe"},
		),
		gatherer: reg,
	}
}

// Observe records a finished probe report.
func (c *Collector) Observe(report domain.Report) {
	if c == nil {
		return
	}
	kind := report.Kind
	if kind == "" {
		kind = "none"
	}
	c.probesTotal.WithLabelValues(report.ProbeID, string(report.Outcome), kind).Inc()
	c.probeDuration.WithLabelValues(report.ProbeID).Observe(time.Duration(report.ElapsedMs * int64(time.Millisecond)).Seconds())
	c.lastStatus.WithLabelValues(report.ProbeID).Set(float64(report.StatusCode))
}

// Handler serves the collector's registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// Server exposes /metrics and /health.
type Server struct {
	server *http.Server
}

// NewServer builds an HTTP server for the collector on addr.
func NewServer(c *Collector, addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return &Server{server: &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start blocks serving requests until Stop is called.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
