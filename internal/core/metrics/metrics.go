package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tracking_viewer"

// Fetch outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeDiscarded = "discarded"
)

// Registry owns the prometheus registry and the viewer's collectors.
// A nil *Registry is valid and records nothing.
type Registry struct {
	prom *prometheus.Registry

	fetchTotal       *prometheus.CounterVec
	fetchDuration    prometheus.Histogram
	viewsActive      prometheus.Gauge
	upstreamRequests *prometheus.CounterVec
}

// New creates a Registry with the Go and process collectors registered.
func New() (*Registry, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("registering go collector: %w", err)
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("registering process collector: %w", err)
	}

	r := &Registry{
		prom: reg,
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Tracking fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching tracking records from the worker.",
			Buckets:   prometheus.DefBuckets,
		}),
		viewsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "views_active",
			Help:      "Mounted views currently held by the web viewer.",
		}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Outbound HTTP requests by status code.",
		}, []string{"code"}),
	}

	for name, c := range map[string]prometheus.Collector{
		"fetch_total":             r.fetchTotal,
		"fetch_duration_seconds":  r.fetchDuration,
		"views_active":            r.viewsActive,
		"upstream_requests_total": r.upstreamRequests,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering %q: %w", name, err)
		}
	}

	return r, nil
}

// Handler returns an http.Handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prom, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// PrometheusRegistry returns the underlying registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prom
}

// ObserveFetch records one settled fetch.
func (r *Registry) ObserveFetch(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.fetchTotal.WithLabelValues(outcome).Inc()
	r.fetchDuration.Observe(d.Seconds())
}

// ObserveUpstream records an outbound request. code 0 means the transport failed.
func (r *Registry) ObserveUpstream(code int) {
	if r == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	r.upstreamRequests.WithLabelValues(label).Inc()
}

// SetViewsActive sets the mounted views gauge.
func (r *Registry) SetViewsActive(n int) {
	if r == nil {
		return
	}
	r.viewsActive.Set(float64(n))
}
