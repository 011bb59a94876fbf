// Package metrics exposes Prometheus counters for routing and the token ledger.
package metrics

import (
	"net/http"
	"strconv"

	"reclaim/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "reclaim"

// Collector owns a private registry so tests can build as many as they like.
type Collector struct {
	registry *prometheus.Registry

	awards          *prometheus.CounterVec
	tokensAwarded   *prometheus.CounterVec
	milestones      *prometheus.CounterVec
	routes          *prometheus.CounterVec
	routeStops      prometheus.Histogram
	routeDistanceKm prometheus.Histogram
}

var _ service.MetricsRecorder = (*Collector)(nil)

func NewCollector() (*Collector, error) {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		awards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_awards_total",
			Help:      "Token award attempts by source and outcome.",
		}, []string{"source", "success"}),
		tokensAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_awarded_total",
			Help:      "Sum of positive token amounts written to the ledger.",
		}, []string{"source"}),
		milestones: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "milestones_awarded_total",
			Help:      "Milestone bonuses granted.",
		}, []string{"milestone"}),
		routes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "route_optimizations_total",
			Help:      "Routes optimized by resolved strategy.",
		}, []string{"strategy"}),
		routeStops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_stops",
			Help:      "Number of stops per optimized route.",
			Buckets:   []float64{1, 2, 5, 10, 15, 20, 25},
		}),
		routeDistanceKm: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_distance_kilometers",
			Help:      "Total distance per optimized route.",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
	}

	for _, col := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.awards, c.tokensAwarded, c.milestones, c.routes, c.routeStops, c.routeDistanceKm,
	} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Wrap(err, "register collector")
		}
	}

	return c, nil
}

func (c *Collector) ObserveAward(source string, amount int64, success bool) {
	if c == nil {
		return
	}
	c.awards.WithLabelValues(source, strconv.FormatBool(success)).Inc()
	if success && amount > 0 {
		c.tokensAwarded.WithLabelValues(source).Add(float64(amount))
	}
}

func (c *Collector) ObserveMilestone(key string) {
	if c == nil {
		return
	}
	c.milestones.WithLabelValues(key).Inc()
}

func (c *Collector) ObserveRoute(strategy string, stops int, distanceMeters float64) {
	if c == nil {
		return
	}
	c.routes.WithLabelValues(strategy).Inc()
	c.routeStops.Observe(float64(stops))
	c.routeDistanceKm.Observe(distanceMeters / 1000)
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewCollector,
		func(c *Collector) service.MetricsRecorder { return c },
	),
)
