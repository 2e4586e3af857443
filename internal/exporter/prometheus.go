// Package exporter exposes the portfolio metric store in Prometheus exposition format.
package exporter

import (
	"net/http"

	"github.com/jonathan/csm-portfolio/internal/metrics"
	"github.com/jonathan/csm-portfolio/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// collector implements prometheus.Collector over the immutable store.
// Values are read on each scrape; the store never changes so no locking is needed.
type collector struct {
	store *metrics.Store

	metricValue   *prometheus.Desc
	categoryCount *prometheus.Desc
	categoryAvg   *prometheus.Desc
	trendingUp    *prometheus.Desc
	averageScore  *prometheus.Desc
}

func newCollector(store *metrics.Store) *collector {
	return &collector{
		store: store,
		metricValue: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "metric_value"),
			"Numeric value of a portfolio metric.",
			[]string{"id", "category", "unit"},
			nil,
		),
		categoryCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "category", "metrics"),
			"Number of metrics in a category.",
			[]string{"category"},
			nil,
		),
		categoryAvg: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "category", "average"),
			"Average of the numeric metric values in a category.",
			[]string{"category"},
			nil,
		),
		trendingUp: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "metrics", "trending_up"),
			"Number of metrics with an upward trend.",
			nil,
			nil,
		),
		averageScore: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "metrics", "average_score"),
			"Average of all numeric metric values.",
			nil,
			nil,
		),
	}
}

// Describe sends all descriptors.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.metricValue
	ch <- c.categoryCount
	ch <- c.categoryAvg
	ch <- c.trendingUp
	ch <- c.averageScore
}

// Collect emits one sample per numeric metric plus the summary gauges.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.store.All() {
		v, ok := m.Value.Number()
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.metricValue, prometheus.GaugeValue, v, m.ID, string(m.Category), m.Unit)
	}

	summary := c.store.Summary()
	for _, cat := range types.AllCategories() {
		stats, ok := summary.CategoryStats[cat]
		if !ok {
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.categoryCount, prometheus.GaugeValue, float64(stats.Count), string(cat))
		ch <- prometheus.MustNewConstMetric(c.categoryAvg, prometheus.GaugeValue, stats.Average, string(cat))
	}
	ch <- prometheus.MustNewConstMetric(c.trendingUp, prometheus.GaugeValue, float64(summary.TrendingUp))
	ch <- prometheus.MustNewConstMetric(c.averageScore, prometheus.GaugeValue, summary.AverageScore)
}

// Registry holds the Prometheus registry for one store.
type Registry struct {
	registry *prometheus.Registry
}

// NewRegistry creates a dedicated registry exposing the store plus Go runtime collectors.
func NewRegistry(store *metrics.Store) (*Registry, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(newCollector(store)); err != nil {
		return nil, err
	}
	if err := reg.Register(prometheus.NewGoCollector()); err != nil {
		return nil, err
	}
	return &Registry{registry: reg}, nil
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
