// Package prometheus provides the studio's metrics registry and the typed
// metric set recorded by the prediction pipeline.  Components depend on the
// MetricsCollector interface rather than the prometheus client directly so
// that tests can run against a fresh registry.
package prometheus

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the registration surface handed to application
// components.
type MetricsCollector interface {
	RegisterCounter(name, help string, labels ...string) *prometheus.CounterVec
	RegisterHistogram(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec
	Handler() http.Handler
}

// CollectorConfig holds configuration for the collector.
type CollectorConfig struct {
	Namespace            string
	EnableProcessMetrics bool
	EnableGoMetrics      bool
	ConstLabels          map[string]string
}

type collector struct {
	registry *prometheus.Registry
	config   CollectorConfig
	mu       sync.Mutex
	metrics  map[string]prometheus.Collector
}

// NewMetricsCollector creates a MetricsCollector backed by its own registry.
func NewMetricsCollector(cfg CollectorConfig) (MetricsCollector, error) {
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("prometheus: namespace is required")
	}

	registry := prometheus.NewRegistry()
	if cfg.EnableProcessMetrics {
		registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{
			Namespace: cfg.Namespace,
		}))
	}
	if cfg.EnableGoMetrics {
		registry.MustRegister(prometheus.NewGoCollector())
	}

	return &collector{
		registry: registry,
		config:   cfg,
		metrics:  make(map[string]prometheus.Collector),
	}, nil
}

func (c *collector) RegisterCounter(name, help string, labels ...string) *prometheus.CounterVec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.metrics[name]; ok {
		return existing.(*prometheus.CounterVec)
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.config.Namespace,
		Name:        name,
		Help:        help,
		ConstLabels: c.config.ConstLabels,
	}, labels)
	c.registry.MustRegister(vec)
	c.metrics[name] = vec
	return vec
}

func (c *collector) RegisterHistogram(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.metrics[name]; ok {
		return existing.(*prometheus.HistogramVec)
	}
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   c.config.Namespace,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: c.config.ConstLabels,
	}, labels)
	c.registry.MustRegister(vec)
	c.metrics[name] = vec
	return vec
}

func (c *collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
