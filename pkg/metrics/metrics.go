// Package metrics exports codec activity as Prometheus metrics.
//
// Collector implements log.Logger, so it is attached to a codec like any
// other protocol logger:
//
//	reg := prometheus.NewRegistry()
//	c := codec.New(tbl, codec.WithProtocolLogger(metrics.New(metrics.WithRegistry(reg))))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/simwire/simwire-go/pkg/log"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "simwire").
	Namespace string

	// Subsystem is the metrics subsystem (default: "codec").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// SizeBuckets are the histogram buckets for message sizes in bytes.
	SizeBuckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithSizeBuckets sets the message size histogram buckets.
func WithSizeBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.SizeBuckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "simwire",
		Subsystem: "codec",
		// Datagrams are bounded by the MTU; the largest bucket catches
		// oversized reliable messages.
		SizeBuckets: []float64{8, 16, 32, 64, 128, 256, 512, 1024, 1500, 4096},
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Collector counts parsed and built messages, warnings and errors.
// It is safe for concurrent use.
type Collector struct {
	messages *prometheus.CounterVec
	sizes    *prometheus.HistogramVec
	warnings *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// New creates a Collector and registers its metrics.
func New(opts ...Option) *Collector {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "messages_total",
			Help:        "Messages parsed (in) or built (out), by template name",
			ConstLabels: cfg.ConstLabels,
		}, []string{"direction", "message"}),

		sizes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "message_size_bytes",
			Help:        "Encoded message size in bytes, header included",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.SizeBuckets,
		}, []string{"direction"}),

		warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "warnings_total",
			Help:        "Tolerated anomalies such as trailing bytes, by kind",
			ConstLabels: cfg.ConstLabels,
		}, []string{"direction", "kind"}),

		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "errors_total",
			Help:        "Failed parses (in) and builds (out), by error kind",
			ConstLabels: cfg.ConstLabels,
		}, []string{"direction", "kind"}),
	}
}

// Log records a protocol event.
func (c *Collector) Log(event log.Event) {
	dir := event.Direction.String()
	switch event.Category {
	case log.CategoryMessage:
		if event.Message == nil {
			return
		}
		c.messages.WithLabelValues(dir, event.Message.Name).Inc()
		c.sizes.WithLabelValues(dir).Observe(float64(event.Message.Size))
	case log.CategoryWarning:
		c.warnings.WithLabelValues(dir, kind(event)).Inc()
	case log.CategoryError:
		c.errors.WithLabelValues(dir, kind(event)).Inc()
	}
}

func kind(event log.Event) string {
	if event.Error == nil || event.Error.Kind == "" {
		return "Unknown"
	}
	return event.Error.Kind
}

// Compile-time interface satisfaction check.
var _ log.Logger = (*Collector)(nil)
