package cgraph

import "log/slog"

// DefaultWeight is the weight of an edge whose source reports no weight.
const DefaultWeight = 1.0

type options struct {
	defaultWeight    float64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Compile. Options are captured at compile time and apply
// to every query of the resulting Graph.
type Option func(*options)

// WithDefaultWeight sets the weight used for edges the source reports without
// a weight. Default: 1.
func WithDefaultWeight(w float64) Option {
	return func(o *options) {
		o.defaultWeight = w
	}
}

// WithMetricsCollector configures a metrics collector for compile and query
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cgraph.BasicMetricsCollector{}
//	g, _ := cgraph.Compile(src, cgraph.WithMetricsCollector(metrics))
//	// ... run queries ...
//	stats := metrics.GetStats()
//	fmt.Println(stats.Queries[cgraph.QueryShortestPath].Count)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cgraph.NewJSONLogger(slog.LevelInfo)
//	g, _ := cgraph.Compile(src, cgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		defaultWeight:    DefaultWeight,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
