package freud

import "log/slog"

type options struct {
	symmetry         int
	neighbors        int
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures engine construction.
type Option func(*options)

// WithSymmetry sets the symmetry order k of the phase factor exp(i k theta).
// Six-fold (the hexatic case) is the default; four-fold scores square
// order, and so on.
func WithSymmetry(k int) Option {
	return func(o *options) {
		o.symmetry = k
	}
}

// WithNeighbors sets how many nearest neighbors each particle is scored
// against. It is also the normalization divisor, so |psi| stays within
// [0, 1] regardless of how many bonds contribute.
//
// When unset, the neighbor count follows the symmetry order.
func WithNeighbors(n int) Option {
	return func(o *options) {
		o.neighbors = n
	}
}

// WithWorkers bounds the number of goroutines a compute pass may use.
// Zero (the default) means GOMAXPROCS; one forces a serial pass.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &freud.BasicMetricsCollector{}
//	engine, _ := freud.NewHexatic(2.0, freud.WithMetricsCollector(metrics))
//	// ... compute ...
//	stats := metrics.GetStats()
//	fmt.Printf("passes: %d, avg latency: %dns\n", stats.ComputeCount, stats.ComputeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := freud.NewJSONLogger(slog.LevelInfo)
//	engine, _ := freud.NewHexatic(2.0, freud.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
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
		symmetry:         DefaultSymmetry,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.neighbors == 0 {
		o.neighbors = o.symmetry
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
