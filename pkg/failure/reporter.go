package failure

import (
	"digital.vasic.assertions/pkg/logging"
	"digital.vasic.assertions/pkg/metrics"
	"digital.vasic.assertions/pkg/representation"
)

// Reporter receives the descriptor of every failed assertion. It
// must return a non-nil error; the verb that called it returns
// that error unchanged. Reporters are called at most once per verb
// invocation and never for a passing check.
type Reporter interface {
	Failure(info Info, d Descriptor) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(info Info, d Descriptor) error

// Failure calls f.
func (f ReporterFunc) Failure(info Info, d Descriptor) error {
	return f(info, d)
}

// Failures is the default Reporter. It renders the descriptor into
// an *AssertionError, logs it, and records it in metrics.
type Failures struct {
	logger  logging.Logger
	metrics metrics.AssertionMetrics
	diff    *bool
}

// Option configures Failures.
type Option func(*Failures)

// WithLogger sets the logger that receives one debug entry per
// failure.
func WithLogger(logger logging.Logger) Option {
	return func(f *Failures) {
		f.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.AssertionMetrics) Option {
	return func(f *Failures) {
		f.metrics = m
	}
}

// WithDiff toggles unified diffs in equality messages. It takes
// precedence over the Diff setting of the Info's representation.
func WithDiff(enabled bool) Option {
	return func(f *Failures) {
		f.diff = &enabled
	}
}

// NewFailures creates a Failures reporter.
func NewFailures(opts ...Option) *Failures {
	f := &Failures{
		logger:  logging.NullLogger{},
		metrics: metrics.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Failure renders d and returns it as an *AssertionError.
func (f *Failures) Failure(info Info, d Descriptor) error {
	err := &AssertionError{
		Info:       info,
		Descriptor: d,
		Message:    d.Message(info.Repr(), f.showDiff(info.Repr())),
	}

	f.metrics.RecordFailure(d.Kind.String(), d.StrategyName())
	f.logger.Debug("assertion failed",
		logging.StringField("kind", d.Kind.String()),
		logging.StringField("category", string(d.Kind.Category())),
		logging.StringField("strategy", d.StrategyName()),
		logging.StringField("description", info.Description),
	)

	return err
}

// configured is implemented by representations that carry a
// representation.Config, such as *representation.Standard.
type configured interface {
	Config() representation.Config
}

// showDiff resolves the diff setting: WithDiff first, then the
// representation's config, then on.
func (f *Failures) showDiff(repr representation.Representation) bool {
	if f.diff != nil {
		return *f.diff
	}
	if c, ok := repr.(configured); ok {
		return c.Config().Diff
	}
	return true
}
