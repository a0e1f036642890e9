package motion

import (
	"time"

	"go.uber.org/zap"
)

// DefaultTransitionDuration is used when neither a scope nor Config gives a
// duration.
const DefaultTransitionDuration = 0.25

// Config holds the Animator's process-wide settings.
type Config struct {
	// DefaultDuration replaces missing or non-positive durations. Zero means
	// DefaultTransitionDuration.
	DefaultDuration float64

	// Clock returns the current absolute time in seconds. Defaults to a
	// monotonic clock started when the Animator is created.
	Clock func() float64

	// Logger receives usage warnings and, in debug mode, registrations.
	// Defaults to a warn-level console logger on stderr.
	Logger *zap.Logger

	// Metrics, when non-nil, records scope and animation counters.
	Metrics *Metrics

	// Events, when non-nil, receives completion events of every scope that
	// has a completion callback.
	Events EventSink

	// Debug logs every scope and registration at debug level.
	Debug bool

	// level controls the default logger; nil for a caller-supplied Logger.
	level *zap.AtomicLevel
}

func (c Config) withDefaults() Config {
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = DefaultTransitionDuration
	}
	if c.Clock == nil {
		epoch := time.Now()
		c.Clock = func() float64 { return time.Since(epoch).Seconds() }
	}
	if c.Logger == nil {
		logger, level := newDefaultLogger(c.Debug)
		c.Logger, c.level = logger, &level
	}
	return c
}
