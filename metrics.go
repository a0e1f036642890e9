package motion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts animation activity. A nil *Metrics records nothing.
type Metrics struct {
	// Scopes entered through Animate or Prepare.
	Scopes prometheus.Counter

	// Groups registered on targets, by mode ("additive" or "basic").
	Animations *prometheus.CounterVec

	// Keys removed because of ReplacingSameKey.
	Replaced prometheus.Counter

	// Completion callbacks fired, by state.
	Completions *prometheus.CounterVec

	// Usage warnings, by kind.
	Warnings *prometheus.CounterVec
}

// NewMetrics creates the animation metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Scopes: f.NewCounter(prometheus.CounterOpts{
			Name: "motion_scopes_total",
			Help: "Total animation scopes entered",
		}),
		Animations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "motion_animations_total",
			Help: "Total animation groups registered on targets by mode",
		}, []string{"mode"}),
		Replaced: f.NewCounter(prometheus.CounterOpts{
			Name: "motion_replaced_animations_total",
			Help: "Total animations removed to make room for a same-key replacement",
		}),
		Completions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "motion_completions_total",
			Help: "Total scope completion callbacks fired by state",
		}, []string{"state"}),
		Warnings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "motion_warnings_total",
			Help: "Total usage warnings by kind",
		}, []string{"kind"}),
	}
}

func (m *Metrics) incScope() {
	if m != nil {
		m.Scopes.Inc()
	}
}

func (m *Metrics) incAnimation(additive bool) {
	if m != nil {
		mode := "basic"
		if additive {
			mode = "additive"
		}
		m.Animations.WithLabelValues(mode).Inc()
	}
}

func (m *Metrics) addReplaced(n int) {
	if m != nil && n > 0 {
		m.Replaced.Add(float64(n))
	}
}

func (m *Metrics) incCompletion(state CompletionState) {
	if m != nil {
		m.Completions.WithLabelValues(state.String()).Inc()
	}
}

func (m *Metrics) incWarning(kind string) {
	if m != nil {
		m.Warnings.WithLabelValues(kind).Inc()
	}
}
