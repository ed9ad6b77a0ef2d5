package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes loop counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	frames   prometheus.Counter
	jumps    prometheus.Counter
	landings prometheus.Counter
	step     prometheus.Histogram
}

// NewMetrics creates the loop metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "frames_total",
			Help:      "Game loop iterations.",
		}),
		jumps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "jumps_total",
			Help:      "Jump impulses applied to the body.",
		}),
		landings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "platformer",
			Name:      "landings_total",
			Help:      "Transitions from airborne to resting.",
		}),
		step: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "platformer",
			Name:      "physics_step_seconds",
			Help:      "Time spent in one physics step.",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4},
		}),
	}
	reg.MustRegister(m.frames, m.jumps, m.landings, m.step)
	return m
}

func (m *Metrics) incFrames() {
	if m == nil {
		return
	}
	m.frames.Inc()
}

func (m *Metrics) addJumps(n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.jumps.Add(float64(n))
}

func (m *Metrics) addLandings(n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.landings.Add(float64(n))
}

func (m *Metrics) observeStep(d time.Duration) {
	if m == nil {
		return
	}
	m.step.Observe(d.Seconds())
}
