// Package metrics counts view-state transitions with prometheus.
package metrics

import (
	"fmt"
	"io"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"scaffolding/internal/domain"
	domaintypes "scaffolding/internal/domain/types"
)

const namespace = "scaffolding"

// Collector records one sample per axis transition.
type Collector struct {
	transitions *prometheus.CounterVec
	sessions    prometheus.Counter
}

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "home",
			Name:      "axis_transitions_total",
			Help:      "View state axis transitions by axis and resulting status.",
		}, []string{"axis", "status"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "home",
			Name:      "sessions_total",
			Help:      "Home screen sessions observed.",
		}),
	}
	for _, m := range []prometheus.Collector{c.transitions, c.sessions} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return c, nil
}

// Observer returns a subscriber for one session. It assumes the session
// starts in the initial all-Loading state, so it must be attached before the
// producers run (home.WithSubscriber).
func (c *Collector) Observer() func(domain.HomeState) {
	c.sessions.Inc()

	var mu sync.Mutex
	prev := domaintypes.InitialHomeState()
	return func(next domain.HomeState) {
		mu.Lock()
		last := prev
		prev = next
		mu.Unlock()

		if s := next.Greeting.Status(); s != last.Greeting.Status() {
			c.transitions.WithLabelValues("greeting", s.String()).Inc()
		}
		if s := next.Records.Status(); s != last.Records.Status() {
			c.transitions.WithLabelValues("records", s.String()).Inc()
		}
	}
}

// Transitions returns the counter for one axis/status pair.
func (c *Collector) Transitions(axis string, status domaintypes.Status) prometheus.Counter {
	return c.transitions.WithLabelValues(axis, status.String())
}

// WriteText dumps everything g gathers in the prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
