/*
Package observability wires engine lifecycle events into Prometheus.

Metrics carries the collectors; Hooks converts them into salescoach.Hooks so
any frontend (HTTP server, CLI) can attach them with one call.
*/
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	salescoach "github.com/nsfeld/salescoach"
	"github.com/nsfeld/salescoach/pkg/domain"
	"github.com/nsfeld/salescoach/pkg/ports"
)

// Metrics holds the Prometheus collectors for the training engine.
type Metrics struct {
	Turns     *prometheus.CounterVec
	Completed *prometheus.CounterVec
	Fallbacks *prometheus.CounterVec
	Overall   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salescoach_turns_total",
				Help: "Total number of processed training turns",
			},
			[]string{"module"},
		),
		Completed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salescoach_sessions_completed_total",
				Help: "Total number of sessions that reached a terminal stage",
			},
			[]string{"module", "grade"},
		),
		Fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "salescoach_persona_fallbacks_total",
				Help: "Persona replies served by the deterministic fallback",
			},
			[]string{"role"},
		),
		Overall: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "salescoach_turn_overall_score",
				Help:    "Per-turn overall score distribution (0-10)",
				Buckets: prometheus.LinearBuckets(0, 1, 11),
			},
			[]string{"module"},
		),
	}
	reg.MustRegister(m.Turns, m.Completed, m.Fallbacks, m.Overall)
	return m
}

// Hooks adapts the collectors to the engine hook points.
func (m *Metrics) Hooks() salescoach.Hooks {
	return salescoach.Hooks{
		OnTurn: func(moduleID string, _ domain.ScoreVector, overall float64) {
			m.Turns.WithLabelValues(moduleID).Inc()
			m.Overall.WithLabelValues(moduleID).Observe(overall)
		},
		OnCompleted: func(moduleID string, grade domain.Grade) {
			m.Completed.WithLabelValues(moduleID, grade.Letter).Inc()
		},
		OnFallback: func(role ports.PersonaRole) {
			m.Fallbacks.WithLabelValues(string(role)).Inc()
		},
	}
}
