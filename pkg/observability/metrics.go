package observability

import (
	"strconv"

	"github.com/aretw0/collage/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the coordinator's Prometheus collectors.
type Metrics struct {
	FramesRegistered prometheus.Counter
	FramesSwept      prometheus.Counter
	FramesLive       prometheus.Gauge
	Routes           *prometheus.CounterVec
	Interactions     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collage_frames_registered_total",
			Help: "Total number of frames registered with the coordinator",
		}),
		FramesSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collage_frames_swept_total",
			Help: "Total number of destroyed frames removed by the sweep",
		}),
		FramesLive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "collage_frames",
			Help: "Number of frames currently in the registry",
		}),
		Routes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collage_routes_total",
				Help: "Lifecycle operations by operation, target context and outcome",
			},
			[]string{"op", "context", "failed"},
		),
		Interactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collage_interactions_total",
				Help: "Slot interactions broadcast, by origin context",
			},
			[]string{"context"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.FramesRegistered, m.FramesSwept, m.FramesLive, m.Routes, m.Interactions)
	}
	return m
}

// Hooks returns coordinator hooks that record into m.
func (m *Metrics) Hooks() domain.CoordinatorHooks {
	return domain.CoordinatorHooks{
		OnFrameRegistered: func(e *domain.FrameEvent) {
			m.FramesRegistered.Inc()
			m.FramesLive.Inc()
		},
		OnFrameSwept: func(e *domain.FrameEvent) {
			m.FramesSwept.Inc()
			m.FramesLive.Dec()
		},
		OnRoute: func(e *domain.RouteEvent) {
			m.Routes.WithLabelValues(e.Op, e.Context.String(), strconv.FormatBool(e.Failed)).Inc()
		},
		OnInteraction: func(e *domain.InteractionEvent) {
			m.Interactions.WithLabelValues(e.Context.String()).Inc()
		},
	}
}
