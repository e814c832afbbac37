package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Renders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powering_renders_total",
			Help: "Total number of marker renders, by filter kind (all, company, unknown)",
		},
		[]string{"filter_kind"},
	)

	ChatResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powering_chat_responses_total",
			Help: "Total number of canned chat responses, by matched place (none when the fallback was used)",
		},
		[]string{"place"},
	)

	DatasetLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "powering_dataset_loads_total",
			Help: "Total number of dataset load attempts, by result",
		},
		[]string{"result"},
	)

	LocationsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "powering_locations_loaded",
			Help: "Number of location records currently resident",
		},
	)

	ChatSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "powering_chat_sessions",
			Help: "Number of open WebSocket chat sessions",
		},
	)
)
