package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RegistrationsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "club_registrations_submitted_total",
	Help: "Number of accepted registration submissions",
}, []string{"payment_required"})

var CompetitionRegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "club_competition_registrations_created_total",
	Help: "Number of competition registrations created",
})

var RegistrationFeesTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "club_registration_fees_total",
	Help: "Sum of fees of all accepted registration submissions",
})

var RegistrationValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "club_registration_validation_failures_total",
	Help: "Rejected registration submissions by offending field",
}, []string{"field"})

var StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "club_registration_status_transitions_total",
	Help: "Competition registration rows moved to a status",
}, []string{"status", "scope"})

var ListenerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "club_registration_listener_failures_total",
	Help: "Failed deliveries of registration messages by listener",
}, []string{"listener"})

var FeedConnections = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "club_registration_feed_connections",
	Help: "Open admin websocket connections",
})

var QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
	Buckets: []float64{
		0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1, 2, 5,
	},
}, []string{"query"})
