package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Booking attempt outcomes.
const (
	OutcomeAccepted    = "accepted"
	OutcomeUnavailable = "unavailable"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

// Availability search results.
const (
	SearchFound   = "found"
	SearchNone    = "none"
	SearchInvalid = "invalid"
	SearchError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hotel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_booking_attempts_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	AvailabilitySearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_availability_searches_total",
			Help: "Free room searches by result",
		},
		[]string{"result"},
	)

	OccupancyQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hotel_occupancy_queries_total",
			Help: "Total number of fully occupied date queries",
		},
	)

	BookingEventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hotel_booking_events_published_total",
			Help: "Booking events pushed to the event queue",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBookingAttempt(outcome string) {
	BookingAttemptsTotal.WithLabelValues(outcome).Inc()
}

func RecordAvailabilitySearch(result string) {
	AvailabilitySearchesTotal.WithLabelValues(result).Inc()
}

func RecordOccupancyQuery() {
	OccupancyQueriesTotal.Inc()
}

func RecordBookingEvent(status string) {
	BookingEventsPublishedTotal.WithLabelValues(status).Inc()
}
