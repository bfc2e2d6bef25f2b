// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsite_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crewsite_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	LiveSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crewsite_live_subscribers",
			Help: "Currently registered live-update subscribers",
		},
	)

	BroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsite_broadcasts_total",
			Help: "Change notifications broadcast, by resource type",
		},
		[]string{"type"},
	)

	DroppedSubscribersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "crewsite_dropped_subscribers_total",
			Help: "Subscribers removed after a failed delivery",
		},
	)

	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsite_auth_attempts_total",
			Help: "Admin authentication attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	MailDeliveriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsite_mail_deliveries_total",
			Help: "Outbound email attempts by outcome",
		},
		[]string{"outcome"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crewsite_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
		[]string{"route"},
	)
)

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func RecordAuth(operation string, ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	AuthAttemptsTotal.WithLabelValues(operation, outcome).Inc()
}

func RecordMail(err error) {
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	MailDeliveriesTotal.WithLabelValues(outcome).Inc()
}
