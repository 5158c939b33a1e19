// Package metrics declares the Prometheus collectors of the dashboard
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigndash_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	// RequestDuration is the latency of HTTP requests.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campaigndash_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	// QueriesTotal counts table evaluations by sort field and whether any
	// row matched.
	QueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigndash_table_queries_total",
			Help: "Total number of campaign table queries",
		},
		[]string{"sort", "result"},
	)
	// ExportsTotal counts export attempts by format and outcome.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigndash_exports_total",
			Help: "Total number of table exports",
		},
		[]string{"format", "result"},
	)
	// RecordsLoaded is the size of the record set currently served.
	RecordsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campaigndash_records_loaded",
			Help: "Number of campaign records in the loaded set",
		},
	)
)
