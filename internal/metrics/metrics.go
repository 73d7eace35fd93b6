package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Rate sync engine
	RateUpsertsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_upserts_total",
			Help: "Total canonical yield rate upserts",
		},
	)
	PropagationAccounts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propagation_accounts_total",
			Help: "Accounts seen by rate propagation",
		},
		[]string{"outcome"}, // updated|skipped|failed
	)
	PropagationRuns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "propagation_runs_total",
			Help: "Total propagation runs",
		},
	)

	// Projections
	ProjectionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projections_total",
			Help: "Total projection computations served",
		},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RateUpsertsTotal)
	prometheus.MustRegister(PropagationAccounts)
	prometheus.MustRegister(PropagationRuns)
	prometheus.MustRegister(ProjectionsTotal)
	prometheus.MustRegister(WorkerQueueDepth)
}
