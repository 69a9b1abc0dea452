package v1

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the domain metrics of API v1. They must be registered
// by the router.
var Metrics = []prometheus.Collector{
	transactionsCreated,
	imports,
	healthScore,
}

var transactionsCreated = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fincoach_transactions_created_total",
		Help: "How many transactions were stored, partitioned by category.",
	},
	[]string{"category"},
)

var imports = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fincoach_imports_total",
		Help: "How many CSV imports were processed, partitioned by result.",
	},
	[]string{"result"},
)

var healthScore = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "fincoach_health_score",
		Help:    "The financial health scores returned by the dashboard.",
		Buckets: []float64{20, 40, 60, 80, 100},
	},
)
