package store

import "github.com/prometheus/client_golang/prometheus"

var (
	storeWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "housepriced",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Prediction record writes by backend and result (ok, error, rejected)",
		},
		[]string{"backend", "result"},
	)

	storeBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "housepriced",
			Subsystem: "store",
			Name:      "breaker_state",
			Help:      "Store circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"backend"},
	)
)

func init() {
	prometheus.MustRegister(storeWritesTotal, storeBreakerState)
}
