package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "housepriced",
			Name:      "predictions_total",
			Help:      "Predictions served by source and price band",
		},
		[]string{"source", "category"},
	)

	predictionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "housepriced",
			Name:      "prediction_duration_seconds",
			Help:      "Time spent evaluating the three models",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
	)
)

func init() {
	prometheus.MustRegister(predictionsTotal, predictionDuration)
}
