// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of predictions served per app",
		},
		[]string{"app"},
	)

	PredictionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_failures_total",
			Help: "Total number of failed prediction requests per app",
		},
		[]string{"app", "error_code"},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "prediction_duration_seconds",
			Help: "Duration of the prediction pipeline in seconds",
		},
		[]string{"app"},
	)

	ModelsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "models_loaded",
			Help: "Whether the app's model artifact was loaded at startup (1/0)",
		},
		[]string{"app"},
	)
)
