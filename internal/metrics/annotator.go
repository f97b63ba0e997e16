package metrics

import "github.com/prometheus/client_golang/prometheus"

// Annotator Prometheus metrics.
var (
	AnnotatorRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexmatch",
			Name:      "annotator_requests_total",
			Help:      "Total number of annotation requests",
		},
		[]string{"provider", "status"},
	)

	AnnotatorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lexmatch",
			Name:      "annotator_request_duration_seconds",
			Help:      "Annotation request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	AnnotatorErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexmatch",
			Name:      "annotator_errors_total",
			Help:      "Total annotation errors",
		},
		[]string{"provider", "error_type"},
	)

	AnnotationCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lexmatch",
			Name:      "annotation_cache_total",
			Help:      "Annotation cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var annotatorMetricsRegistered bool

// RegisterAnnotatorMetrics registers Prometheus annotator metrics. Must be called once from main.
func RegisterAnnotatorMetrics() {
	if annotatorMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnnotatorRequestsTotal)
	prometheus.MustRegister(AnnotatorRequestDuration)
	prometheus.MustRegister(AnnotatorErrorsTotal)
	prometheus.MustRegister(AnnotationCacheTotal)
	annotatorMetricsRegistered = true
}
