package decoys

import (
	"sync"

	"github.com/bsv-blockchain/ringselect/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	prometheusSampleCandidates   prometheus.Histogram
	prometheusSelectInput        prometheus.Histogram
	prometheusSelectInputs       prometheus.Histogram
	prometheusRejectedCandidates *prometheus.CounterVec
	prometheusNodeDishonest      prometheus.Counter
	prometheusSamplingExhausted  prometheus.Counter
	prometheusInsufficientDecoys prometheus.Counter
	prometheusRingsBuilt         prometheus.Counter
)

var prometheusMetricsInitOnce sync.Once

func initPrometheusMetrics() {
	prometheusMetricsInitOnce.Do(_initPrometheusMetrics)
}

func _initPrometheusMetrics() {
	prometheusSampleCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "sample_candidates",
			Help:      "Histogram of candidate sampling",
			Buckets:   util.MetricsBucketsMicroSeconds,
		},
	)

	prometheusSelectInput = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "select_input",
			Help:      "Histogram of ring selection for a single input, node round trips included",
			Buckets:   util.MetricsBucketsMilliSeconds,
		},
	)

	prometheusSelectInputs = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "select_inputs",
			Help:      "Histogram of ring selection for all inputs of a transaction",
			Buckets:   util.MetricsBucketsMilliLongSeconds,
		},
	)

	prometheusRejectedCandidates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "rejected_candidates",
			Help:      "Number of candidates excluded from the decoy pool",
		},
		[]string{"reason"},
	)

	prometheusNodeDishonest = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "node_dishonest",
			Help:      "Number of node responses rejected as dishonest or malformed",
		},
	)

	prometheusSamplingExhausted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "sampling_exhausted",
			Help:      "Number of times the sampler hit its iteration cap",
		},
	)

	prometheusInsufficientDecoys = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "insufficient_decoys",
			Help:      "Number of rings that could not be filled from the verified pool",
		},
	)

	prometheusRingsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ringselect",
			Subsystem: "decoys",
			Name:      "rings_built",
			Help:      "Number of rings assembled",
		},
	)
}
