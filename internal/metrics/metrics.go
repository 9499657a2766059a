package metrics

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"net/http"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of logged errors by type and level.",
		},
		[]string{"type", "level"},
	)
	QueriesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_queries_total",
			Help: "Total number of executed queries by sort key.",
		},
		[]string{"sort"},
	)
	QueryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_query_duration_seconds",
			Help:    "Duration of each query in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)
	MatchedResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_query_matched_results",
			Help:    "Number of postings matched by a query before pagination.",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
	PostingsCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_postings_created_total",
			Help: "Total number of job postings created.",
		},
	)
	TogglesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_toggles_total",
			Help: "Total number of saved/applied toggles by kind and resulting state.",
		},
		[]string{"kind", "state"},
	)
	PostingsByCategory = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "jobboard_postings_by_category",
			Help: "Current number of postings per category.",
		},
		[]string{"category"},
	)
	FormValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_form_validation_failures_total",
			Help: "Total number of rejected form submissions by form.",
		},
		[]string{"form"},
	)
	ApplicationsRemoved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_removed_total",
			Help: "Total number of apply-log rows removed after the retention period.",
		},
	)
	CleanupRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_cleanup_runs_total",
			Help: "Total number of apply-log cleanup runs by result.",
		},
		[]string{"result"},
	)
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobboard_active_sessions",
			Help: "Number of sessions with live saved/applied trackers.",
		},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(QueriesCounter)
		prometheus.MustRegister(QueryDuration)
		prometheus.MustRegister(MatchedResults)
		prometheus.MustRegister(PostingsCreatedCounter)
		prometheus.MustRegister(TogglesCounter)
		prometheus.MustRegister(PostingsByCategory)
		prometheus.MustRegister(FormValidationFailures)
		prometheus.MustRegister(ApplicationsRemoved)
		prometheus.MustRegister(CleanupRuns)
		prometheus.MustRegister(ActiveSessions)
	})
}

// StartMetricsServer serves /metrics on addr until the returned server is shut down.
func StartMetricsServer(addr string) *http.Server {

	Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	return server
}
