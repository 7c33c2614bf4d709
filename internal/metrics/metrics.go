package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/IdleRates_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculations,
			Help: HelpTextCalculations,
		},
		[]string{LabelActivity, LabelResult},
	)

	InferenceRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInferenceRuns,
			Help: HelpTextInferenceRuns,
		},
		[]string{LabelResult},
	)

	ProfileFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileFetches,
			Help: HelpTextProfileFetches,
		},
		[]string{LabelResult},
	)

	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelCache, LabelResult},
	)

	SelectionsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSelectionsRejected,
			Help: HelpTextSelectionsRejected,
		},
		[]string{LabelActivity},
	)

	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)
)

// ResultFromError maps an error to a result label value
func ResultFromError(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrClanNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrActivityNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrMalformedProfile):
		return ResultMalformed
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidSelection):
		return ResultInvalid
	}
	return ResultError
}
