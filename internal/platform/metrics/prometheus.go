package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Upstream metrics
	categoryFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fhir_category_fetches_total",
			Help: "Total number of upstream category fetches",
		},
		[]string{"category", "outcome"},
	)

	categoryFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fhir_category_fetch_duration_seconds",
			Help:    "Upstream category fetch duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"category"},
	)

	patientSearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "patient_searches_total",
			Help: "Total number of patient searches",
		},
		[]string{"outcome"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts, durations, and the in-flight gauge for
// every route. Route templates keep label cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}
			// c.Path() is the route template, e.g. /api/v1/patients/:id
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RecordCategoryFetch records one upstream fetch. outcome is "ok",
// "not_found", or "error".
func RecordCategoryFetch(category, outcome string, duration time.Duration) {
	categoryFetchesTotal.WithLabelValues(category, outcome).Inc()
	categoryFetchDuration.WithLabelValues(category).Observe(duration.Seconds())
}

// RecordPatientSearch records one patient search by outcome: "matched",
// "empty", or "error".
func RecordPatientSearch(outcome string) {
	patientSearchesTotal.WithLabelValues(outcome).Inc()
}
