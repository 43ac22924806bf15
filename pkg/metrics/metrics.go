package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:      "request_latency",
			Subsystem: "skydash",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.2, 0.4, 0.8, 1.0, 2.0, 4.0, 8.0, 16.0, 32.0},
		},
		[]string{"verb", "path", "code"},
	)

	userRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:      "user_requests",
			Subsystem: "skydash",
			Help:      "Requests partitioned by whether the user has a saved location.",
		},
		[]string{"known_user"},
	)

	reportsBuilt = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:      "sky_reports_built",
			Subsystem: "skydash",
			Help:      "Sky reports computed (cache misses).",
		},
	)
)

func init() {
	prometheus.MustRegister(
		requestLatency,
		userRequests,
		reportsBuilt,
	)
}

func ObserveRequestLatency(verb, path, code string, latency float64) {
	requestLatency.With(prometheus.Labels{
		"code": code,
		"verb": verb,
		"path": path,
	}).Observe(latency)
}

// ObserveUserRequest counts a page view; id is the session's user value,
// which is nil for anonymous visitors.
func ObserveUserRequest(id interface{}) {
	known := "false"
	if id != nil {
		known = "true"
	}
	userRequests.With(prometheus.Labels{"known_user": known}).Inc()
}

// ObserveReportBuilt counts a freshly computed (uncached) sky report.
func ObserveReportBuilt() {
	reportsBuilt.Inc()
}

// LatencyHandler wraps next with request latency observation. Panics in
// next are reported as 500 errors and then re-thrown.
func LatencyHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()
		verb := r.Method
		path := ""
		if r.URL != nil {
			path = r.URL.Path
		}

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				ObserveRequestLatency(verb, path, "500", time.Since(t).Seconds())
				panic(err)
			}
			ObserveRequestLatency(verb, path, fmt.Sprint(rec.code), time.Since(t).Seconds())
		}()

		next.ServeHTTP(rec, r)
	})
}

// statusRecorder remembers the status code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}
