// Package handlers wires the sky-report engine to HTTP.
package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/skydash/skydash/pkg/cache"
	"github.com/skydash/skydash/pkg/metrics"
	"github.com/skydash/skydash/pkg/report"
)

//go:embed static
var content embed.FS

// Cache for slightly less than one day so daily clients don't see stale
// data.
const cacheTTL = 23 * time.Hour

// Deps carries the handlers' collaborators. DB may be nil, in which case
// the preference pages are not registered and reports use defaults.
type Deps struct {
	DB     *gorm.DB
	Prefix string
}

// Register attaches all routes to the router.
func Register(r *mux.Router, deps Deps) {
	timeCache := cache.NewTimed(cacheTTL)

	r.Handle("/", makeServerSideIndex(deps))
	r.Handle("/api/v1/sky", makeServeSky(timeCache))
	r.Handle("/metrics", promhttp.Handler())
	if deps.DB != nil {
		r.Handle("/config", makeConfigLocation(deps))
	}
}

// makeServeSky serves the JSON sky report. Results are cached per
// (method, URL, resolved date) because an omitted date means "today" and
// must not outlive the day it resolved to.
func makeServeSky(timeCache *cache.Timed) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := requestFromQuery(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Bad request: %v", err)
			return
		}

		key := fmt.Sprintf("%s %s %s", r.Method, r.URL, req.Date)
		if cached, ok := timeCache.Get(key); ok {
			w.Header().Add("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		rep, err := report.Build(req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "Bad request: %v", err)
			return
		}
		metrics.ObserveReportBuilt()

		// Duplicate the response onto a buffer for the cache.
		var toCache bytes.Buffer
		mw := io.MultiWriter(w, &toCache)

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(mw).Encode(rep); err != nil {
			log.Printf("Failed to encode JSON result: %+v", err)
			return
		}

		// Save the result asynchronously as the cache may block.
		go func() {
			timeCache.Set(key, toCache.Bytes())
		}()
	})
}

// requestFromQuery builds a report request from URL parameters. The date
// defaults to today (UTC); coordinates are required.
func requestFromQuery(r *http.Request) (report.Request, error) {
	q := r.URL.Query()

	date := q.Get("date")
	if date == "" {
		date = time.Now().UTC().Format(report.DateLayout)
	}

	latStr, lngStr := q.Get("lat"), q.Get("lng")
	if latStr == "" || lngStr == "" {
		return report.Request{}, fmt.Errorf("lat and lng are required")
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return report.Request{}, fmt.Errorf("bad lat %q", latStr)
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return report.Request{}, fmt.Errorf("bad lng %q", lngStr)
	}

	return report.Request{
		Date:           date,
		Latitude:       lat,
		Longitude:      lng,
		MoonLightColor: q.Get("color"),
	}, nil
}

