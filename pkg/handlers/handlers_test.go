package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/skydash/skydash/pkg/report"
)

func newTestRouter() *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	Register(r, Deps{Prefix: "/"})
	return r
}

func TestServeSky(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sky?date=2023-10-14&lat=40.7128&lng=-74.0060", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var rep report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if rep.Date != "2023-10-14" {
		t.Errorf("date = %q", rep.Date)
	}
	if len(rep.Constellations) == 0 {
		t.Error("no constellations in response")
	}
	visible := 0
	for _, p := range rep.Planets {
		if p.Visible {
			visible++
		}
	}
	if visible < 2 {
		t.Errorf("only %d visible planets", visible)
	}
}

func TestServeSkyBadRequests(t *testing.T) {
	r := newTestRouter()

	table := []struct {
		name string
		url  string
	}{
		{"missing coordinates", "/api/v1/sky?date=2023-10-14"},
		{"unparseable lat", "/api/v1/sky?date=2023-10-14&lat=north&lng=0"},
		{"out of range lat", "/api/v1/sky?date=2023-10-14&lat=91&lng=0"},
		{"bad date", "/api/v1/sky?date=Oct-14&lat=40&lng=-74"},
		{"bad color", "/api/v1/sky?date=2023-10-14&lat=40&lng=-74&color=silver"},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestServeSkyCached(t *testing.T) {
	r := newTestRouter()

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/sky?date=2023-10-14&lat=40.7128&lng=-74.0060", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	first := get()
	second := get()
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses %d, %d", first.Code, second.Code)
	}
	// The report is deterministic, so cached or not the bytes agree.
	if first.Body.String() != second.Body.String() {
		t.Error("repeated identical requests produced different bodies")
	}
}

func TestIndexPage(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %q", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"<svg", "Constellations", "Planets"} {
		if !strings.Contains(body, want) {
			t.Errorf("index page missing %q", want)
		}
	}
	// Without a database /config is not routed, so the page must not link
	// to it.
	if strings.Contains(body, `href="config"`) {
		t.Error("index page links to config with no DB configured")
	}
}

func TestConfigNotRegisteredWithoutDB(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("config without DB: status = %d, want 404", rec.Code)
	}
}

