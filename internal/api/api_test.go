package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tj/assert"
	"golang.org/x/text/language"

	"github.com/katiamach/humidity-dashboard/internal/aligner"
	"github.com/katiamach/humidity-dashboard/internal/config"
)

const readingsBody = `{"data": {
  "stations": [
    {"id": "S1", "name": "Scotts Road", "location": {"latitude": 1.30, "longitude": 103.83}},
    {"id": "S2", "name": "Nanyang Avenue", "location": {"latitude": 1.34, "longitude": 103.68}}
  ],
  "readings": [{"timestamp": "2026-10-19T14:00:00+08:00", "data": [
    {"stationId": "S1", "value": 77},
    {"stationId": "S2", "value": 81},
    {"stationId": "S9", "value": 90}
  ]}]
}}`

func testConfig(url string) config.Config {
	return config.Config{
		Port:            "8080",
		ReadingsURL:     url,
		SortByGeography: true,
		Locale:          language.BritishEnglish,
		LogLevel:        "info",
		ClockInterval:   time.Second,
	}
}

func TestRouterChart(t *testing.T) {
	calls := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(readingsBody))
	}))
	defer upstream.Close()

	router, err := NewRouter(testConfig(upstream.URL))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chart", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"labels":["Joo Koon","Orchard"],"values":[81,77],"valueLabels":["81%","77%"],"width":200}`, w.Body.String())
	assert.Equal(t, 1, calls)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/chart", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	router, err := NewRouter(testConfig(upstream.URL))
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/markers", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Error loading data.")
}

func TestRouterLabelsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("- not a map\n"), 0o600))

	cfg := testConfig("http://localhost")
	cfg.LabelsFile = path

	_, err := NewRouter(cfg)
	assert.True(t, errors.Is(err, aligner.ErrLabelsFile))
}
