package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/katiamach/humidity-dashboard/internal/client"
	"github.com/katiamach/humidity-dashboard/internal/clock"
	"github.com/katiamach/humidity-dashboard/internal/logger"
	"github.com/katiamach/humidity-dashboard/internal/model"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go DashboardService

// ErrLoadingData is reported to clients when the readings API can't be used.
var ErrLoadingData = errors.New("error loading data")

// DashboardService provides dashboard service methods.
type DashboardService interface {
	GetDashboard(ctx context.Context) (*model.Dashboard, error)
}

// DashboardServer is a server for the humidity dashboard.
type DashboardServer struct {
	service       DashboardService
	clockInterval time.Duration
	now           func() time.Time
}

// NewDashboardServer creates new DashboardServer.
func NewDashboardServer(service DashboardService, clockInterval time.Duration) *DashboardServer {
	return &DashboardServer{
		service:       service,
		clockInterval: clockInterval,
		now:           time.Now,
	}
}

// GetDashboardPageHandler renders the dashboard page from a single fetch.
// A failed fetch still renders the page, with the error shown in the status element.
func (s *DashboardServer) GetDashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	page := pageData{
		Timestamp: clock.Format(s.now()),
		Chart:     model.ChartData{Labels: []string{}, Values: []float64{}, ValueLabels: []string{}},
		Markers:   []model.Marker{},
	}

	dashboard, err := s.service.GetDashboard(r.Context())
	if err != nil {
		logger.Error(fmt.Errorf("failed to get dashboard: %v", err))
		page.Status = "Error loading data."
	} else {
		page.Chart = dashboard.Chart
		page.Markers = dashboard.Markers
		page.Loaded = true
	}

	var buf bytes.Buffer
	err = renderPage(&buf, &page)
	if err != nil {
		logger.Error(fmt.Errorf("failed to render dashboard: %v", err))
		respondErr(w, http.StatusInternalServerError, errors.New("failed to render dashboard"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err = buf.WriteTo(w)
	if err != nil {
		logger.Error(fmt.Errorf("can't write dashboard: %w", err))
	}
}

// GetReadingsHandler returns aligned readings.
func (s *DashboardServer) GetReadingsHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := s.getDashboard(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, dashboard.Snapshot)
}

// GetChartHandler returns bar chart data.
func (s *DashboardServer) GetChartHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := s.getDashboard(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, dashboard.Chart)
}

// GetMarkersHandler returns map markers.
func (s *DashboardServer) GetMarkersHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := s.getDashboard(w, r)
	if !ok {
		return
	}

	respond(w, http.StatusOK, dashboard.Markers)
}

func (s *DashboardServer) getDashboard(w http.ResponseWriter, r *http.Request) (*model.Dashboard, bool) {
	dashboard, err := s.service.GetDashboard(r.Context())
	if errors.Is(err, client.ErrFetch) || errors.Is(err, client.ErrDecode) {
		logger.Error(fmt.Errorf("failed to get dashboard: %v", err))
		respondErr(w, http.StatusBadGateway, ErrLoadingData)
		return nil, false
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get dashboard: %v", err))
		respondErr(w, http.StatusInternalServerError, ErrLoadingData)
		return nil, false
	}

	return dashboard, true
}

// ClockStreamHandler streams the formatted Singapore time as server-sent events
// until the client goes away.
func (s *DashboardServer) ClockStreamHandler(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondErr(w, http.StatusInternalServerError, errors.New("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	clock.Run(ctx, s.clockInterval, s.now, func(ts string) {
		_, err := fmt.Fprintf(w, "data: %s\n\n", ts)
		if err != nil {
			cancel()
			return
		}
		flusher.Flush()
	})
}
