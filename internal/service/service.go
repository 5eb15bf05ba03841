package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/umahmood/haversine"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katiamach/humidity-dashboard/internal/logger"
	"github.com/katiamach/humidity-dashboard/internal/model"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go ReadingsFetcher

// Chart and map constants.
const (
	BarWidth = 100

	MapCenterLat = 1.3521
	MapCenterLon = 103.8198
)

// ReadingsFetcher provides the readings API call.
type ReadingsFetcher interface {
	FetchReadings(ctx context.Context) (*model.Payload, error)
}

// Aligner joins stations and readings.
type Aligner interface {
	Align(stations []model.Station, readings []model.Reading) []model.AlignedEntry
}

// DashboardService provides dashboard data functionality.
type DashboardService struct {
	fetcher ReadingsFetcher
	aligner Aligner
	printer *message.Printer
	center  haversine.Coord
}

// New creates new DashboardService. Value labels are formatted for the given locale.
func New(fetcher ReadingsFetcher, aligner Aligner, locale language.Tag) *DashboardService {
	return &DashboardService{
		fetcher: fetcher,
		aligner: aligner,
		printer: message.NewPrinter(locale),
		center:  haversine.Coord{Lat: MapCenterLat, Lon: MapCenterLon},
	}
}

// GetSnapshot fetches readings once and aligns them with their stations.
func (ds *DashboardService) GetSnapshot(ctx context.Context) (*model.Snapshot, error) {
	payload, err := ds.fetcher.FetchReadings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings: %w", err)
	}

	entries := ds.aligner.Align(payload.Stations, payload.Readings)
	if dropped := len(payload.Readings) - len(entries); dropped > 0 {
		logger.WithFields(logger.Fields{"dropped": dropped}).Info("readings without a known station skipped")
	}

	return &model.Snapshot{
		Entries:   entries,
		Timestamp: payload.Timestamp,
		Unit:      payload.Unit,
	}, nil
}

// GetDashboard builds chart data and map markers from a single snapshot.
func (ds *DashboardService) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	snapshot, err := ds.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		Snapshot: snapshot,
		Chart:    ds.ChartData(snapshot),
		Markers:  ds.Markers(snapshot),
	}, nil
}

// ChartData projects the snapshot into bar chart labels and values.
func (ds *DashboardService) ChartData(snapshot *model.Snapshot) model.ChartData {
	chart := model.ChartData{
		Labels:      []string{},
		Values:      []float64{},
		ValueLabels: []string{},
	}
	if snapshot == nil {
		return chart
	}

	for _, e := range snapshot.Entries {
		chart.Labels = append(chart.Labels, e.Label)
		chart.Values = append(chart.Values, e.Value)
		chart.ValueLabels = append(chart.ValueLabels, ds.printer.Sprintf("%d%%", int(math.Floor(e.Value))))
	}
	chart.Width = len(chart.Labels) * BarWidth

	return chart
}

// Markers projects the snapshot into map markers, one per station with a reading.
// When a station has several readings the last one wins.
func (ds *DashboardService) Markers(snapshot *model.Snapshot) []model.Marker {
	markers := []model.Marker{}
	if snapshot == nil {
		return markers
	}

	indexByStation := make(map[string]int, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		loc := e.Station.Location
		_, km := haversine.Distance(ds.center, haversine.Coord{Lat: loc.Latitude, Lon: loc.Longitude})

		m := model.Marker{
			Label:      e.Label,
			Tooltip:    "<b>" + html.EscapeString(e.Label) + "</b>",
			Popup:      "Humidity: " + strconv.FormatFloat(e.Value, 'f', -1, 64) + "%",
			Distance:   ds.printer.Sprintf("%.1f km from city centre", km),
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			Value:      e.Value,
			DistanceKm: km,
		}

		if i, ok := indexByStation[e.Station.ID]; ok {
			markers[i] = m
			continue
		}
		indexByStation[e.Station.ID] = len(markers)
		markers = append(markers, m)
	}

	return markers
}
