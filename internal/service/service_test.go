package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"
	"golang.org/x/text/language"

	"github.com/katiamach/humidity-dashboard/internal/aligner"
	"github.com/katiamach/humidity-dashboard/internal/model"

	mock "github.com/katiamach/humidity-dashboard/internal/service/mock"
)

var errTest = errors.New("test error")

var (
	scotts = model.Station{ID: "S1", Name: "Scotts Road", Location: model.Location{Latitude: 1.30, Longitude: 103.83}}
	tuas   = model.Station{ID: "S2", Name: "Tuas South Avenue 3", Location: model.Location{Latitude: 1.29, Longitude: 103.6}}
	odd    = model.Station{ID: "S3", Name: "A & B <Road>", Location: model.Location{Latitude: 1.35, Longitude: 103.9}}
)

func newService(fetcher ReadingsFetcher) *DashboardService {
	a := aligner.New(aligner.Options{SortByGeography: true, Labels: aligner.DefaultLabels()})
	return New(fetcher, a, language.BritishEnglish)
}

func TestGetDashboard(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name            string
		payload         *model.Payload
		fetchErr        error
		expectedError   error
		expectedLabels  []string
		expectedValues  []string
		expectedMarkers int
	}{
		{
			name: "ok",
			payload: &model.Payload{
				Stations:  []model.Station{scotts, tuas, odd},
				Readings:  []model.Reading{{StationID: "S3", Value: 66.9}, {StationID: "S1", Value: 77}, {StationID: "S2", Value: 84.5}},
				Timestamp: "2026-10-19T14:00:00+08:00",
			},
			expectedLabels:  []string{"Tuas South", "Orchard", "A & B <Road>"},
			expectedValues:  []string{"84%", "77%", "66%"},
			expectedMarkers: 3,
		},
		{
			name: "missing stations",
			payload: &model.Payload{
				Stations: []model.Station{},
				Readings: []model.Reading{{StationID: "S1", Value: 77}},
			},
			expectedLabels:  []string{},
			expectedValues:  []string{},
			expectedMarkers: 0,
		},
		{
			name:          "fetch error",
			fetchErr:      errTest,
			expectedError: errTest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock.NewMockReadingsFetcher(ctrl)
			fetcher.EXPECT().FetchReadings(ctx).Return(tc.payload, tc.fetchErr).Times(1)

			d, err := newService(fetcher).GetDashboard(ctx)
			if tc.expectedError != nil {
				assert.True(t, errors.Is(err, tc.expectedError))
				assert.Nil(t, d)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedLabels, d.Chart.Labels)
			assert.Equal(t, tc.expectedValues, d.Chart.ValueLabels)
			assert.Equal(t, len(tc.expectedLabels)*BarWidth, d.Chart.Width)
			assert.Len(t, d.Markers, tc.expectedMarkers)
			assert.Equal(t, tc.payload.Timestamp, d.Snapshot.Timestamp)
		})
	}
}

func TestGetSnapshotUsesAligner(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	payload := &model.Payload{
		Stations: []model.Station{scotts},
		Readings: []model.Reading{{StationID: "S1", Value: 70}},
	}
	entries := []model.AlignedEntry{{Label: "Orchard", Value: 70, Station: scotts}}

	fetcher := mock.NewMockReadingsFetcher(ctrl)
	fetcher.EXPECT().FetchReadings(ctx).Return(payload, nil)

	a := mock.NewMockAligner(ctrl)
	a.EXPECT().Align(payload.Stations, payload.Readings).Return(entries)

	snapshot, err := New(fetcher, a, language.English).GetSnapshot(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entries, snapshot.Entries)
}

func TestMarkers(t *testing.T) {
	s := newService(nil)

	snapshot := &model.Snapshot{Entries: []model.AlignedEntry{
		{Label: "Orchard", Value: 77, Station: scotts},
		{Label: "A & B <Road>", Value: 71.3, Station: odd},
	}}

	markers := s.Markers(snapshot)
	assert.Len(t, markers, 2)

	assert.Equal(t, "<b>Orchard</b>", markers[0].Tooltip)
	assert.Equal(t, "Humidity: 77%", markers[0].Popup)
	assert.Equal(t, 1.30, markers[0].Latitude)
	assert.Equal(t, 103.83, markers[0].Longitude)
	assert.InDelta(t, 5.90, markers[0].DistanceKm, 0.05)
	assert.Equal(t, "5.9 km from city centre", markers[0].Distance)

	assert.Equal(t, "<b>A &amp; B &lt;Road&gt;</b>", markers[1].Tooltip)
	assert.Equal(t, "Humidity: 71.3%", markers[1].Popup)

	assert.Empty(t, s.Markers(nil))
	assert.Empty(t, s.Markers(&model.Snapshot{}))
}

func TestMarkersOnePerStation(t *testing.T) {
	s := newService(nil)

	snapshot := &model.Snapshot{Entries: []model.AlignedEntry{
		{Label: "Orchard", Value: 70, Station: scotts},
		{Label: "Tuas South", Value: 84, Station: tuas},
		{Label: "Orchard", Value: 77, Station: scotts},
	}}

	markers := s.Markers(snapshot)
	assert.Len(t, markers, 2)
	assert.Equal(t, "Orchard", markers[0].Label)
	assert.Equal(t, 77.0, markers[0].Value)
	assert.Equal(t, "Humidity: 77%", markers[0].Popup)
	assert.Equal(t, "Tuas South", markers[1].Label)

	// the chart keeps every reading
	assert.Len(t, s.ChartData(snapshot).Labels, 3)
}

func TestChartDataEmpty(t *testing.T) {
	s := newService(nil)

	chart := s.ChartData(nil)
	assert.Equal(t, []string{}, chart.Labels)
	assert.Equal(t, []float64{}, chart.Values)
	assert.Equal(t, 0, chart.Width)
}
