// Package aligner joins stations with their readings and orders them for display.
package aligner

import (
	"sort"

	"github.com/katiamach/humidity-dashboard/internal/model"
)

// Options configures an Aligner.
type Options struct {
	// SortByGeography orders entries west to east, then south to north.
	// When false the API reading order is kept.
	SortByGeography bool
	Labels          DisplayLabels
}

// Aligner aligns readings with stations.
type Aligner struct {
	sortByGeography bool
	labels          DisplayLabels
}

// New creates new Aligner.
func New(opts Options) *Aligner {
	return &Aligner{
		sortByGeography: opts.SortByGeography,
		labels:          opts.Labels,
	}
}

// Align produces one entry per reading whose station is known.
// Readings referencing unknown stations are dropped.
func (a *Aligner) Align(stations []model.Station, readings []model.Reading) []model.AlignedEntry {
	stationByID := make(map[string]model.Station, len(stations))
	for _, st := range stations {
		stationByID[st.ID] = st
	}

	entries := make([]model.AlignedEntry, 0, len(readings))
	for _, r := range readings {
		st, ok := stationByID[r.StationID]
		if !ok {
			continue
		}

		entries = append(entries, model.AlignedEntry{
			Label:   a.labels.Resolve(st.Name),
			Value:   r.Value,
			Station: st,
		})
	}

	if a.sortByGeography {
		sortByGeography(entries)
	}

	return entries
}

// sortByGeography sorts by longitude, then latitude; equal coordinates keep input order.
func sortByGeography(entries []model.AlignedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Station.Location, entries[j].Station.Location
		if a.Longitude != b.Longitude {
			return a.Longitude < b.Longitude
		}
		return a.Latitude < b.Latitude
	})
}
