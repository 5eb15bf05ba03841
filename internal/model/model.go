package model

// Location holds station coordinates.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Station is a humidity sensor location.
type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// Reading is a single humidity value reported for a station.
type Reading struct {
	StationID string  `json:"stationId"`
	Value     float64 `json:"value"`
}

// Payload contains the parts of the readings API response used by the dashboard.
type Payload struct {
	Stations  []Station
	Readings  []Reading
	Timestamp string
	Unit      string
}

// AlignedEntry joins a reading with its station and display label.
type AlignedEntry struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Station Station `json:"station"`
}

// Snapshot is the aligned result of one fetch, shared by chart and map.
type Snapshot struct {
	Entries   []AlignedEntry `json:"entries"`
	Timestamp string         `json:"timestamp,omitempty"`
	Unit      string         `json:"unit,omitempty"`
}

// ChartData is the bar chart projection of a snapshot.
type ChartData struct {
	Labels      []string  `json:"labels"`
	Values      []float64 `json:"values"`
	ValueLabels []string  `json:"valueLabels"`
	Width       int       `json:"width"`
}

// Marker is a map marker for a station with a reading.
type Marker struct {
	Label      string  `json:"label"`
	Tooltip    string  `json:"tooltip"`
	Popup      string  `json:"popup"`
	Distance   string  `json:"distance"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Value      float64 `json:"value"`
	DistanceKm float64 `json:"distanceKm"`
}

// Dashboard is everything the dashboard page renders from one fetch.
type Dashboard struct {
	Snapshot *Snapshot `json:"snapshot"`
	Chart    ChartData `json:"chart"`
	Markers  []Marker  `json:"markers"`
}
