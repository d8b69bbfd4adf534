package providers

// ForecastResponse is the GeoJSON-style envelope returned by the Met Office
// site-specific point API. Period records are kept as loose maps because the
// field set differs between the hourly and daily endpoints and individual
// values may be absent or typed inconsistently.
type ForecastResponse struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [lon, lat, elevation]
}

type Properties struct {
	Location             Location         `json:"location"`
	RequestPointDistance float64          `json:"requestPointDistance"`
	ModelRunDate         string           `json:"modelRunDate"`
	TimeSeries           []map[string]any `json:"timeSeries"`
}

type Location struct {
	Name string `json:"name"`
}
