package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sdmeers/UK-weather-MCP/internal/service"
)

const (
	HourlyForecastToolName = "get_hourly_forecast"
	DailyForecastToolName  = "get_daily_forecast"
)

// Both tools take the same coordinate pair.
const coordinateSchema = `{
  "type": "object",
  "properties": {
    "latitude": {"type": "number", "description": "Latitude in decimal degrees"},
    "longitude": {"type": "number", "description": "Longitude in decimal degrees"}
  },
  "required": ["latitude", "longitude"]
}`

type coordinateParams struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func parseCoordinates(params json.RawMessage) (float64, float64, error) {
	if len(params) == 0 {
		return 0, 0, errors.New("missing params: latitude and longitude are required")
	}

	var p coordinateParams
	if err := json.Unmarshal(params, &p); err != nil {
		return 0, 0, fmt.Errorf("invalid params: %w", err)
	}

	if p.Latitude == nil || p.Longitude == nil {
		return 0, 0, errors.New("missing params: latitude and longitude are required")
	}

	return *p.Latitude, *p.Longitude, nil
}

// RegisterForecastTools registers the two forecast operations on the
// registry, backed by the given service.
func RegisterForecastTools(registry *Registry, forecasts service.ForecastService) {
	registry.Register(Tool{
		Name:        HourlyForecastToolName,
		Description: "Get the hourly weather forecast for a location in the UK.",
		InputSchema: json.RawMessage(coordinateSchema),
		Handler: func(ctx context.Context, params json.RawMessage) (string, error) {
			latitude, longitude, err := parseCoordinates(params)
			if err != nil {
				return "", err
			}
			return forecasts.GetHourlyForecast(ctx, latitude, longitude), nil
		},
	})

	registry.Register(Tool{
		Name:        DailyForecastToolName,
		Description: "Get the daily weather forecast for a location in the UK.",
		InputSchema: json.RawMessage(coordinateSchema),
		Handler: func(ctx context.Context, params json.RawMessage) (string, error) {
			latitude, longitude, err := parseCoordinates(params)
			if err != nil {
				return "", err
			}
			return forecasts.GetDailyForecast(ctx, latitude, longitude), nil
		},
	})
}
