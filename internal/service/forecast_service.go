package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/sdmeers/UK-weather-MCP/internal/db/forecastquery"
	"github.com/sdmeers/UK-weather-MCP/internal/forecast"
	"github.com/sdmeers/UK-weather-MCP/internal/providers"
)

// Fixed caller-facing failure strings. Upstream and parse failures are
// logged and collapsed into these; they are never propagated as errors and
// never retried.
const (
	UnableToFetchMessage      = "Unable to fetch forecast data for this location."
	HourlyParseFailureMessage = "Failed to parse the hourly forecast data."
	DailyParseFailureMessage  = "Failed to parse the daily forecast data."
)

type ForecastService interface {
	GetHourlyForecast(ctx context.Context, latitude, longitude float64) string
	GetDailyForecast(ctx context.Context, latitude, longitude float64) string
}

type forecastService struct {
	metOffice providers.MetOfficeAPIService
	queryRepo forecastquery.Repository
}

// NewForecastService wires the Met Office client to the formatters. The
// repository is optional; with a nil repo query logging is skipped.
func NewForecastService(metOffice providers.MetOfficeAPIService, queryRepo forecastquery.Repository) ForecastService {
	return &forecastService{
		metOffice: metOffice,
		queryRepo: queryRepo,
	}
}

func (s *forecastService) GetHourlyForecast(ctx context.Context, latitude, longitude float64) string {
	resp, err := s.metOffice.GetHourlyForecast(ctx, latitude, longitude)
	if err != nil {
		log.Error().Err(err).
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("failed to fetch hourly forecast")
		s.logQuery("hourly", latitude, longitude, 0, false)
		return UnableToFetchMessage
	}

	report, err := forecast.FormatHourly(resp)
	if err != nil {
		log.Error().Err(err).
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("failed to parse hourly forecast data")
		s.logQuery("hourly", latitude, longitude, 0, false)
		return HourlyParseFailureMessage
	}

	s.logQuery("hourly", latitude, longitude, periodCount(resp), true)

	return report
}

func (s *forecastService) GetDailyForecast(ctx context.Context, latitude, longitude float64) string {
	resp, err := s.metOffice.GetDailyForecast(ctx, latitude, longitude)
	if err != nil {
		log.Error().Err(err).
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("failed to fetch daily forecast")
		s.logQuery("daily", latitude, longitude, 0, false)
		return UnableToFetchMessage
	}

	report, err := forecast.FormatDaily(resp)
	if err != nil {
		log.Error().Err(err).
			Float64("latitude", latitude).
			Float64("longitude", longitude).
			Msg("failed to parse daily forecast data")
		s.logQuery("daily", latitude, longitude, 0, false)
		return DailyParseFailureMessage
	}

	s.logQuery("daily", latitude, longitude, periodCount(resp), true)

	return report
}

// logQuery records the call for operator visibility without holding up the
// response.
func (s *forecastService) logQuery(kind string, latitude, longitude float64, periods int, succeeded bool) {
	if s.queryRepo == nil {
		return
	}

	go func() {
		if err := s.queryRepo.LogForecastQuery(kind, latitude, longitude, periods, succeeded); err != nil {
			log.Error().Err(err).Msg("failed to log forecast query")
		}
	}()
}

func periodCount(resp *providers.ForecastResponse) int {
	if resp == nil || len(resp.Features) == 0 {
		return 0
	}
	return len(resp.Features[0].Properties.TimeSeries)
}
