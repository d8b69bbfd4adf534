package forecast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sdmeers/UK-weather-MCP/internal/providers"
)

var (
	ErrNoFeatures     = errors.New("response contains no features")
	ErrNoTimeSeries   = errors.New("response contains no time series")
	ErrNoCoordinates  = errors.New("response contains no coordinates")
	ErrNoLocationName = errors.New("response contains no location name")
	ErrNoPeriodTime   = errors.New("period record has no timestamp")
)

// mph per m/s. The hourly and daily endpoints were integrated at different
// times and kept their original precision.
const (
	hourlyWindFactor = 2.237
	dailyWindFactor  = 2.23694
)

// FormatHourly renders an hourly forecast response as a text report: one
// labeled block per period, prefixed by the request point coordinates.
func FormatHourly(resp *providers.ForecastResponse) (string, error) {
	if resp == nil || len(resp.Features) == 0 {
		return "", ErrNoFeatures
	}

	feature := resp.Features[0]
	if len(feature.Geometry.Coordinates) < 2 {
		return "", ErrNoCoordinates
	}
	if feature.Properties.TimeSeries == nil {
		return "", ErrNoTimeSeries
	}

	lon := feature.Geometry.Coordinates[0]
	lat := feature.Geometry.Coordinates[1]

	var blocks []string
	for _, period := range feature.Properties.TimeSeries {
		temp := rawValue(period, "screenTemperature")
		feelsLike := rawValue(period, "feelsLikeTemperature")
		humidity := rawValue(period, "screenRelativeHumidity")
		windDirection := rawValue(period, "windDirectionFrom10m")
		precipRate := rawValue(period, "precipitationRate")
		precipProb := rawValue(period, "probOfPrecipitation")
		uvIndex := rawValue(period, "uvIndex")

		windSpeedMph := convertedValue(period, "windSpeed10m", hourlyWindFactor)
		pressureMb := convertedValue(period, "mslp", 0.01)
		visibilityKm := convertedValue(period, "visibility", 0.001)

		weatherCode, ok := period["significantWeatherCode"]
		if !ok {
			weatherCode = "NA"
		}

		blocks = append(blocks, formatSection(fmt.Sprintf("Time: %s", rawValue(period, "time")), []entry{
			{"Temperature", fmt.Sprintf("%s°C (feels like %s°C)", temp, feelsLike)},
			{"Weather", Description(weatherCode)},
			{"Wind", fmt.Sprintf("%s mph from %s°", windSpeedMph, windDirection)},
			{"Humidity", humidity + "%"},
			{"Precipitation", fmt.Sprintf("%s mm/h (%s%% chance)", precipRate, precipProb)},
			{"Pressure", pressureMb + " mb"},
			{"Visibility", visibilityKm + " km"},
			{"UV Index", uvIndex},
		}))
	}

	location := fmt.Sprintf("Location: %.4f°N, %.4f°E", lat, lon)
	return fmt.Sprintf("Hourly forecast for %s:\n%s", location, strings.Join(blocks, "\n")), nil
}

// FormatDaily renders a daily forecast response as a text report prefixed by
// the location's display name.
func FormatDaily(resp *providers.ForecastResponse) (string, error) {
	if resp == nil || len(resp.Features) == 0 {
		return "", ErrNoFeatures
	}

	feature := resp.Features[0]
	if feature.Properties.TimeSeries == nil {
		return "", ErrNoTimeSeries
	}
	if feature.Properties.Location.Name == "" {
		return "", ErrNoLocationName
	}

	var blocks []string
	for _, period := range feature.Properties.TimeSeries {
		timestamp, ok := period["time"].(string)
		if !ok {
			return "", ErrNoPeriodTime
		}
		date := strings.SplitN(timestamp, "T", 2)[0]

		dayCode, ok := period["daySignificantWeatherCode"]
		if !ok {
			dayCode = "NA"
		}
		nightCode, ok := period["nightSignificantWeatherCode"]
		if !ok {
			nightCode = "NA"
		}

		blocks = append(blocks, formatSection(fmt.Sprintf("Date: %s", date), []entry{
			{"Max Temp", convertedValue(period, "dayMaxScreenTemperature", 1) + "°C"},
			{"Min Temp", convertedValue(period, "nightMinScreenTemperature", 1) + "°C"},
			{"Feels Like Max Temp", convertedValue(period, "dayMaxFeelsLikeTemp", 1) + "°C"},
			{"Feels Like Min Temp (Night)", convertedValue(period, "nightMinFeelsLikeTemp", 1) + "°C"},
			{"Day Precipitation Probability", convertedValue(period, "dayProbabilityOfPrecipitation", 1) + "%"},
			{"Night Precipitation Probability", convertedValue(period, "nightProbabilityOfPrecipitation", 1) + "%"},
			{"Max UV Index", convertedValue(period, "maxUvIndex", 1)},
			{"Midday Relative Humidity", convertedValue(period, "middayRelativeHumidity", 1) + "%"},
			{"Midday Visibility", convertedValue(period, "middayVisibility", 0.001) + " km"},
			{"Midday Pressure (MSL)", convertedValue(period, "middayMslp", 0.01) + " hPa"},
			{"Wind Speed (10m)", convertedValue(period, "midday10MWindSpeed", dailyWindFactor) + " mph"},
			{"Weather", fmt.Sprintf("%s (Day), %s (Night)", Description(dayCode), Description(nightCode))},
		}))
	}

	return fmt.Sprintf("Daily forecast for %s:\n%s", feature.Properties.Location.Name, strings.Join(blocks, "\n")), nil
}

type entry struct {
	key   string
	value string
}

func formatSection(title string, entries []entry) string {
	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, "---", title)
	for _, e := range entries {
		lines = append(lines, e.key+": "+e.value)
	}
	return strings.Join(lines, "\n")
}

// rawValue renders a period field as-is, or "N/A" when absent. Numbers are
// printed without trailing zeros so integral JSON values come out as "10"
// rather than "10.000000".
func rawValue(period map[string]any, key string) string {
	v, ok := period[key]
	if !ok || v == nil {
		return "N/A"
	}
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case string:
		return n
	default:
		return fmt.Sprintf("%v", v)
	}
}

// convertedValue applies a unit conversion factor and renders to one decimal
// place, or "N/A" when the source value is missing or non-numeric.
func convertedValue(period map[string]any, key string, factor float64) string {
	v, ok := asFloat(period[key])
	if !ok {
		return "N/A"
	}
	return strconv.FormatFloat(v*factor, 'f', 1, 64)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
