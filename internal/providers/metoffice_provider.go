package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ForecastKind selects the Met Office endpoint suffix.
type ForecastKind string

const (
	KindHourly ForecastKind = "hourly"
	KindDaily  ForecastKind = "daily"
)

// The upstream call is bounded by this timeout; there is no retry.
const requestTimeout = 30 * time.Second

// dataSource BD1 selects the site-specific deterministic forecast dataset.
const dataSource = "BD1"

type MetOfficeAPIService interface {
	GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error)
	GetDailyForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error)
	GetHTTPClient() *http.Client
}

type metOfficeAPIService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewMetOfficeAPIService(baseURL, apiKey string) MetOfficeAPIService {
	return &metOfficeAPIService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (s *metOfficeAPIService) GetHourlyForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	return s.getForecast(ctx, KindHourly, latitude, longitude)
}

func (s *metOfficeAPIService) GetDailyForecast(ctx context.Context, latitude, longitude float64) (*ForecastResponse, error) {
	return s.getForecast(ctx, KindDaily, latitude, longitude)
}

func (s *metOfficeAPIService) getForecast(ctx context.Context, kind ForecastKind, latitude, longitude float64) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("dataSource", dataSource)
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("includeLocationName", "true")

	requestURL := fmt.Sprintf("%s/%s?%s", s.baseURL, kind, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s forecast request: %w", kind, err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s forecast request failed: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s forecast returned status code: %d", kind, resp.StatusCode)
	}

	var forecastResp ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecastResp); err != nil {
		return nil, fmt.Errorf("%s forecast returned malformed JSON: %w", kind, err)
	}

	return &forecastResp, nil
}

func (s *metOfficeAPIService) GetHTTPClient() *http.Client {
	return s.client
}
