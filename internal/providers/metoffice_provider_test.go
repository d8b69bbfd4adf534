package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sdmeers/UK-weather-MCP/internal/providers"
)

type MetOfficeAPIServiceTestSuite struct {
	suite.Suite
	server      *httptest.Server
	service     providers.MetOfficeAPIService
	lastRequest *http.Request
}

func (s *MetOfficeAPIServiceTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastRequest = r

		switch r.URL.Path {
		case "/hourly":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"type": "FeatureCollection",
				"features": []map[string]interface{}{
					{
						"type": "Feature",
						"geometry": map[string]interface{}{
							"type":        "Point",
							"coordinates": []float64{-0.1278, 51.5074, 11.0},
						},
						"properties": map[string]interface{}{
							"timeSeries": []map[string]interface{}{
								{
									"time":                   "2025-06-01T09:00Z",
									"screenTemperature":      12.3,
									"significantWeatherCode": 7,
								},
							},
						},
					},
				},
			})
		case "/daily":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"type": "FeatureCollection",
				"features": []map[string]interface{}{
					{
						"type": "Feature",
						"geometry": map[string]interface{}{
							"type":        "Point",
							"coordinates": []float64{-0.1278, 51.5074, 11.0},
						},
						"properties": map[string]interface{}{
							"location": map[string]interface{}{"name": "London"},
							"timeSeries": []map[string]interface{}{
								{
									"time":                    "2025-06-01T00:00Z",
									"dayMaxScreenTemperature": 20.5,
								},
							},
						},
					},
				},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.service = providers.NewMetOfficeAPIService(s.server.URL, "test_api_key")
}

func (s *MetOfficeAPIServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *MetOfficeAPIServiceTestSuite) TestGetHourlyForecastSuccess() {
	resp, err := s.service.GetHourlyForecast(context.Background(), 51.5074, -0.1278)

	s.Require().NoError(err)
	s.Require().Len(resp.Features, 1)
	s.Equal([]float64{-0.1278, 51.5074, 11.0}, resp.Features[0].Geometry.Coordinates)
	s.Require().Len(resp.Features[0].Properties.TimeSeries, 1)
	s.Equal("2025-06-01T09:00Z", resp.Features[0].Properties.TimeSeries[0]["time"])
	s.Equal(12.3, resp.Features[0].Properties.TimeSeries[0]["screenTemperature"])
}

func (s *MetOfficeAPIServiceTestSuite) TestGetDailyForecastSuccess() {
	resp, err := s.service.GetDailyForecast(context.Background(), 51.5074, -0.1278)

	s.Require().NoError(err)
	s.Require().Len(resp.Features, 1)
	s.Equal("London", resp.Features[0].Properties.Location.Name)
}

func (s *MetOfficeAPIServiceTestSuite) TestRequestShape() {
	_, err := s.service.GetHourlyForecast(context.Background(), 51.5074, -0.1278)
	s.Require().NoError(err)

	s.Equal(http.MethodGet, s.lastRequest.Method)
	s.Equal("/hourly", s.lastRequest.URL.Path)

	query := s.lastRequest.URL.Query()
	s.Equal("BD1", query.Get("dataSource"))
	s.Equal("51.5074", query.Get("latitude"))
	s.Equal("-0.1278", query.Get("longitude"))
	s.Equal("true", query.Get("includeLocationName"))

	s.Equal("test_api_key", s.lastRequest.Header.Get("apikey"))
	s.Equal("application/json", s.lastRequest.Header.Get("accept"))
}

func (s *MetOfficeAPIServiceTestSuite) TestServerError() {
	service := providers.NewMetOfficeAPIService(s.server.URL+"/missing", "test_api_key")

	_, err := service.GetHourlyForecast(context.Background(), 51.5074, -0.1278)

	s.Error(err)
	s.Contains(err.Error(), "status code")
}

func (s *MetOfficeAPIServiceTestSuite) TestMalformedJSON() {
	brokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{malformed json"))
	}))
	defer brokenServer.Close()

	service := providers.NewMetOfficeAPIService(brokenServer.URL, "test_api_key")

	_, err := service.GetHourlyForecast(context.Background(), 51.5074, -0.1278)

	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *MetOfficeAPIServiceTestSuite) TestTransportError() {
	service := providers.NewMetOfficeAPIService("http://127.0.0.1:1", "test_api_key")

	_, err := service.GetDailyForecast(context.Background(), 51.5074, -0.1278)

	s.Error(err)
	s.Contains(err.Error(), "request failed")
}

func (s *MetOfficeAPIServiceTestSuite) TestClientTimeout() {
	s.Equal(30*time.Second, s.service.GetHTTPClient().Timeout)
}

func (s *MetOfficeAPIServiceTestSuite) TestContextCancellation() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.GetHourlyForecast(ctx, 51.5074, -0.1278)

	s.Error(err)
}

func TestMetOfficeAPIServiceSuite(t *testing.T) {
	suite.Run(t, new(MetOfficeAPIServiceTestSuite))
}
