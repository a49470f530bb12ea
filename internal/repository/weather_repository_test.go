package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
)

// Mock HTTP client
func newMockHTTPClient(fn func(req *http.Request) *http.Response) *http.Client {
	return &http.Client{
		Transport: RoundTripperFunc(fn),
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

const currentBody = `{
	"location": {"name": "London", "region": "City of London, Greater London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11, "localtime": "2024-05-01 14:30"},
	"current": {
		"temp_c": 14.0, "temp_f": 57.2,
		"condition": {"text": "Partly cloudy"},
		"wind_kph": 13.0, "wind_mph": 8.1, "wind_dir": "WSW",
		"pressure_mb": 1012.0, "precip_mm": 0.1,
		"humidity": 71, "cloud": 50,
		"feelslike_c": 13.2, "feelslike_f": 55.8,
		"vis_km": 10.0, "uv": 4.0,
		"air_quality": {"co": 230.3, "no2": 13.5, "us-epa-index": 1}
	}
}`

func TestMissingAPIKey_NoNetworkCall(t *testing.T) {
	os.Unsetenv("WEATHERAPI_KEY")

	calls := 0
	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		calls++
		return jsonResponse(200, `{}`)
	}))
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"current weather", func() error { _, err := repo.CurrentWeather(ctx, "London"); return err }},
		{"forecast", func() error { _, err := repo.Forecast(ctx, "London", 3); return err }},
		{"search", func() error { _, err := repo.SearchLocations(ctx, "Lond"); return err }},
		{"astronomy", func() error { _, err := repo.Astronomy(ctx, "London", ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, ErrAPIKeyMissing) {
				t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
			}
		})
	}
	if calls != 0 {
		t.Errorf("Expected zero network calls, got %d", calls)
	}
}

func TestCurrentWeather_Success(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	var captured *http.Request
	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		captured = req
		return jsonResponse(200, currentBody)
	}))

	data, err := repo.CurrentWeather(context.Background(), "London")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if captured.URL.Path != "/v1/current.json" {
		t.Errorf("Expected path /v1/current.json, got %s", captured.URL.Path)
	}
	q := captured.URL.Query()
	if q.Get("key") != "testkey" || q.Get("q") != "London" || q.Get("aqi") != "yes" {
		t.Errorf("Unexpected query params: %s", captured.URL.RawQuery)
	}

	if data.Location.Name != "London" {
		t.Errorf("Expected London, got %s", data.Location.Name)
	}
	if data.Current.TempC != 14.0 || data.Current.Condition.Text != "Partly cloudy" {
		t.Errorf("Unexpected current conditions: %+v", data.Current)
	}
	if data.Current.AirQuality["co"] != 230.3 {
		t.Errorf("Expected air_quality co=230.3, got %v", data.Current.AirQuality["co"])
	}
}

func TestCurrentWeather_UpstreamError(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	body := `{"error":{"message":"No matching location found."}}`
	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		return jsonResponse(400, body)
	}))

	_, err := repo.CurrentWeather(context.Background(), "nowhere")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("Expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != 400 {
		t.Errorf("Expected status 400, got %d", upstream.StatusCode)
	}
	if upstream.Body != body {
		t.Errorf("Expected raw body %q, got %q", body, upstream.Body)
	}
}

func TestCurrentWeather_MalformedJSON(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"location": `)
	}))

	_, err := repo.CurrentWeather(context.Background(), "London")
	if err == nil || !strings.Contains(err.Error(), "failed to parse response") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestCurrentWeather_MissingSection(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		return jsonResponse(200, `{"location": {"name": "London"}}`)
	}))

	_, err := repo.CurrentWeather(context.Background(), "London")
	if err == nil || !strings.Contains(err.Error(), "malformed response") {
		t.Errorf("Expected malformed response error, got %v", err)
	}
}

func TestForecast_QueryParams(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	body := `{
		"location": {"name": "London", "region": "", "country": "United Kingdom", "lat": 51.52, "lon": -0.11},
		"forecast": {"forecastday": [
			{"date": "2024-05-01", "day": {"maxtemp_c": 16.0, "condition": {"text": "Sunny"}}, "astro": {"sunrise": "05:32 AM"}},
			{"date": "2024-05-02", "day": {"maxtemp_c": 17.0, "condition": {"text": "Cloudy"}}, "astro": {"sunrise": "05:30 AM"}}
		]},
		"alerts": {"alert": [{"headline": "Flood warning"}]}
	}`

	var captured *http.Request
	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		captured = req
		return jsonResponse(200, body)
	}))

	data, err := repo.Forecast(context.Background(), "London", 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	q := captured.URL.Query()
	if q.Get("days") != "2" || q.Get("aqi") != "yes" || q.Get("alerts") != "yes" {
		t.Errorf("Unexpected query params: %s", captured.URL.RawQuery)
	}

	if len(data.Forecast.ForecastDay) != 2 {
		t.Fatalf("Expected 2 forecast days, got %d", len(data.Forecast.ForecastDay))
	}
	if data.Forecast.ForecastDay[0].Date != "2024-05-01" || data.Forecast.ForecastDay[1].Date != "2024-05-02" {
		t.Errorf("Forecast day order not preserved: %+v", data.Forecast.ForecastDay)
	}
	if len(data.Alerts.Alert) != 1 {
		t.Errorf("Expected 1 alert, got %d", len(data.Alerts.Alert))
	}
}

func TestSearchLocations_PreservesOrder(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	body := `[
		{"name": "London", "region": "City of London, Greater London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11, "url": "london-city-of-london-greater-london-united-kingdom"},
		{"name": "London", "region": "Ontario", "country": "Canada", "lat": 42.98, "lon": -81.25, "url": "london-ontario-canada"}
	]`

	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		if req.URL.Path != "/v1/search.json" {
			t.Errorf("Expected path /v1/search.json, got %s", req.URL.Path)
		}
		return jsonResponse(200, body)
	}))

	data, err := repo.SearchLocations(context.Background(), "London")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(data) != 2 {
		t.Fatalf("Expected 2 locations, got %d", len(data))
	}
	if data[0].Country != "United Kingdom" || data[1].Country != "Canada" {
		t.Errorf("Search result order not preserved: %+v", data)
	}
}

func TestAstronomy_DateParam(t *testing.T) {
	os.Setenv("WEATHERAPI_KEY", "testkey")
	defer os.Unsetenv("WEATHERAPI_KEY")

	body := `{
		"location": {"name": "London", "region": "", "country": "United Kingdom", "lat": 51.52, "lon": -0.11},
		"astronomy": {"astro": {"sunrise": "05:32 AM", "sunset": "08:21 PM", "moonrise": "03:14 AM", "moonset": "12:05 PM", "moon_phase": "Waning Crescent", "moon_illumination": 34}}
	}`

	var captured *http.Request
	repo := NewWeatherRepository(newMockHTTPClient(func(req *http.Request) *http.Response {
		captured = req
		return jsonResponse(200, body)
	}))
	ctx := context.Background()

	// No date: the dt parameter must be omitted entirely.
	if _, err := repo.Astronomy(ctx, "London", ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, present := captured.URL.Query()["dt"]; present {
		t.Errorf("Expected dt to be omitted, got %s", captured.URL.RawQuery)
	}

	// Explicit date: dt must be passed through.
	if _, err := repo.Astronomy(ctx, "London", "2024-05-01"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := captured.URL.Query().Get("dt"); got != "2024-05-01" {
		t.Errorf("Expected dt=2024-05-01, got %q", got)
	}
}
