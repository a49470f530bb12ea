package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakhrymubarak/weatherapi-mcp/internal/config"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/model"
)

// ErrAPIKeyMissing is returned before any network call when no credential
// is configured.
var ErrAPIKeyMissing = errors.New("WEATHERAPI_KEY environment variable not set")

// UpstreamError carries a non-success provider response as-is.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// WeatherRepository defines the upstream data access for the weather gateway
type WeatherRepository interface {
	CurrentWeather(ctx context.Context, location string) (*model.CurrentResponse, error)
	Forecast(ctx context.Context, location string, days int) (*model.ForecastResponse, error)
	SearchLocations(ctx context.Context, query string) ([]model.SearchLocationPayload, error)
	Astronomy(ctx context.Context, location, date string) (*model.AstronomyResponse, error)
}

// weatherAPIRepository implements WeatherRepository against api.weatherapi.com
type weatherAPIRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewWeatherRepository creates a new weather repository instance
func NewWeatherRepository(httpClient ...*http.Client) WeatherRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherAPIRepository{
		baseURL:    config.GetWeatherAPIBaseURL(),
		httpClient: client,
	}
}

// getJSON performs the single GET of an invocation and decodes the body into
// out. The credential is re-checked here on every call; no request is issued
// without it.
func (r *weatherAPIRepository) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	apiKey := config.GetWeatherAPIKey()
	if apiKey == "" {
		return ErrAPIKeyMissing
	}
	params.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (r *weatherAPIRepository) CurrentWeather(ctx context.Context, location string) (*model.CurrentResponse, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("aqi", "yes")

	var data model.CurrentResponse
	if err := r.getJSON(ctx, "/current.json", params, &data); err != nil {
		return nil, err
	}
	if data.Location == nil || data.Current == nil {
		return nil, fmt.Errorf("malformed response: missing location or current section")
	}
	return &data, nil
}

func (r *weatherAPIRepository) Forecast(ctx context.Context, location string, days int) (*model.ForecastResponse, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("days", strconv.Itoa(days))
	params.Set("aqi", "yes")
	params.Set("alerts", "yes")

	var data model.ForecastResponse
	if err := r.getJSON(ctx, "/forecast.json", params, &data); err != nil {
		return nil, err
	}
	if data.Location == nil || data.Forecast == nil {
		return nil, fmt.Errorf("malformed response: missing location or forecast section")
	}
	return &data, nil
}

func (r *weatherAPIRepository) SearchLocations(ctx context.Context, query string) ([]model.SearchLocationPayload, error) {
	params := url.Values{}
	params.Set("q", query)

	// /search.json returns a top-level array.
	var data []model.SearchLocationPayload
	if err := r.getJSON(ctx, "/search.json", params, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *weatherAPIRepository) Astronomy(ctx context.Context, location, date string) (*model.AstronomyResponse, error) {
	params := url.Values{}
	params.Set("q", location)
	// An empty date means the dt parameter is omitted entirely; the provider
	// resolves "today" in the location's own timezone.
	if date != "" {
		params.Set("dt", date)
	}

	var data model.AstronomyResponse
	if err := r.getJSON(ctx, "/astronomy.json", params, &data); err != nil {
		return nil, err
	}
	if data.Location == nil || data.Astronomy == nil || data.Astronomy.Astro == nil {
		return nil, fmt.Errorf("malformed response: missing location or astronomy section")
	}
	return &data, nil
}
