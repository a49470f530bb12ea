package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fakhrymubarak/weatherapi-mcp/internal/model"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/repository"
)

// ErrQueryTooShort is returned before any network call when a search query
// fails the minimum-length rule.
var ErrQueryTooShort = errors.New("Query must be at least 3 characters long")

const (
	minForecastDays = 1
	maxForecastDays = 10
	minQueryLength  = 3
)

// WeatherServiceInterface defines the five weather gateway operations
type WeatherServiceInterface interface {
	CurrentWeather(ctx context.Context, location string) (*model.CurrentWeatherResult, error)
	Forecast(ctx context.Context, location string, days int) (*model.ForecastResult, error)
	SearchLocations(ctx context.Context, query string) (*model.SearchResult, error)
	Astronomy(ctx context.Context, location, date string) (*model.AstronomyResult, error)
	AirQuality(ctx context.Context, location string) (*model.AirQualityResult, error)
}

// WeatherService validates inputs, fetches through the repository and
// projects upstream payloads into the normalized result model.
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
}

// NewWeatherService creates a new weather service instance
func NewWeatherService(repo ...repository.WeatherRepository) *WeatherService {
	var weatherRepo repository.WeatherRepository
	if len(repo) > 0 && repo[0] != nil {
		weatherRepo = repo[0]
	} else {
		weatherRepo = repository.NewWeatherRepository()
	}
	return &WeatherService{WeatherRepo: weatherRepo}
}

// clampDays constrains the forecast day count into [1, 10]. Out-of-range
// values are adjusted, never rejected.
func clampDays(days int) int {
	if days < minForecastDays {
		return minForecastDays
	}
	if days > maxForecastDays {
		return maxForecastDays
	}
	return days
}

func projectLocation(loc *model.LocationPayload, withLocaltime bool) model.Location {
	result := model.Location{
		Name:    loc.Name,
		Region:  loc.Region,
		Country: loc.Country,
		Lat:     loc.Lat,
		Lon:     loc.Lon,
	}
	if withLocaltime {
		result.Localtime = loc.Localtime
	}
	return result
}

// airQualityOrEmpty returns the provider's air-quality mapping verbatim, or
// an empty mapping when the provider omits it.
func airQualityOrEmpty(aq map[string]any) map[string]any {
	if aq == nil {
		return map[string]any{}
	}
	return aq
}

func (s *WeatherService) CurrentWeather(ctx context.Context, location string) (*model.CurrentWeatherResult, error) {
	data, err := s.WeatherRepo.CurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}
	return &model.CurrentWeatherResult{
		Location: projectLocation(data.Location, true),
		Current: model.CurrentConditions{
			TempC:      data.Current.TempC,
			TempF:      data.Current.TempF,
			Condition:  data.Current.Condition.Text,
			WindKph:    data.Current.WindKph,
			WindMph:    data.Current.WindMph,
			WindDir:    data.Current.WindDir,
			PressureMb: data.Current.PressureMb,
			PrecipMm:   data.Current.PrecipMm,
			Humidity:   data.Current.Humidity,
			Cloud:      data.Current.Cloud,
			FeelslikeC: data.Current.FeelslikeC,
			FeelslikeF: data.Current.FeelslikeF,
			VisKm:      data.Current.VisKm,
			UV:         data.Current.UV,
			AirQuality: airQualityOrEmpty(data.Current.AirQuality),
		},
	}, nil
}

func (s *WeatherService) Forecast(ctx context.Context, location string, days int) (*model.ForecastResult, error) {
	days = clampDays(days)

	data, err := s.WeatherRepo.Forecast(ctx, location, days)
	if err != nil {
		return nil, err
	}

	upstream := data.Forecast.ForecastDay
	if len(upstream) > days {
		upstream = upstream[:days]
	}
	forecastDays := make([]model.ForecastDay, 0, len(upstream))
	for _, day := range upstream {
		forecastDays = append(forecastDays, model.ForecastDay{
			Date: day.Date,
			Day: model.DaySummary{
				MaxtempC:          day.Day.MaxtempC,
				MaxtempF:          day.Day.MaxtempF,
				MintempC:          day.Day.MintempC,
				MintempF:          day.Day.MintempF,
				AvgtempC:          day.Day.AvgtempC,
				AvgtempF:          day.Day.AvgtempF,
				Condition:         day.Day.Condition.Text,
				MaxwindKph:        day.Day.MaxwindKph,
				TotalprecipMm:     day.Day.TotalprecipMm,
				Avghumidity:       day.Day.Avghumidity,
				DailyChanceOfRain: day.Day.DailyChanceOfRain,
				DailyChanceOfSnow: day.Day.DailyChanceOfSnow,
				UV:                day.Day.UV,
			},
			Astro: model.Astro{
				Sunrise:   day.Astro.Sunrise,
				Sunset:    day.Astro.Sunset,
				Moonrise:  day.Astro.Moonrise,
				Moonset:   day.Astro.Moonset,
				MoonPhase: day.Astro.MoonPhase,
			},
		})
	}

	alerts := []json.RawMessage{}
	if data.Alerts != nil && data.Alerts.Alert != nil {
		alerts = data.Alerts.Alert
	}

	return &model.ForecastResult{
		Location: projectLocation(data.Location, false),
		Forecast: forecastDays,
		Alerts:   alerts,
	}, nil
}

func (s *WeatherService) SearchLocations(ctx context.Context, query string) (*model.SearchResult, error) {
	if len(strings.TrimSpace(query)) < minQueryLength {
		return nil, ErrQueryTooShort
	}

	data, err := s.WeatherRepo.SearchLocations(ctx, query)
	if err != nil {
		return nil, err
	}

	locations := make([]model.LocationMatch, 0, len(data))
	for _, loc := range data {
		locations = append(locations, model.LocationMatch{
			Name:    loc.Name,
			Region:  loc.Region,
			Country: loc.Country,
			Lat:     loc.Lat,
			Lon:     loc.Lon,
			URL:     loc.URL,
		})
	}
	return &model.SearchResult{Locations: locations}, nil
}

func (s *WeatherService) Astronomy(ctx context.Context, location, date string) (*model.AstronomyResult, error) {
	data, err := s.WeatherRepo.Astronomy(ctx, location, date)
	if err != nil {
		return nil, err
	}
	astro := data.Astronomy.Astro
	return &model.AstronomyResult{
		Location: projectLocation(data.Location, false),
		Astronomy: model.AstronomyInfo{
			Sunrise:          astro.Sunrise,
			Sunset:           astro.Sunset,
			Moonrise:         astro.Moonrise,
			Moonset:          astro.Moonset,
			MoonPhase:        astro.MoonPhase,
			MoonIllumination: astro.MoonIllumination,
		},
	}, nil
}

func (s *WeatherService) AirQuality(ctx context.Context, location string) (*model.AirQualityResult, error) {
	data, err := s.WeatherRepo.CurrentWeather(ctx, location)
	if err != nil {
		return nil, err
	}
	return &model.AirQualityResult{
		Location: model.LocationSummary{
			Name:    data.Location.Name,
			Region:  data.Location.Region,
			Country: data.Location.Country,
		},
		AirQuality: airQualityOrEmpty(data.Current.AirQuality),
	}, nil
}
