package model

import "encoding/json"

// Normalized tool results. Every value here is built fresh inside one
// invocation and handed back to the caller; nothing is shared or cached.

type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime,omitempty"`
}

// LocationSummary is the reduced location shape used by the air-quality
// tool: no coordinates, no local time.
type LocationSummary struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type CurrentConditions struct {
	TempC      float64        `json:"temp_c"`
	TempF      float64        `json:"temp_f"`
	Condition  string         `json:"condition"`
	WindKph    float64        `json:"wind_kph"`
	WindMph    float64        `json:"wind_mph"`
	WindDir    string         `json:"wind_dir"`
	PressureMb float64        `json:"pressure_mb"`
	PrecipMm   float64        `json:"precip_mm"`
	Humidity   int            `json:"humidity"`
	Cloud      int            `json:"cloud"`
	FeelslikeC float64        `json:"feelslike_c"`
	FeelslikeF float64        `json:"feelslike_f"`
	VisKm      float64        `json:"vis_km"`
	UV         float64        `json:"uv"`
	AirQuality map[string]any `json:"air_quality"`
}

type CurrentWeatherResult struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

type DaySummary struct {
	MaxtempC          float64 `json:"maxtemp_c"`
	MaxtempF          float64 `json:"maxtemp_f"`
	MintempC          float64 `json:"mintemp_c"`
	MintempF          float64 `json:"mintemp_f"`
	AvgtempC          float64 `json:"avgtemp_c"`
	AvgtempF          float64 `json:"avgtemp_f"`
	Condition         string  `json:"condition"`
	MaxwindKph        float64 `json:"maxwind_kph"`
	TotalprecipMm     float64 `json:"totalprecip_mm"`
	Avghumidity       float64 `json:"avghumidity"`
	DailyChanceOfRain int     `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int     `json:"daily_chance_of_snow"`
	UV                float64 `json:"uv"`
}

type Astro struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
	MoonPhase string `json:"moon_phase"`
}

type ForecastDay struct {
	Date  string     `json:"date"`
	Day   DaySummary `json:"day"`
	Astro Astro      `json:"astro"`
}

type ForecastResult struct {
	Location Location          `json:"location"`
	Forecast []ForecastDay     `json:"forecast"`
	Alerts   []json.RawMessage `json:"alerts"`
}

type LocationMatch struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

type SearchResult struct {
	Locations []LocationMatch `json:"locations"`
}

type AstronomyInfo struct {
	Sunrise          string      `json:"sunrise"`
	Sunset           string      `json:"sunset"`
	Moonrise         string      `json:"moonrise"`
	Moonset          string      `json:"moonset"`
	MoonPhase        string      `json:"moon_phase"`
	MoonIllumination json.Number `json:"moon_illumination"`
}

type AstronomyResult struct {
	Location  Location      `json:"location"`
	Astronomy AstronomyInfo `json:"astronomy"`
}

type AirQualityResult struct {
	Location   LocationSummary `json:"location"`
	AirQuality map[string]any  `json:"air_quality"`
}

// ErrorResult is the uniform failure shape every tool returns instead of
// raising across the tool boundary. Status and Details are populated only
// for upstream HTTP failures.
type ErrorResult struct {
	Message string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}
