package model

import "encoding/json"

// Upstream response shapes for api.weatherapi.com/v1. Only the fields this
// gateway projects are declared; everything else is ignored by the decoder.
// Required top-level sections are pointers so an absent section surfaces as
// a decode failure instead of a zero-valued result.

type LocationPayload struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Localtime string  `json:"localtime"`
}

type ConditionPayload struct {
	Text string `json:"text"`
}

type CurrentPayload struct {
	TempC      float64          `json:"temp_c"`
	TempF      float64          `json:"temp_f"`
	Condition  ConditionPayload `json:"condition"`
	WindKph    float64          `json:"wind_kph"`
	WindMph    float64          `json:"wind_mph"`
	WindDir    string           `json:"wind_dir"`
	PressureMb float64          `json:"pressure_mb"`
	PrecipMm   float64          `json:"precip_mm"`
	Humidity   int              `json:"humidity"`
	Cloud      int              `json:"cloud"`
	FeelslikeC float64          `json:"feelslike_c"`
	FeelslikeF float64          `json:"feelslike_f"`
	VisKm      float64          `json:"vis_km"`
	UV         float64          `json:"uv"`
	// AirQuality is provider-defined and open-ended; it is passed through
	// verbatim and may be absent for some location types.
	AirQuality map[string]any `json:"air_quality"`
}

// CurrentResponse is the body of /current.json.
type CurrentResponse struct {
	Location *LocationPayload `json:"location"`
	Current  *CurrentPayload  `json:"current"`
}

type DayPayload struct {
	MaxtempC          float64          `json:"maxtemp_c"`
	MaxtempF          float64          `json:"maxtemp_f"`
	MintempC          float64          `json:"mintemp_c"`
	MintempF          float64          `json:"mintemp_f"`
	AvgtempC          float64          `json:"avgtemp_c"`
	AvgtempF          float64          `json:"avgtemp_f"`
	Condition         ConditionPayload `json:"condition"`
	MaxwindKph        float64          `json:"maxwind_kph"`
	TotalprecipMm     float64          `json:"totalprecip_mm"`
	Avghumidity       float64          `json:"avghumidity"`
	DailyChanceOfRain int              `json:"daily_chance_of_rain"`
	DailyChanceOfSnow int              `json:"daily_chance_of_snow"`
	UV                float64          `json:"uv"`
}

type AstroPayload struct {
	Sunrise   string `json:"sunrise"`
	Sunset    string `json:"sunset"`
	Moonrise  string `json:"moonrise"`
	Moonset   string `json:"moonset"`
	MoonPhase string `json:"moon_phase"`
	// The provider has shipped this field both as a number and as a string.
	MoonIllumination json.Number `json:"moon_illumination"`
}

type ForecastDayPayload struct {
	Date  string       `json:"date"`
	Day   DayPayload   `json:"day"`
	Astro AstroPayload `json:"astro"`
}

type ForecastPayload struct {
	ForecastDay []ForecastDayPayload `json:"forecastday"`
}

type AlertsPayload struct {
	Alert []json.RawMessage `json:"alert"`
}

// ForecastResponse is the body of /forecast.json. Alerts are optional.
type ForecastResponse struct {
	Location *LocationPayload `json:"location"`
	Forecast *ForecastPayload `json:"forecast"`
	Alerts   *AlertsPayload   `json:"alerts"`
}

// SearchLocationPayload is one entry of the /search.json top-level array.
type SearchLocationPayload struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

type AstronomyPayload struct {
	Astro *AstroPayload `json:"astro"`
}

// AstronomyResponse is the body of /astronomy.json.
type AstronomyResponse struct {
	Location  *LocationPayload  `json:"location"`
	Astronomy *AstronomyPayload `json:"astronomy"`
}
