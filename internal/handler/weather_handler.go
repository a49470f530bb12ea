package handler

import (
	"errors"
	"fmt"

	"github.com/miyamo2/qilin"

	"github.com/fakhrymubarak/weatherapi-mcp/internal/model"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/repository"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/service"
)

// ToolGetCurrentWeatherRequest contains input parameters for the get_current_weather tool.
type ToolGetCurrentWeatherRequest struct {
	Location string `json:"location"`
}

// ToolGetForecastRequest contains input parameters for the get_forecast tool.
type ToolGetForecastRequest struct {
	Location string `json:"location"`
	Days     int    `json:"days"`
}

// ToolSearchLocationRequest contains input parameters for the search_location tool.
type ToolSearchLocationRequest struct {
	Query string `json:"query"`
}

// ToolGetAstronomyRequest contains input parameters for the get_astronomy tool.
type ToolGetAstronomyRequest struct {
	Location string `json:"location"`
	Date     string `json:"date,omitempty"`
}

// ToolGetAirQualityRequest contains input parameters for the get_air_quality tool.
type ToolGetAirQualityRequest struct {
	Location string `json:"location"`
}

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
}

func NewWeatherHandler(svc ...service.WeatherServiceInterface) *WeatherHandler {
	var weatherService service.WeatherServiceInterface
	if len(svc) > 0 && svc[0] != nil {
		weatherService = svc[0]
	} else {
		weatherService = service.NewWeatherService()
	}
	return &WeatherHandler{WeatherService: weatherService}
}

// errorResultFor converts any failure raised below the tool boundary into
// the uniform ErrorResult shape. Nothing propagates as a protocol fault.
func errorResultFor(err error) *model.ErrorResult {
	var upstream *repository.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return &model.ErrorResult{
			Message: fmt.Sprintf("HTTP error: %d", upstream.StatusCode),
			Status:  upstream.StatusCode,
			Details: upstream.Body,
		}
	default:
		// Credential, validation, transport and decode failures all surface
		// with their own message and nothing else.
		return &model.ErrorResult{Message: err.Error()}
	}
}

// respond is the single result-wrapping adapter shared by every tool: a
// populated result on success, an ErrorResult otherwise.
func respond[T any](c qilin.ToolContext, result T, err error) error {
	if err != nil {
		return c.JSON(errorResultFor(err))
	}
	return c.JSON(result)
}

func (h *WeatherHandler) GetCurrentWeather(c qilin.ToolContext) error {
	var req ToolGetCurrentWeatherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(errorResultFor(err))
	}
	result, err := h.WeatherService.CurrentWeather(c.Context(), req.Location)
	return respond(c, result, err)
}

func (h *WeatherHandler) GetForecast(c qilin.ToolContext) error {
	var req ToolGetForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(errorResultFor(err))
	}
	result, err := h.WeatherService.Forecast(c.Context(), req.Location, req.Days)
	return respond(c, result, err)
}

func (h *WeatherHandler) SearchLocation(c qilin.ToolContext) error {
	var req ToolSearchLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(errorResultFor(err))
	}
	result, err := h.WeatherService.SearchLocations(c.Context(), req.Query)
	return respond(c, result, err)
}

func (h *WeatherHandler) GetAstronomy(c qilin.ToolContext) error {
	var req ToolGetAstronomyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(errorResultFor(err))
	}
	result, err := h.WeatherService.Astronomy(c.Context(), req.Location, req.Date)
	return respond(c, result, err)
}

func (h *WeatherHandler) GetAirQuality(c qilin.ToolContext) error {
	var req ToolGetAirQualityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(errorResultFor(err))
	}
	result, err := h.WeatherService.AirQuality(c.Context(), req.Location)
	return respond(c, result, err)
}
