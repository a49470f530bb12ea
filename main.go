package main

import (
	"net/http"

	gojson "github.com/goccy/go-json"
	"github.com/miyamo2/qilin"

	"github.com/fakhrymubarak/weatherapi-mcp/internal/config"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/handler"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/repository"
	"github.com/fakhrymubarak/weatherapi-mcp/internal/service"
)

func main() {
	logger := config.GetLogger()

	// One immutable HTTP client for the whole process; invocations share it
	// without synchronization.
	httpClient := &http.Client{Timeout: config.GetHTTPTimeout()}
	weatherService := service.NewWeatherService(repository.NewWeatherRepository(httpClient))
	h := handler.NewWeatherHandler(weatherService)

	q := qilin.New("weatherapi",
		qilin.WithJSONMarshalFunc(gojson.Marshal),
		qilin.WithJSONUnmarshalFunc(gojson.Unmarshal))

	q.Tool("get_current_weather",
		(*handler.ToolGetCurrentWeatherRequest)(nil),
		h.GetCurrentWeather,
		qilin.ToolWithDescription("Get current weather conditions for a location"))

	q.Tool("get_forecast",
		(*handler.ToolGetForecastRequest)(nil),
		h.GetForecast,
		qilin.ToolWithDescription("Get weather forecast for a location (1-10 days)"))

	q.Tool("search_location",
		(*handler.ToolSearchLocationRequest)(nil),
		h.SearchLocation,
		qilin.ToolWithDescription("Search for locations by name (minimum 3 characters)"))

	q.Tool("get_astronomy",
		(*handler.ToolGetAstronomyRequest)(nil),
		h.GetAstronomy,
		qilin.ToolWithDescription("Get astronomy information (sunrise, sunset, moon phases) for a location"))

	q.Tool("get_air_quality",
		(*handler.ToolGetAirQualityRequest)(nil),
		h.GetAirQuality,
		qilin.ToolWithDescription("Get air quality data for a location"))

	logger.Infow("weatherapi MCP server starting", "transport", "stdio")
	if err := q.Start(); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
