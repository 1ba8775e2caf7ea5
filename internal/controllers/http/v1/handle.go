package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
)

const functionGetWeather = "GetWeather"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City parameter is required"`
}

// WeatherQuery is the validated input of the weather endpoint.
type WeatherQuery struct {
	City string `validate:"required"`
}

// GetWeather godoc
// @Summary Get current weather for a city
// @Description Looks up current conditions for the city at the weather provider and returns them in a provider-independent shape.
// @Description Every lookup failure (unknown city, provider error, missing API key) is reported as 404.
// @Tags Weather
// @Produce json
// @Param city path string true "City name" example(Seattle)
// @Success 200 {object} models.NormalizedWeather "Successful response"
// @Failure 400 {object} ErrorResponse "City parameter is required"
// @Failure 404 {object} ErrorResponse "Weather data not found for city"
// @Router /weather/{city} [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/weather/Seattle"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	defer prometheus.NewTimer(r.metrics.FunctionDuration.WithLabelValues(functionGetWeather)).ObserveDuration()

	query := WeatherQuery{City: strings.TrimSpace(cityParam(c))}

	r.l.Info("processing weather request", map[string]any{"city": query.City})

	if err := r.validate.Struct(query); err != nil {
		r.metrics.FunctionInvocations.WithLabelValues(functionGetWeather, "bad_request").Inc()
		r.l.Warning("city parameter is required")

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "City parameter is required",
		})
	}

	ctx, cancel := r.requestContext(c)
	defer cancel()

	outcome := r.service.Lookup(ctx, query.City)
	if !outcome.Success() {
		r.metrics.FunctionInvocations.WithLabelValues(functionGetWeather, "not_found").Inc()
		r.l.Warning("weather data not found", map[string]any{
			"city":    query.City,
			"outcome": outcome.Kind.String(),
		})

		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "Weather data not found for city: " + query.City,
		})
	}

	r.metrics.FunctionInvocations.WithLabelValues(functionGetWeather, "success").Inc()
	r.l.Info("successfully processed weather request", map[string]any{"city": query.City})

	return c.JSON(outcome.Weather)
}

// cityParam decodes the raw path segment, so "a%2Fb" yields "a/b".
// A segment with an invalid escape is used as sent.
func cityParam(c *fiber.Ctx) string {
	raw := utils.CopyString(c.Params("city"))
	city, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return city
}
