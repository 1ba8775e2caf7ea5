package http

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-facade/config"
	"weather-facade/docs"
	"weather-facade/internal/models"
	"weather-facade/pkg/logger"
	"weather-facade/pkg/metrics"
)

// WeatherLookup is satisfied by *weather.WeatherService.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) models.LookupOutcome
}

type routes struct {
	service  WeatherLookup
	metrics  *metrics.Registry
	cfg      *config.Config
	l        *logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	weatherService WeatherLookup,
	registry *metrics.Registry,
	l *logger.Logger,
) {
	r := &routes{
		service:  weatherService,
		metrics:  registry,
		cfg:      cfg,
		l:        l,
		validate: validator.New(),
		now:      time.Now,
	}

	// Swagger documentation
	if cfg.IsDevelopment() {
		app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(docs.SwaggerInfo.ReadDoc())
		})

		app.Get("/swagger/*", swagger.New(swagger.Config{
			URL:         "/swagger/doc.json",
			DeepLinking: true,
		}))
	}

	// API routes
	app.Get("/weather/:city?", r.handleWeatherCall)
	app.Get("/version", r.handleVersion)
	app.Get("/metrics", r.handleMetrics)
	app.Get("/health", r.handleHealth)
}

func (r *routes) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := r.cfg.Server.RequestTimeoutDuration()
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}
