package repositories

import (
	"context"
	"net/http"

	"weather-facade/config"
	"weather-facade/internal/models"
	"weather-facade/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherRepository fetches current conditions for a city from a single provider.
// Implementations perform exactly one outbound call per FetchCurrent.
type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.NormalizedWeather, error)
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger, httpClient HTTPClient) WeatherRepository {
	return NewWeatherAPIRepository(cfg.Weather.APIKey, cfg.Weather.BaseURL, l, httpClient)
}
