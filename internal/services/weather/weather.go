package weather

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"weather-facade/internal/models"
	"weather-facade/internal/repositories"
	"weather-facade/pkg/logger"
	"weather-facade/pkg/metrics"
)

// WeatherService performs weather lookups and classifies their outcome.
type WeatherService struct {
	repo    repositories.WeatherRepository
	metrics *metrics.Registry
	l       *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, m *metrics.Registry, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo:    repo,
		metrics: m,
		l:       l,
	}
}

// Lookup performs one provider call for city. It records one weather_api_calls_total
// observation labelled with the outcome and one duration observation, whatever the outcome.
// city must already be trimmed and non-empty.
func (s *WeatherService) Lookup(ctx context.Context, city string) models.LookupOutcome {
	timer := prometheus.NewTimer(s.metrics.WeatherAPIDuration)

	weather, err := s.repo.FetchCurrent(ctx, city)
	outcome := classify(weather, err)

	timer.ObserveDuration()
	s.metrics.WeatherAPICalls.WithLabelValues(outcome.Label()).Inc()
	s.logOutcome(city, outcome)

	return outcome
}

func classify(weather models.NormalizedWeather, err error) models.LookupOutcome {
	if err == nil {
		return models.LookupOutcome{Kind: models.OutcomeSuccess, Weather: &weather}
	}

	var statusErr *repositories.UpstreamStatusError
	switch {
	case errors.Is(err, repositories.ErrNotConfigured):
		return models.LookupOutcome{Kind: models.OutcomeNotConfigured, Err: err}
	case errors.As(err, &statusErr):
		return models.LookupOutcome{Kind: models.OutcomeUpstreamHTTPError, StatusCode: statusErr.StatusCode, Err: err}
	case errors.Is(err, repositories.ErrMalformedResponse):
		return models.LookupOutcome{Kind: models.OutcomeMalformedResponse, Err: err}
	default:
		return models.LookupOutcome{Kind: models.OutcomeUpstreamTransportError, Err: err}
	}
}

func (s *WeatherService) logOutcome(city string, outcome models.LookupOutcome) {
	fields := map[string]any{
		"city":     city,
		"provider": s.repo.Name(),
		"outcome":  outcome.Label(),
	}

	switch outcome.Kind {
	case models.OutcomeSuccess:
		s.l.Info("successfully retrieved weather data", fields)
	case models.OutcomeNotConfigured:
		s.l.Warning("weather api key is not configured", fields)
	case models.OutcomeUpstreamHTTPError:
		var statusErr *repositories.UpstreamStatusError
		if errors.As(outcome.Err, &statusErr) {
			fields["status"] = statusErr.StatusCode
			fields["body"] = statusErr.Body
		}
		s.l.Warning("weather api returned an error status", fields)
	default:
		s.l.Error(outcome.Err, fields)
	}
}
