package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"weather-facade/internal/models"
	"weather-facade/pkg/logger"
)

const (
	WeatherAPIBaseURL = "https://api.weatherapi.com/v1"

	maxResponseBytes = 1 << 20
)

type WeatherAPIRepository struct {
	APIKey     string
	BaseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

// NewWeatherAPIRepository accepts an empty apiKey; FetchCurrent then returns ErrNotConfigured.
func NewWeatherAPIRepository(apiKey, baseURL string, l *logger.Logger, httpClient HTTPClient) *WeatherAPIRepository {
	if baseURL == "" {
		baseURL = WeatherAPIBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &WeatherAPIRepository{
		APIKey:     apiKey,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		l:          l,
	}
}

func (w *WeatherAPIRepository) Name() string {
	return "weatherapi"
}

// WeatherAPIResponse is the subset of the WeatherAPI.com current.json payload we map.
// Location and Current are pointers so that their absence can be detected.
type WeatherAPIResponse struct {
	Location *WeatherAPILocation `json:"location"`
	Current  *WeatherAPICurrent  `json:"current"`
}

type WeatherAPILocation struct {
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	TzID    string  `json:"tz_id"`
}

type WeatherAPICurrent struct {
	LastUpdatedEpoch int64                `json:"last_updated_epoch"`
	TempC            float64              `json:"temp_c"`
	TempF            float64              `json:"temp_f"`
	FeelsLikeC       float64              `json:"feelslike_c"`
	FeelsLikeF       float64              `json:"feelslike_f"`
	Condition        *WeatherAPICondition `json:"condition"`
	WindKph          float64              `json:"wind_kph"`
	WindMph          float64              `json:"wind_mph"`
	Humidity         int                  `json:"humidity"`
}

type WeatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

func (w *WeatherAPIRepository) FetchCurrent(ctx context.Context, city string) (models.NormalizedWeather, error) {
	if w.APIKey == "" {
		return models.NormalizedWeather{}, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("key", w.APIKey)
	query.Set("q", city)
	endpoint := fmt.Sprintf("%s/current.json?%s", w.BaseURL, query.Encode())

	w.l.Info("making weatherapi API request", map[string]any{
		"city":    city,
		"baseUrl": w.BaseURL,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.NormalizedWeather{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return models.NormalizedWeather{}, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Debug("received weatherapi API response", map[string]any{
		"city":       city,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return models.NormalizedWeather{}, &UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err != nil {
		return models.NormalizedWeather{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var response WeatherAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.NormalizedWeather{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.Location == nil || response.Current == nil {
		return models.NormalizedWeather{}, ErrMalformedResponse
	}

	return normalize(response.Location, response.Current), nil
}

// normalize maps the provider payload onto the metric variant of every dual-unit field.
func normalize(loc *WeatherAPILocation, cur *WeatherAPICurrent) models.NormalizedWeather {
	var description string
	if cur.Condition != nil {
		description = cur.Condition.Text
	}

	return models.NormalizedWeather{
		City:                  loc.Name,
		Country:               loc.Country,
		TemperatureCelsius:    cur.TempC,
		FeelsLikeCelsius:      cur.FeelsLikeC,
		Description:           description,
		HumidityPercent:       cur.Humidity,
		WindSpeedKph:          cur.WindKph,
		ObservedAtUnixSeconds: cur.LastUpdatedEpoch,
	}
}
