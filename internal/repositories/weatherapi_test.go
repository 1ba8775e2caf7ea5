package repositories

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-facade/config"
	"weather-facade/internal/models"
	"weather-facade/pkg/logger"
)

const seattleBody = `{"location":{"name":"Seattle","country":"USA"},"current":{"temp_c":15.5,"feelslike_c":14.0,"condition":{"text":"Partly cloudy"},"humidity":75,"wind_kph":10.5,"last_updated_epoch":1700000000}}`

func testLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

// newMockServer serves body with status and counts the requests it received.
func newMockServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestWeatherAPIRepository_Name(t *testing.T) {
	repo := &WeatherAPIRepository{}
	expected := "weatherapi"
	if name := repo.Name(); name != expected {
		t.Errorf("Expected name to be %s, got %s", expected, name)
	}
}

func TestWeatherAPIRepository_FetchCurrent_Success(t *testing.T) {
	srv, calls := newMockServer(t, http.StatusOK, seattleBody)
	repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

	result, err := repo.FetchCurrent(context.Background(), "Seattle")

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	assert.Equal(t, models.NormalizedWeather{
		City:                  "Seattle",
		Country:               "USA",
		TemperatureCelsius:    15.5,
		FeelsLikeCelsius:      14.0,
		Description:           "Partly cloudy",
		HumidityPercent:       75,
		WindSpeedKph:          10.5,
		ObservedAtUnixSeconds: 1700000000,
	}, result)
}

func TestWeatherAPIRepository_FetchCurrent_RequestShape(t *testing.T) {
	var gotPath, gotKey, gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotQ = r.URL.Query().Get("q")
		_, _ = w.Write([]byte(seattleBody))
	}))
	defer srv.Close()

	repo := NewWeatherAPIRepository("test-key", srv.URL+"/v1/", testLogger(), srv.Client())

	_, err := repo.FetchCurrent(context.Background(), "São Paulo & Co")
	require.NoError(t, err)

	assert.Equal(t, "/v1/current.json", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "São Paulo & Co", gotQ)
}

func TestWeatherAPIRepository_FetchCurrent_PrefersMetricFields(t *testing.T) {
	body := `{"location":{"name":"Denver","country":"United States of America"},
		"current":{"temp_c":-2.0,"temp_f":28.4,"feelslike_c":-6.1,"feelslike_f":21.0,
		"humidity":40,"wind_kph":20.2,"wind_mph":12.5,"last_updated_epoch":1700000900}}`
	srv, _ := newMockServer(t, http.StatusOK, body)
	repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

	result, err := repo.FetchCurrent(context.Background(), "Denver")

	require.NoError(t, err)
	assert.Equal(t, -2.0, result.TemperatureCelsius)
	assert.Equal(t, -6.1, result.FeelsLikeCelsius)
	assert.Equal(t, 20.2, result.WindSpeedKph)
	assert.Empty(t, result.Description, "missing condition yields an empty description")
}

func TestWeatherAPIRepository_FetchCurrent_CaseInsensitiveFields(t *testing.T) {
	body := `{"Location":{"Name":"Oslo","Country":"Norway"},"Current":{"Temp_C":1.5,"FeelsLike_C":-1.0,"Condition":{"Text":"Snow"},"Humidity":90,"Wind_Kph":5.0,"Last_Updated_Epoch":1700001000}}`
	srv, _ := newMockServer(t, http.StatusOK, body)
	repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

	result, err := repo.FetchCurrent(context.Background(), "Oslo")

	require.NoError(t, err)
	assert.Equal(t, "Oslo", result.City)
	assert.Equal(t, "Norway", result.Country)
	assert.Equal(t, 1.5, result.TemperatureCelsius)
	assert.Equal(t, "Snow", result.Description)
	assert.Equal(t, 90, result.HumidityPercent)
	assert.Equal(t, int64(1700001000), result.ObservedAtUnixSeconds)
}

func TestWeatherAPIRepository_FetchCurrent_NotConfigured(t *testing.T) {
	srv, calls := newMockServer(t, http.StatusOK, seattleBody)
	repo := NewWeatherAPIRepository("", srv.URL, testLogger(), srv.Client())

	_, err := repo.FetchCurrent(context.Background(), "Seattle")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, int32(0), atomic.LoadInt32(calls), "no outbound call without an API key")
}

func TestWeatherAPIRepository_FetchCurrent_BlankKeyIsSent(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":2006,"message":"API key is invalid."}}`))
	}))
	defer srv.Close()

	repo := NewWeatherAPIRepository("   ", srv.URL, testLogger(), srv.Client())

	_, err := repo.FetchCurrent(context.Background(), "Seattle")

	var statusErr *UpstreamStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "   ", gotKey)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}

func TestWeatherAPIRepository_FetchCurrent_HTTPError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError} {
		srv, _ := newMockServer(t, status, `{"error":{"code":1006,"message":"No matching location found."}}`)
		repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

		_, err := repo.FetchCurrent(context.Background(), "Atlantis")

		var statusErr *UpstreamStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, status, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "No matching location found.")
		assert.NotErrorIs(t, err, ErrMalformedResponse)
	}
}

func TestWeatherAPIRepository_FetchCurrent_MissingSections(t *testing.T) {
	bodies := map[string]string{
		"missing current":  `{"location":{"name":"Seattle","country":"USA"}}`,
		"missing location": `{"current":{"temp_c":15.5}}`,
		"null current":     `{"location":{"name":"Seattle"},"current":null}`,
		"empty object":     `{}`,
		"null document":    `null`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			srv, _ := newMockServer(t, http.StatusOK, body)
			repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

			result, err := repo.FetchCurrent(context.Background(), "Seattle")

			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Equal(t, models.NormalizedWeather{}, result)
		})
	}
}

func TestWeatherAPIRepository_FetchCurrent_InvalidJSON(t *testing.T) {
	srv, _ := newMockServer(t, http.StatusOK, "invalid json")
	repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

	_, err := repo.FetchCurrent(context.Background(), "Seattle")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "failed to parse JSON response")
}

func TestWeatherAPIRepository_FetchCurrent_ErrorHandling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	repo := NewWeatherAPIRepository("test-key", url, testLogger(), http.DefaultClient)

	_, err := repo.FetchCurrent(context.Background(), "Seattle")

	require.Error(t, err)
	var statusErr *UpstreamStatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestWeatherAPIRepository_FetchCurrent_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	repo := NewWeatherAPIRepository("test-key", srv.URL, testLogger(), srv.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := repo.FetchCurrent(ctx, "Seattle")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestInitWeatherRepository(t *testing.T) {
	cfg := &config.Config{
		Weather: config.WeatherConfig{
			APIKey:  "test-key",
			BaseURL: "http://weather.local/v1/",
		},
	}

	repo := InitWeatherRepository(cfg, testLogger(), http.DefaultClient)

	weatherAPI, ok := repo.(*WeatherAPIRepository)
	require.True(t, ok)
	assert.Equal(t, "test-key", weatherAPI.APIKey)
	assert.Equal(t, "http://weather.local/v1", weatherAPI.BaseURL)
}

func TestNewWeatherAPIRepository_Defaults(t *testing.T) {
	repo := NewWeatherAPIRepository("", "", testLogger(), nil)

	assert.Equal(t, WeatherAPIBaseURL, repo.BaseURL)
	assert.NotNil(t, repo.httpClient)
}
