package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultWeatherURL = "https://api.weatherapi.com/v1"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Build   BuildConfig   `yaml:"build"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" validate:"required"`
	Version string `yaml:"version" validate:"required"`
	Env     string `yaml:"env" validate:"required"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port           string `yaml:"port" validate:"required,numeric"`
	ReadTimeout    int    `yaml:"read_timeout" split_words:"true" validate:"gt=0"`
	WriteTimeout   int    `yaml:"write_timeout" split_words:"true" validate:"gt=0"`
	IdleTimeout    int    `yaml:"idle_timeout" split_words:"true" validate:"gt=0"`
	RequestTimeout int    `yaml:"request_timeout" split_words:"true" validate:"gt=0"`
}

// WeatherConfig holds the provider settings. An empty APIKey is allowed: lookups then
// report the service as not configured instead of failing at startup.
type WeatherConfig struct {
	APIKey  string `yaml:"api_key" envconfig:"WEATHER_API_KEY"`
	BaseURL string `yaml:"base_url" envconfig:"WEATHER_API_BASE_URL" validate:"required,url"`
	Timeout int    `yaml:"timeout" validate:"gt=0"`
}

// BuildConfig carries pipeline-provided metadata reported by /version and /health.
type BuildConfig struct {
	SourceVersion string `yaml:"source_version" envconfig:"BUILD_SOURCEVERSION"`
	Date          string `yaml:"date" envconfig:"BUILD_DATE"`
	Environment   string `yaml:"environment" envconfig:"AZURE_FUNCTIONS_ENVIRONMENT"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then the YAML file at path, then environment variables.
type FileConfigProvider struct {
	path     string
	validate *validator.Validate
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &FileConfigProvider{
		path:     path,
		validate: v,
	}
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-facade",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:           "8080",
			ReadTimeout:    10,
			WriteTimeout:   10,
			IdleTimeout:    120,
			RequestTimeout: 15,
		},
		Weather: WeatherConfig{
			BaseURL: DefaultWeatherURL,
			Timeout: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.Weather.BaseURL = strings.TrimRight(cnf.Weather.BaseURL, "/")

	return cnf, nil
}

// loadFromFile merges the YAML file into config. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	err := p.validate.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}

	return errors.New(strings.Join(msgs, "; "))
}

// describe renders a field error using the YAML path, e.g. "app.name is required".
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", path, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", path, fe.Tag())
	}
}

// IsDevelopment enables the swagger UI and panic stack traces.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration    { return seconds(s.ReadTimeout) }
func (s ServerConfig) WriteTimeoutDuration() time.Duration   { return seconds(s.WriteTimeout) }
func (s ServerConfig) IdleTimeoutDuration() time.Duration    { return seconds(s.IdleTimeout) }
func (s ServerConfig) RequestTimeoutDuration() time.Duration { return seconds(s.RequestTimeout) }
func (w WeatherConfig) TimeoutDuration() time.Duration       { return seconds(w.Timeout) }
