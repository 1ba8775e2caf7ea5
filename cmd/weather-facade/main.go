package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"weather-facade/config"
	v1 "weather-facade/internal/controllers/http/v1"
	"weather-facade/internal/repositories"
	"weather-facade/internal/services/weather"
	"weather-facade/pkg/httpclient"
	"weather-facade/pkg/httpserver"
	"weather-facade/pkg/logger"
	"weather-facade/pkg/metrics"
	"weather-facade/pkg/observe"
)

// @title Weather Facade
// @version 1.0.0
// @description A thin HTTP facade over the WeatherAPI.com current conditions endpoint.

// @contact.name Weather Facade Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Current weather lookups
// @tag.name Operations
// @tag.description Build, health and metrics endpoints
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		sentryHook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		sentryHook.SetLogger(logger.NewZapLogger(cnf.App.Name, os.Stderr))
		writers = append(writers, sentryHook)
	}

	l := logger.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Error(err)
	}

	if cnf.Weather.APIKey == "" {
		l.Warning("weather API key is not configured, lookups will report not found")
	}

	registry := metrics.NewRegistry()

	repo := repositories.InitWeatherRepository(cnf, l, httpclient.New(cnf.Weather.TimeoutDuration()))

	service := weather.NewWeatherService(repo, registry, l)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeoutDuration(),
		WriteTimeout: cnf.Server.WriteTimeoutDuration(),
		IdleTimeout:  cnf.Server.IdleTimeoutDuration(),

		EnableStackTrace: cnf.IsDevelopment(),
	})

	v1.NewRouter(
		app,
		cnf,
		service,
		registry,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error(), "port": cnf.Server.Port})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
