// Package metrics holds the prometheus instruments shared by the lookup and handler layers.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/common/expfmt"
)

// ContentType is the content type of the text exposition format produced by WriteText.
const ContentType = "text/plain; version=0.0.4"

// Registry is an explicitly constructed, concurrency-safe set of instruments.
type Registry struct {
	reg *prometheus.Registry

	WeatherAPICalls     *prometheus.CounterVec
	WeatherAPIDuration  prometheus.Histogram
	FunctionInvocations *prometheus.CounterVec
	FunctionDuration    *prometheus.HistogramVec
}

func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		WeatherAPICalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weather_api_calls_total",
			Help: "Total number of weather API calls",
		}, []string{"status"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "weather_api_duration_seconds",
			Help:    "Duration of weather API calls in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		FunctionInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "function_invocations_total",
			Help: "Total number of function invocations",
		}, []string{"function", "status"}),
		FunctionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "function_duration_seconds",
			Help:    "Duration of function execution in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"function"}),
	}

	r.reg.MustRegister(
		r.WeatherAPICalls,
		r.WeatherAPIDuration,
		r.FunctionInvocations,
		r.FunctionDuration,
		collectors.NewGoCollector(),
	)

	return r
}

// Register adds extra collectors to the registry.
func (r *Registry) Register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.reg.Register(c); err != nil {
			return fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return nil
}

// WriteText gathers every metric family and writes it in the prometheus text format 0.0.4.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
