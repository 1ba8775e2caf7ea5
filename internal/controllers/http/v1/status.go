package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"weather-facade/internal/models"
	"weather-facade/pkg/buildinfo"
	"weather-facade/pkg/metrics"
)

const (
	functionGetVersion  = "GetVersion"
	functionGetMetrics  = "GetMetrics"
	functionHealthCheck = "HealthCheck"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp int64  `json:"timestamp" example:"1700000000"`
	Version   string `json:"version" example:"abc123"`
}

// GetVersion godoc
// @Summary Get build information
// @Description Reports the service version, source revision, build date and environment.
// @Tags Operations
// @Produce json
// @Success 200 {object} models.VersionInfo
// @Router /version [get]
func (r *routes) handleVersion(c *fiber.Ctx) error {
	defer prometheus.NewTimer(r.metrics.FunctionDuration.WithLabelValues(functionGetVersion)).ObserveDuration()

	info := buildinfo.Read()
	versionInfo := models.VersionInfo{
		Version:     buildinfo.FirstNonEmpty(info.Version, r.cfg.App.Version),
		GitSha:      buildinfo.FirstNonEmpty(r.cfg.Build.SourceVersion, info.Revision),
		BuildDate:   buildinfo.FirstNonEmpty(r.cfg.Build.Date, info.Time),
		Environment: buildinfo.FirstNonEmpty(r.cfg.Build.Environment),
	}

	r.metrics.FunctionInvocations.WithLabelValues(functionGetVersion, "success").Inc()
	r.l.Info("version info retrieved", map[string]any{"versionInfo": versionInfo})

	return c.JSON(versionInfo)
}

// GetMetrics godoc
// @Summary Prometheus metrics
// @Description Current state of the metrics registry in the prometheus text exposition format 0.0.4.
// @Tags Operations
// @Produce plain
// @Success 200 {string} string "metrics"
// @Failure 500 "metrics could not be serialized"
// @Router /metrics [get]
func (r *routes) handleMetrics(c *fiber.Ctx) error {
	defer prometheus.NewTimer(r.metrics.FunctionDuration.WithLabelValues(functionGetMetrics)).ObserveDuration()

	var buf bytes.Buffer
	if err := r.metrics.WriteText(&buf); err != nil {
		r.l.Error(err)
		r.metrics.FunctionInvocations.WithLabelValues(functionGetMetrics, "error").Inc()

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	r.metrics.FunctionInvocations.WithLabelValues(functionGetMetrics, "success").Inc()

	c.Set(fiber.HeaderContentType, metrics.ContentType)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// HealthCheck godoc
// @Summary Health check
// @Tags Operations
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (r *routes) handleHealth(c *fiber.Ctx) error {
	defer prometheus.NewTimer(r.metrics.FunctionDuration.WithLabelValues(functionHealthCheck)).ObserveDuration()

	r.l.Debug("health check requested")
	r.metrics.FunctionInvocations.WithLabelValues(functionHealthCheck, "success").Inc()

	return c.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: r.now().Unix(),
		Version:   buildinfo.FirstNonEmpty(r.cfg.Build.SourceVersion),
	})
}
