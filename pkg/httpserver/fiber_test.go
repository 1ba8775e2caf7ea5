package httpserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFiberServer_Probes(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app"})

	for _, path := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestInitFiberServer_RequestIDAndRecover(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app", EnableStackTrace: true})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestInitFiberServer_RoutesEncodedSlashAsOneSegment(t *testing.T) {
	app := InitFiberServer(Options{AppName: "test-app"})
	app.Get("/echo/:name", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("name"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/echo/a%2Fb", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "a%2Fb", string(body))
}
