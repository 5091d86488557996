package telemetry_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"portfolio/internal/telemetry"
)

func attr(kvs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range kvs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestMiddlewareRecordsRouteAndStatus(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	app := fiber.New()
	app.Use(telemetry.Middleware(tp))
	app.Get("/projects/:name", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "x") })

	_, err := app.Test(httptest.NewRequest("GET", "/projects/weather", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "GET /projects/:name", spans[0].Name())
	v, ok := attr(spans[0].Attributes(), "http.response.status_code")
	require.True(t, ok)
	assert.EqualValues(t, 200, v.AsInt64())

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	v, _ = attr(spans[1].Attributes(), "http.response.status_code")
	assert.EqualValues(t, 502, v.AsInt64())
}

func TestSpanKeepsItsOwnPath(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	app := fiber.New()
	app.Use(telemetry.Middleware(tp))
	app.Use(func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })

	_, err := app.Test(httptest.NewRequest("GET", "/projects/weather", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("POST", "/zzzzzzzzzzzzzzzzz", nil))
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	v, ok := attr(spans[0].Attributes(), "url.path")
	require.True(t, ok)
	assert.Equal(t, "/projects/weather", v.AsString())
	v, _ = attr(spans[0].Attributes(), "http.request.method")
	assert.Equal(t, "GET", v.AsString())
	v, _ = attr(spans[1].Attributes(), "url.path")
	assert.Equal(t, "/zzzzzzzzzzzzzzzzz", v.AsString())
}

func TestSetupExportsToWriter(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := telemetry.Setup("portfolio-test", &buf)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(telemetry.Middleware(nil))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("hi") })
	_, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"GET /"`)
}
