package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"orgpulse/internal/config"
	"orgpulse/internal/shared/testutil"
)

func TestInitializeOTel(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	providers, err := InitializeOTel(nil, logger)
	require.NoError(t, err)
	require.NotNil(t, providers)

	assert.Nil(t, providers.TracerProvider, "tracing is off by default")
	assert.NotNil(t, providers.Tracer)
	assert.NotNil(t, providers.MeterProvider)
	assert.NotNil(t, providers.Meter)
	assert.NotNil(t, providers.Metrics)
	require.NotNil(t, providers.PrometheusHTTP)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, providers.Shutdown(ctx))
}

func TestInitializeOTelWithStdoutTracing(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	var spans bytes.Buffer

	cfg := DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "stdout"
	cfg.TraceWriter = &spans

	providers, err := InitializeOTel(cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, providers.TracerProvider)

	_, span := providers.Tracer.Start(context.Background(), "build-graph")
	span.End()

	require.NoError(t, providers.Shutdown(context.Background()))
	assert.Contains(t, spans.String(), "build-graph")
	assert.True(t, logs.ContainsMessage("Tracing initialized"))
}

func TestInitializeOTelRejectsUnknownExporter(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	cfg := DefaultOTelConfig()
	cfg.EnableTracing = true
	cfg.TraceExporter = "zipkin"

	_, err := InitializeOTel(cfg, logger)
	assert.Error(t, err)
}

func TestPrometheusEndpointServesChartMetrics(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	providers, err := InitializeOTel(DefaultOTelConfig(), logger)
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	RecordChartBuild(context.Background(), providers.Metrics, "graph", "Finance", 20*time.Millisecond, nil)

	rec := httptest.NewRecorder()
	providers.PrometheusHTTP.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "chart_builds_total")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestOTelConfigFromTelemetry(t *testing.T) {
	cfg := OTelConfigFromTelemetry(config.TelemetryConfig{
		ServiceName:    "orgpulse-test",
		Environment:    "staging",
		TracingEnabled: true,
		MetricsEnabled: false,
		TraceExporter:  "stdout",
		SampleRatio:    0.25,
	}, "1.2.3")

	assert.Equal(t, "orgpulse-test", cfg.ServiceName)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.True(t, cfg.EnableTracing)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, "stdout", cfg.TraceExporter)
	assert.Equal(t, 0.25, cfg.SampleRatio)
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range data.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	return sums
}

func TestRecordHelpers(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := CreateBusinessMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	RecordChartBuild(ctx, metrics, "histogram", "HR", time.Millisecond, nil)
	RecordChartBuild(ctx, metrics, "graph", "HR", time.Millisecond, errors.New("boom"))
	RecordChartExport(ctx, metrics, "heatmap", "csv")
	RecordDatasetLoad(ctx, metrics, map[string]int{"profiles": 5, "check_events": 7}, time.Second, nil)
	RecordHTTPRequest(ctx, metrics, http.MethodGet, "/api/v1/dashboard", http.StatusOK, time.Millisecond)

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["chart_builds_total"])
	assert.Equal(t, int64(1), sums["chart_build_errors_total"])
	assert.Equal(t, int64(1), sums["chart_exports_total"])
	assert.Equal(t, int64(1), sums["dataset_loads_total"])
	assert.Equal(t, int64(12), sums["dataset_records_loaded_total"])
	assert.Equal(t, int64(1), sums["http_requests_total"])
}

func TestRecordHelpersTolerateNilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordChartBuild(context.Background(), nil, "graph", "", 0, nil)
		RecordChartExport(context.Background(), nil, "graph", "xlsx")
		RecordDatasetLoad(context.Background(), nil, nil, 0, nil)
		RecordHTTPRequest(context.Background(), nil, "GET", "/", 200, 0)
	})
}

func TestRecordErrorMarksSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	ctx, span := tp.Tracer("test").Start(context.Background(), "load")
	RecordError(ctx, errors.New("bad file"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "bad file", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
	assert.Equal(t, "exception", ended[0].Events()[0].Name)
}
