package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "orgpulse/internal/errors"
	"orgpulse/internal/services"
)

type staticDataset struct{ ready bool }

func (s staticDataset) Ready() bool { return s.ready }

func (s staticDataset) Info(ctx context.Context) (services.DatasetInfo, error) {
	return services.DatasetInfo{Source: "memory", Employees: 3}, nil
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		ready      bool
		wantStatus int
		wantBody   string
	}{
		{"health", "/", false, http.StatusOK, `"status":"ok"`},
		{"live", "/live", false, http.StatusOK, `"status":"alive"`},
		{"ready", "/ready", true, http.StatusOK, `"status":"ready"`},
		{"not ready", "/ready", false, http.StatusServiceUnavailable, `"status":"not_ready"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := services.NewHealthService("1.0.0", staticDataset{ready: tt.ready}, nil)
			h := NewHealthHandler(hs, nil)

			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHealthHandler_Version(t *testing.T) {
	h := NewHealthHandler(services.NewHealthService("1.0.0", nil, nil), nil)

	rec := httptest.NewRecorder()
	h.Version(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1.0.0", body["version"])
}

func TestMetricsHandler(t *testing.T) {
	errorHandler := apierrors.NewErrorHandler(nil, false)

	t.Run("disabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewMetricsHandler(nil, errorHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		exporter := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("chart_builds_total 1\n"))
		})
		rec := httptest.NewRecorder()
		NewMetricsHandler(exporter, errorHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "chart_builds_total")
	})
}
