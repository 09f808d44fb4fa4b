package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "orgpulse/internal/errors"
	"orgpulse/internal/services"
	"orgpulse/internal/shared/testutil"
	api "orgpulse/pkg/contracts/api/v1"
	"orgpulse/pkg/contracts/domain"
)

// MockChartService is a mock implementation of ChartServiceInterface
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) Departments(ctx context.Context) ([]domain.DepartmentSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentSummary), args.Error(1)
}

func (m *MockChartService) BarChart(ctx context.Context, department string) (domain.BarChartResult, error) {
	args := m.Called(department)
	return args.Get(0).(domain.BarChartResult), args.Error(1)
}

func (m *MockChartService) Heatmap(ctx context.Context) (domain.HeatmapResult, error) {
	args := m.Called()
	return args.Get(0).(domain.HeatmapResult), args.Error(1)
}

func (m *MockChartService) Graph(ctx context.Context, department string) (domain.GraphResult, error) {
	args := m.Called(department)
	return args.Get(0).(domain.GraphResult), args.Error(1)
}

func (m *MockChartService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	args := m.Called()
	return args.Get(0).(domain.Dashboard), args.Error(1)
}

func (m *MockChartService) Export(ctx context.Context, w io.Writer, req api.ExportRequest) error {
	args := m.Called(req)
	if payload, ok := args.Get(0).(string); ok && payload != "" {
		_, _ = io.WriteString(w, payload)
	}
	return args.Error(1)
}

func newTestRouter(t *testing.T, svc ChartServiceInterface) http.Handler {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	errorHandler := apierrors.NewErrorHandler(logger, false, ProblemMappings()...)
	return NewChartHandler(svc, logger, errorHandler).Routes()
}

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestChartHandler_GetDepartments(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *MockChartService)
		wantStatus int
		wantType   string
	}{
		{
			name: "success",
			setupMock: func(m *MockChartService) {
				m.On("Departments").Return([]domain.DepartmentSummary{
					{Department: domain.DepartmentFinance, Label: "Finance", Members: 2},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "dataset not loaded",
			setupMock: func(m *MockChartService) {
				m.On("Departments").Return(nil, services.ErrDatasetNotLoaded)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantType:   apierrors.TypeDatasetNotLoaded,
		},
		{
			name: "unexpected error",
			setupMock: func(m *MockChartService) {
				m.On("Departments").Return(nil, errors.New("disk on fire"))
			},
			wantStatus: http.StatusInternalServerError,
			wantType:   apierrors.TypeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChartService)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newTestRouter(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/departments", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, decodeProblem(t, rec)["type"])
			} else {
				var env envelope
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
				assert.Equal(t, "success", env.Status)
				assert.Contains(t, string(env.Data), `"members":2`)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestChartHandler_GetHistogram(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(m *MockChartService)
		wantStatus int
		wantType   string
	}{
		{
			name:  "success",
			query: "?department=Finance",
			setupMock: func(m *MockChartService) {
				m.On("BarChart", "Finance").Return(domain.BarChartResult{Checkin: []int{1}, Checkout: []int{0}, XLabels: []string{"00:00"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing department",
			query:      "",
			setupMock:  func(m *MockChartService) {},
			wantStatus: http.StatusBadRequest,
			wantType:   apierrors.TypeValidation,
		},
		{
			name:  "unknown department",
			query: "?department=Marketing",
			setupMock: func(m *MockChartService) {
				m.On("BarChart", "Marketing").Return(domain.BarChartResult{}, fmt.Errorf("%w: %q", services.ErrDepartmentNotFound, "Marketing"))
			},
			wantStatus: http.StatusNotFound,
			wantType:   apierrors.TypeDepartmentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChartService)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newTestRouter(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attendance/histogram"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, decodeProblem(t, rec)["type"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestChartHandler_GetGraphEscapedDepartment(t *testing.T) {
	svc := new(MockChartService)
	svc.On("Graph", "R&D").Return(domain.GraphResult{MaxCount: 7}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/social/graph?department=R%26D", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, string(env.Data), `"maxCount":7`)
	svc.AssertExpectations(t)
}

func TestChartHandler_GetHeatmapAndDashboard(t *testing.T) {
	svc := new(MockChartService)
	svc.On("Heatmap").Return(domain.HeatmapResult{XAxisData: []string{"2024-01-02"}, MaxValue: 9}, nil)
	svc.On("Dashboard").Return(domain.Dashboard{
		Departments: []domain.DepartmentCharts{{Department: domain.DepartmentHR, Label: "HR"}},
	}, nil)
	router := newTestRouter(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/attendance/heatmap", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"maxValue":9`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"department":"HR"`)

	svc.AssertExpectations(t)
}

func TestChartHandler_Export(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		setupMock       func(m *MockChartService)
		wantStatus      int
		wantContentType string
		wantDisposition string
		wantBody        string
	}{
		{
			name: "graph csv",
			path: "/export/graph?department=R%26D",
			setupMock: func(m *MockChartService) {
				m.On("Export", api.ExportRequest{Chart: "graph", Department: "R&D", Format: "csv"}).Return("id,name\n", nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: "text/csv; charset=utf-8",
			wantDisposition: `attachment; filename="graph_rnd.csv"`,
			wantBody:        "id,name\n",
		},
		{
			name: "heatmap xlsx without department",
			path: "/export/heatmap?format=xlsx",
			setupMock: func(m *MockChartService) {
				m.On("Export", api.ExportRequest{Chart: "heatmap", Format: "xlsx"}).Return("PK", nil)
			},
			wantStatus:      http.StatusOK,
			wantContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			wantBody:        "PK",
		},
		{
			name:       "histogram needs a department",
			path:       "/export/histogram",
			setupMock:  func(m *MockChartService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown chart",
			path:       "/export/pie?department=HR",
			setupMock:  func(m *MockChartService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported format",
			path:       "/export/graph?department=HR&format=pdf",
			setupMock:  func(m *MockChartService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure after partial write",
			path: "/export/graph?department=Ops",
			setupMock: func(m *MockChartService) {
				m.On("Export", api.ExportRequest{Chart: "graph", Department: "Ops", Format: "csv"}).
					Return("partial", services.ErrDepartmentNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockChartService)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newTestRouter(t, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantContentType, rec.Header().Get("Content-Type"))
				assert.Equal(t, tt.wantBody, rec.Body.String())
				if tt.wantDisposition != "" {
					assert.Equal(t, tt.wantDisposition, rec.Header().Get("Content-Disposition"))
				}
			} else {
				assert.NotContains(t, rec.Body.String(), "partial")
				assert.Empty(t, rec.Header().Get("Content-Disposition"))
			}
			svc.AssertExpectations(t)
		})
	}
}
