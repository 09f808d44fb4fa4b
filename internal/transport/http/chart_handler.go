package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "orgpulse/internal/errors"
	"orgpulse/internal/exporter"
	mw "orgpulse/internal/middleware"
	api "orgpulse/pkg/contracts/api/v1"
)

// ChartHandler serves chart payloads and downloads with RFC 7807 errors
type ChartHandler struct {
	service      ChartServiceInterface
	validator    *mw.RequestValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewChartHandler creates a new chart handler
func NewChartHandler(service ChartServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ChartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartHandler{
		service:      service,
		validator:    mw.NewRequestValidator(logger),
		logger:       logger.With(slog.String("component", "chart_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the chart routes
func (h *ChartHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/departments", h.GetDepartments)
		r.Get("/attendance/histogram", h.GetHistogram)
		r.Get("/attendance/heatmap", h.GetHeatmap)
		r.Get("/social/graph", h.GetGraph)
		r.Get("/dashboard", h.GetDashboard)
	})

	r.Get("/export/{chart}", h.Export)

	return r
}

// GetDepartments handles GET /departments
func (h *ChartHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.Departments(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.Success(departments))
}

// GetHistogram handles GET /attendance/histogram?department=
func (h *ChartHandler) GetHistogram(w http.ResponseWriter, r *http.Request) {
	q, ok := h.departmentQuery(w, r)
	if !ok {
		return
	}

	res, err := h.service.BarChart(r.Context(), q.Department)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.Success(res))
}

// GetHeatmap handles GET /attendance/heatmap
func (h *ChartHandler) GetHeatmap(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Heatmap(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.Success(res))
}

// GetGraph handles GET /social/graph?department=
func (h *ChartHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	q, ok := h.departmentQuery(w, r)
	if !ok {
		return
	}

	res, err := h.service.Graph(r.Context(), q.Department)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.Success(res))
}

// GetDashboard handles GET /dashboard
func (h *ChartHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, api.Success(dash))
}

// Export handles GET /export/{chart}?department=&format=
func (h *ChartHandler) Export(w http.ResponseWriter, r *http.Request) {
	req := api.ExportRequestFrom(chi.URLParam(r, "chart"), r.URL.Query())
	if err := h.validator.ValidateStruct(req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	contentType, err := exporter.ContentType(req.Format)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	// Buffer so that a failed build still produces a problem response.
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), &buf, req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	filename := exporter.FileName(req.Chart, req.Department, req.Format)
	h.logger.InfoContext(r.Context(), "serving export",
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("chart", req.Chart),
		slog.String("file", filename),
		slog.Int("bytes", buf.Len()))

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *ChartHandler) departmentQuery(w http.ResponseWriter, r *http.Request) (api.DepartmentQuery, bool) {
	q := api.DepartmentQueryFrom(r.URL.Query())
	if err := h.validator.ValidateStruct(q); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return q, false
	}
	return q, true
}
