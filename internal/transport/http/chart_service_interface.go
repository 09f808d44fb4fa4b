package http

import (
	"context"
	"io"

	api "orgpulse/pkg/contracts/api/v1"
	"orgpulse/pkg/contracts/domain"
)

// ChartServiceInterface defines the chart operations served over HTTP
type ChartServiceInterface interface {
	Departments(ctx context.Context) ([]domain.DepartmentSummary, error)
	BarChart(ctx context.Context, department string) (domain.BarChartResult, error)
	Heatmap(ctx context.Context) (domain.HeatmapResult, error)
	Graph(ctx context.Context, department string) (domain.GraphResult, error)
	Dashboard(ctx context.Context) (domain.Dashboard, error)
	Export(ctx context.Context, w io.Writer, req api.ExportRequest) error
}
