// Package api contains the HTTP contract of the orgpulse chart API.
// Version v1 is served under /api/v1.
package api

import (
	"net/url"
)

// Chart names accepted by the export endpoint.
const (
	ChartHistogram = "histogram"
	ChartHeatmap   = "heatmap"
	ChartGraph     = "graph"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// DepartmentQuery selects the department of a per-department chart.
type DepartmentQuery struct {
	Department string `json:"department" query:"department" validate:"required,max=64"`
}

// ExportRequest describes a chart download.
type ExportRequest struct {
	Chart      string `json:"chart" param:"chart" validate:"required,oneof=histogram heatmap graph"`
	Department string `json:"department" query:"department" validate:"required_unless=Chart heatmap,max=64"`
	Format     string `json:"format" query:"format" validate:"required,oneof=csv xlsx"`
}

// DepartmentQueryFrom reads a DepartmentQuery from URL query values.
func DepartmentQueryFrom(values url.Values) DepartmentQuery {
	return DepartmentQuery{Department: values.Get("department")}
}

// ExportRequestFrom reads an ExportRequest. The format defaults to csv.
func ExportRequestFrom(chart string, values url.Values) ExportRequest {
	format := values.Get("format")
	if format == "" {
		format = FormatCSV
	}
	return ExportRequest{
		Chart:      chart,
		Department: values.Get("department"),
		Format:     format,
	}
}
