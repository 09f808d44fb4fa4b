package domain

// DepartmentSummary lists a fixed department and its size.
type DepartmentSummary struct {
	Department Department `json:"department"`
	Label      string     `json:"label"`
	Members    int        `json:"members"`
}

// DepartmentCharts groups the per-department charts of the dashboard.
type DepartmentCharts struct {
	Department Department     `json:"department"`
	Label      string         `json:"label"`
	Histogram  BarChartResult `json:"histogram"`
	Graph      GraphResult    `json:"graph"`
}

// Dashboard is the full page: the three departments side by side plus
// the organization-wide heatmap.
type Dashboard struct {
	Departments []DepartmentCharts `json:"departments"`
	Heatmap     HeatmapResult      `json:"heatmap"`
}
