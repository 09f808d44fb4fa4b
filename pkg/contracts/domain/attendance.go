package domain

import "time"

// CheckEvent is one attendance record for an employee on a calendar day.
// Either punch may be missing.
type CheckEvent struct {
	ID       EmployeeID `json:"id"`
	Day      string     `json:"day"`
	Checkin  *time.Time `json:"checkin,omitempty"`
	Checkout *time.Time `json:"checkout,omitempty"`
}

// HasBothPunches reports whether both checkin and checkout are present.
func (e CheckEvent) HasBothPunches() bool {
	return e.Checkin != nil && e.Checkout != nil
}

// BarChartResult holds time-of-day frequencies for one department.
type BarChartResult struct {
	Checkin  []int    `json:"checkin"`
	Checkout []int    `json:"checkout"`
	XLabels  []string `json:"xLabels"`
}

// HeatmapCell is a (dayIndex, employeeIndex, hours) triple. It serializes
// as a three element array, the shape chart libraries expect.
type HeatmapCell [3]float64

// DayIndex returns the x-axis position.
func (c HeatmapCell) DayIndex() int { return int(c[0]) }

// EmployeeIndex returns the y-axis position.
func (c HeatmapCell) EmployeeIndex() int { return int(c[1]) }

// Hours returns the cell value.
func (c HeatmapCell) Hours() float64 { return c[2] }

// MarkPoint labels a department block on the heatmap's y axis.
type MarkPoint struct {
	Name  string `json:"name"`
	Coord [2]int `json:"coord"`
}

// MarkLine is a horizontal boundary between two department blocks.
type MarkLine struct {
	YAxis float64 `json:"yAxis"`
}

// HeatmapResult is the worked-hours grid for all recognized employees.
type HeatmapResult struct {
	SeriesData     []HeatmapCell `json:"seriesData"`
	XAxisData      []string      `json:"xAxisData"`
	YAxisData      []EmployeeID  `json:"yAxisData"`
	MaxValue       float64       `json:"maxValue"`
	DeptMarkPoints []MarkPoint   `json:"deptMarkPoints"`
	DeptMarkLines  []MarkLine    `json:"deptMarkLines"`
}
