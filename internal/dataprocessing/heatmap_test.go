package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/pkg/contracts/domain"
)

func TestBuildHeatmap(t *testing.T) {
	idx := NewDepartmentIndex(profiles("2", "HR", "1", "Finance", "3", "Sales"))
	events := []domain.CheckEvent{
		{ID: "1", Day: "2024-01-03", Checkin: at("2024-01-03", "09:00:00"), Checkout: at("2024-01-03", "17:20:00")},
		{ID: "2", Day: "2024-01-02", Checkin: at("2024-01-02", "08:00:00"), Checkout: at("2024-01-02", "12:00:00")},
		{ID: "3", Day: "2024-01-01", Checkin: at("2024-01-01", "08:00:00"), Checkout: at("2024-01-01", "18:00:00")},
	}

	result := BuildHeatmap(idx, events, testOptions())

	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, result.XAxisData)
	assert.Equal(t, ids("1", "2"), result.YAxisData)
	assert.Equal(t, []domain.HeatmapCell{
		{0, 0, 0},
		{0, 1, 4},
		{1, 0, 8.33},
		{1, 1, 0},
	}, result.SeriesData)
	assert.Equal(t, 9.0, result.MaxValue)
}

func TestBuildHeatmap_WorkedHours(t *testing.T) {
	tests := []struct {
		name  string
		event domain.CheckEvent
		want  float64
	}{
		{
			name:  "normal shift",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "08:00:00"), Checkout: at("2024-01-02", "16:30:00")},
			want:  8.5,
		},
		{
			name:  "rounded to two places",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "08:00:00"), Checkout: at("2024-01-02", "08:00:20")},
			want:  0.01,
		},
		{
			name:  "exactly fourteen hours",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "06:00:00"), Checkout: at("2024-01-02", "20:00:00")},
			want:  14,
		},
		{
			name:  "over fourteen hours clamps to zero",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "06:00:00"), Checkout: at("2024-01-02", "20:00:01")},
			want:  0,
		},
		{
			name:  "checkout before checkin clamps to zero",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "17:00:00"), Checkout: at("2024-01-02", "09:00:00")},
			want:  0,
		},
		{
			name:  "missing checkout",
			event: domain.CheckEvent{Checkin: at("2024-01-02", "09:00:00")},
			want:  0,
		},
		{
			name:  "missing checkin",
			event: domain.CheckEvent{Checkout: at("2024-01-02", "09:00:00")},
			want:  0,
		},
	}

	idx := NewDepartmentIndex(profiles("1", "Finance"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tt.event
			ev.ID = "1"
			ev.Day = "2024-01-02"

			result := BuildHeatmap(idx, []domain.CheckEvent{ev}, testOptions())

			require.Len(t, result.SeriesData, 1)
			assert.Equal(t, tt.want, result.SeriesData[0].Hours())
			assert.GreaterOrEqual(t, result.SeriesData[0].Hours(), 0.0)
			assert.LessOrEqual(t, result.SeriesData[0].Hours(), 14.0)
		})
	}
}

func TestBuildHeatmap_DayFromSinglePunchEvent(t *testing.T) {
	idx := NewDepartmentIndex(profiles("1", "Finance"))
	events := []domain.CheckEvent{{ID: "1", Day: "2024-02-01", Checkin: at("2024-02-01", "09:00:00")}}

	result := BuildHeatmap(idx, events, testOptions())

	assert.Equal(t, []string{"2024-02-01"}, result.XAxisData)
	assert.Equal(t, []domain.HeatmapCell{{0, 0, 0}}, result.SeriesData)
	assert.Equal(t, 0.0, result.MaxValue)
}

func TestBuildHeatmap_RepeatedDayKeepsLastRecord(t *testing.T) {
	idx := NewDepartmentIndex(profiles("1", "Finance"))
	events := []domain.CheckEvent{
		{ID: "1", Day: "2024-01-02", Checkin: at("2024-01-02", "08:00:00"), Checkout: at("2024-01-02", "12:00:00")},
		{ID: "1", Day: "2024-01-02", Checkin: at("2024-01-02", "13:00:00"), Checkout: at("2024-01-02", "15:00:00")},
	}

	result := BuildHeatmap(idx, events, testOptions())
	require.Len(t, result.SeriesData, 1)
	assert.Equal(t, 2.0, result.SeriesData[0].Hours())
}

func TestBuildHeatmap_DenseGrid(t *testing.T) {
	idx := NewDepartmentIndex(profiles("1", "Finance", "2", "HR", "3", "R&D", "4", "R&D"))
	events := []domain.CheckEvent{
		{ID: "1", Day: "2024-01-01"},
		{ID: "3", Day: "2024-01-05"},
		{ID: "4", Day: "2024-01-03"},
	}

	result := BuildHeatmap(idx, events, testOptions())

	require.Len(t, result.SeriesData, len(result.XAxisData)*len(result.YAxisData))
	seen := make(map[[2]int]int)
	for _, cell := range result.SeriesData {
		seen[[2]int{cell.DayIndex(), cell.EmployeeIndex()}]++
	}
	for d := range result.XAxisData {
		for e := range result.YAxisData {
			assert.Equal(t, 1, seen[[2]int{d, e}])
		}
	}
}

func TestBuildHeatmap_Empty(t *testing.T) {
	result := BuildHeatmap(NewDepartmentIndex(nil), nil, testOptions())

	assert.Empty(t, result.SeriesData)
	assert.Empty(t, result.XAxisData)
	assert.Empty(t, result.YAxisData)
	assert.Equal(t, 0.0, result.MaxValue)
	assert.NotNil(t, result.DeptMarkPoints)
	assert.NotNil(t, result.DeptMarkLines)
}

func TestBuildHeatmap_CustomMaxWorkDuration(t *testing.T) {
	idx := NewDepartmentIndex(profiles("1", "Finance"))
	events := []domain.CheckEvent{{ID: "1", Day: "2024-01-02", Checkin: at("2024-01-02", "08:00:00"), Checkout: at("2024-01-02", "18:00:00")}}

	opts := testOptions()
	opts.MaxWorkDuration = 9 * time.Hour

	result := BuildHeatmap(idx, events, opts)
	assert.Equal(t, 0.0, result.SeriesData[0].Hours())
}

func TestDepartmentAnnotations(t *testing.T) {
	tests := []struct {
		name       string
		sizes      [3]int
		wantPoints []domain.MarkPoint
		wantLines  []domain.MarkLine
	}{
		{
			name:  "all departments populated",
			sizes: [3]int{2, 3, 4},
			wantPoints: []domain.MarkPoint{
				{Name: "Finance", Coord: [2]int{0, 1}},
				{Name: "Human Resources", Coord: [2]int{0, 3}},
				{Name: "Research & Development", Coord: [2]int{0, 7}},
			},
			wantLines: []domain.MarkLine{{YAxis: 1.5}, {YAxis: 4.5}},
		},
		{
			name:  "empty middle department",
			sizes: [3]int{3, 0, 5},
			wantPoints: []domain.MarkPoint{
				{Name: "Finance", Coord: [2]int{0, 1}},
				{Name: "Research & Development", Coord: [2]int{0, 5}},
			},
			wantLines: []domain.MarkLine{{YAxis: 2.5}},
		},
		{
			name:  "only last department",
			sizes: [3]int{0, 0, 5},
			wantPoints: []domain.MarkPoint{
				{Name: "Research & Development", Coord: [2]int{0, 2}},
			},
			wantLines: []domain.MarkLine{},
		},
		{
			name:  "leading department empty",
			sizes: [3]int{0, 4, 1},
			wantPoints: []domain.MarkPoint{
				{Name: "Human Resources", Coord: [2]int{0, 2}},
				{Name: "Research & Development", Coord: [2]int{0, 4}},
			},
			wantLines: []domain.MarkLine{{YAxis: 3.5}},
		},
		{
			name:       "no employees",
			wantPoints: []domain.MarkPoint{},
			wantLines:  []domain.MarkLine{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps []domain.EmployeeProfile
			n := 0
			for i, dept := range domain.DepartmentOrder {
				for j := 0; j < tt.sizes[i]; j++ {
					n++
					ps = append(ps, domain.EmployeeProfile{EmployeeID: domain.EmployeeID(string(rune('a' + n))), Department: dept})
				}
			}

			result := BuildHeatmap(NewDepartmentIndex(ps), nil, testOptions())
			assert.Equal(t, tt.wantPoints, result.DeptMarkPoints)
			assert.Equal(t, tt.wantLines, result.DeptMarkLines)
		})
	}
}
