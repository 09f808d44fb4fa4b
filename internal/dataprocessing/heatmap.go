package dataprocessing

import (
	"math"
	"sort"
	"time"

	"orgpulse/pkg/contracts/domain"
)

// BuildHeatmap computes worked hours for every (day, employee) pair of the
// recognized departments. Rows follow idx.Order and columns are the sorted
// day keys seen in the events of those employees.
func BuildHeatmap(idx *DepartmentIndex, events []domain.CheckEvent, opts Options) domain.HeatmapResult {
	// hours[day][row] holds the worked hours of one heatmap cell.
	hours := make(map[string]map[int]float64)

	for _, ev := range events {
		row, ok := idx.Position(ev.ID)
		if !ok {
			continue
		}

		perDay, ok := hours[ev.Day]
		if !ok {
			perDay = make(map[int]float64)
			hours[ev.Day] = perDay
		}
		// A repeated (id, day) record replaces the earlier one.
		perDay[row] = workedHours(ev, opts.MaxWorkDuration)
	}

	days := make([]string, 0, len(hours))
	for day := range hours {
		days = append(days, day)
	}
	sort.Strings(days)

	order := idx.Order()
	result := domain.HeatmapResult{
		SeriesData:     make([]domain.HeatmapCell, 0, len(days)*len(order)),
		XAxisData:      days,
		YAxisData:      append([]domain.EmployeeID(nil), order...),
		DeptMarkPoints: []domain.MarkPoint{},
		DeptMarkLines:  []domain.MarkLine{},
	}

	maxHours := 0.0
	for d, day := range days {
		for e := range order {
			// Missing keys read as zero hours.
			value := roundTo(hours[day][e], 2)
			if value > maxHours {
				maxHours = value
			}
			result.SeriesData = append(result.SeriesData, domain.HeatmapCell{float64(d), float64(e), value})
		}
	}
	result.MaxValue = math.Ceil(maxHours)

	result.DeptMarkPoints, result.DeptMarkLines = departmentAnnotations(idx)
	return result
}

// workedHours returns the shift length of ev, or 0 when a punch is missing
// or the duration is outside [0, limit].
func workedHours(ev domain.CheckEvent, limit time.Duration) float64 {
	if !ev.HasBothPunches() {
		return 0
	}
	d := ev.Checkout.Sub(*ev.Checkin)
	if d < 0 || d > limit {
		return 0
	}
	return d.Hours()
}

// departmentAnnotations places one label in the middle of each non-empty
// department block and a boundary line between consecutive blocks.
func departmentAnnotations(idx *DepartmentIndex) ([]domain.MarkPoint, []domain.MarkLine) {
	points := []domain.MarkPoint{}
	lines := []domain.MarkLine{}

	cumulative := 0
	for _, dept := range domain.DepartmentOrder {
		n := len(idx.Members(dept))
		if n == 0 {
			continue
		}
		if cumulative > 0 {
			lines = append(lines, domain.MarkLine{YAxis: float64(cumulative) - 0.5})
		}
		points = append(points, domain.MarkPoint{
			Name:  dept.Label(),
			Coord: [2]int{0, cumulative + n/2},
		})
		cumulative += n
	}

	return points, lines
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
