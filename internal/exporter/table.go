package exporter

import (
	"fmt"

	"orgpulse/pkg/contracts/domain"
)

// Table is one sheet of an export.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// HistogramTable flattens a bar chart into one row per bin.
func HistogramTable(res domain.BarChartResult) Table {
	bins := len(res.Checkin)
	t := Table{
		Name:    "histogram",
		Headers: []string{"bin", "start", "label", "checkin", "checkout"},
		Rows:    make([][]interface{}, 0, bins),
	}

	for i := 0; i < bins; i++ {
		var label string
		if i < len(res.XLabels) {
			label = res.XLabels[i]
		}
		var checkout int
		if i < len(res.Checkout) {
			checkout = res.Checkout[i]
		}
		t.Rows = append(t.Rows, []interface{}{i, binStart(i, bins), label, res.Checkin[i], checkout})
	}
	return t
}

// binStart returns the HH:MM wall clock at which bin i of n starts.
func binStart(i, n int) string {
	minutes := i * 24 * 60 / n
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// HeatmapTable flattens the heatmap grid into (day, employee, hours) rows
// in grid order.
func HeatmapTable(res domain.HeatmapResult) Table {
	t := Table{
		Name:    "heatmap",
		Headers: []string{"day", "employee_id", "hours"},
		Rows:    make([][]interface{}, 0, len(res.SeriesData)),
	}

	for _, cell := range res.SeriesData {
		d, e := cell.DayIndex(), cell.EmployeeIndex()
		if d < 0 || d >= len(res.XAxisData) || e < 0 || e >= len(res.YAxisData) {
			continue
		}
		t.Rows = append(t.Rows, []interface{}{res.XAxisData[d], string(res.YAxisData[e]), cell.Hours()})
	}
	return t
}

// GraphTables returns the nodes and links of a social graph.
func GraphTables(res domain.GraphResult) []Table {
	nodes := Table{
		Name:    "nodes",
		Headers: []string{"id", "name", "entropy", "email_count", "symbol_size", "category", "color"},
		Rows:    make([][]interface{}, 0, len(res.Nodes)),
	}
	for _, n := range res.Nodes {
		category := ""
		if n.Category >= 0 && n.Category < len(res.Categories) {
			category = res.Categories[n.Category].Name
		}
		nodes.Rows = append(nodes.Rows, []interface{}{
			string(n.ID), n.Name, n.Value, n.RawTotalWeight, n.SymbolSize, category, n.ItemStyle.Color,
		})
	}

	links := Table{
		Name:    "links",
		Headers: []string{"source", "target", "weight", "width"},
		Rows:    make([][]interface{}, 0, len(res.Links)),
	}
	for _, l := range res.Links {
		links.Rows = append(links.Rows, []interface{}{string(l.Source), string(l.Target), l.Value, l.LineStyle.Width})
	}

	return []Table{nodes, links}
}
