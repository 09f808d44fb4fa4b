package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"orgpulse/pkg/contracts/domain"
)

// columnAliases maps a canonical column to the header spellings accepted
// in workbooks. Headers are compared after normalizeHeader.
var columnAliases = map[string][]string{
	"employee_id":            {"employee_id", "employeeid", "emp_id", "id"},
	"department":             {"department", "dept"},
	"day":                    {"day", "date"},
	"checkin":                {"checkin", "check_in"},
	"checkout":               {"checkout", "check_out"},
	"node_a":                 {"node_a", "source", "from"},
	"node_b":                 {"node_b", "target", "to"},
	"dept_a":                 {"dept_a", "source_department"},
	"dept_b":                 {"dept_b", "target_department"},
	"weight":                 {"weight", "count", "emails"},
	"same_dept_sender_count": {"same_dept_sender_count", "sender_count", "entropy"},
}

// headerScanRows bounds how far down a sheet the header row may start.
const headerScanRows = 10

// sheetTable is a worksheet addressed by canonical column name.
type sheetTable struct {
	columns map[string]int
	rows    [][]string
}

func (t *sheetTable) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (t *sheetTable) cellInt(row []string, column string) int {
	v, err := strconv.ParseFloat(t.cell(row, column), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}

// openSheetTable finds the first sheet whose header row contains every
// required column.
func openSheetTable(path string, required ...string) (*sheetTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			continue
		}
		for i := 0; i < len(rows) && i < headerScanRows; i++ {
			columns := mapColumns(rows[i])
			if hasColumns(columns, required) {
				return &sheetTable{columns: columns, rows: rows[i+1:]}, nil
			}
		}
	}

	return nil, fmt.Errorf("no sheet in %s has columns %s", path, strings.Join(required, ", "))
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, h := range header {
		h = normalizeHeader(h)
		for canonical, aliases := range columnAliases {
			if _, taken := columns[canonical]; taken {
				continue
			}
			for _, alias := range aliases {
				if h == alias {
					columns[canonical] = i
				}
			}
		}
	}
	return columns
}

func hasColumns(columns map[string]int, required []string) bool {
	for _, c := range required {
		if _, ok := columns[c]; !ok {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseProfilesSheet reads employee profiles from a workbook.
func ParseProfilesSheet(path string) ([]domain.EmployeeProfile, error) {
	table, err := openSheetTable(path, "employee_id", "department")
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.EmployeeProfile, 0, len(table.rows))
	for _, row := range table.rows {
		if isBlankRow(row) {
			continue
		}
		profiles = append(profiles, domain.EmployeeProfile{
			EmployeeID: domain.EmployeeID(table.cell(row, "employee_id")),
			Department: domain.Department(table.cell(row, "department")),
		})
	}
	return profiles, nil
}

// ParseCheckEventsSheet reads check events from a workbook. Punch cells may
// hold Excel serial dates or text timestamps. The count of unreadable
// punches is returned alongside the events.
func ParseCheckEventsSheet(path string, loc *time.Location) ([]domain.CheckEvent, int, error) {
	table, err := openSheetTable(path, "employee_id", "day")
	if err != nil {
		return nil, 0, err
	}

	malformed := 0
	punch := func(s string) *time.Time {
		t, ok, err := parseSheetTimestamp(s, loc)
		if err != nil {
			malformed++
			return nil
		}
		if !ok {
			return nil
		}
		return &t
	}

	events := make([]domain.CheckEvent, 0, len(table.rows))
	for _, row := range table.rows {
		if isBlankRow(row) {
			continue
		}
		events = append(events, domain.CheckEvent{
			ID:       domain.EmployeeID(table.cell(row, "employee_id")),
			Day:      parseSheetDay(table.cell(row, "day")),
			Checkin:  punch(table.cell(row, "checkin")),
			Checkout: punch(table.cell(row, "checkout")),
		})
	}
	return events, malformed, nil
}

// ParseInteractionsSheet reads interaction edges from a workbook.
func ParseInteractionsSheet(path string) ([]domain.InteractionEdge, error) {
	table, err := openSheetTable(path, "node_a", "node_b", "dept_a", "dept_b", "weight")
	if err != nil {
		return nil, err
	}

	edges := make([]domain.InteractionEdge, 0, len(table.rows))
	for _, row := range table.rows {
		if isBlankRow(row) {
			continue
		}
		edges = append(edges, domain.InteractionEdge{
			NodeA:  domain.EmployeeID(table.cell(row, "node_a")),
			NodeB:  domain.EmployeeID(table.cell(row, "node_b")),
			DeptA:  domain.Department(table.cell(row, "dept_a")),
			DeptB:  domain.Department(table.cell(row, "dept_b")),
			Weight: table.cellInt(row, "weight"),
		})
	}
	return edges, nil
}

// ParseInDegreeSheet reads in-degree records from a workbook.
func ParseInDegreeSheet(path string) ([]domain.InDegreeRecord, error) {
	table, err := openSheetTable(path, "employee_id", "department", "same_dept_sender_count")
	if err != nil {
		return nil, err
	}

	records := make([]domain.InDegreeRecord, 0, len(table.rows))
	for _, row := range table.rows {
		if isBlankRow(row) {
			continue
		}
		records = append(records, domain.InDegreeRecord{
			EmployeeID:          domain.EmployeeID(table.cell(row, "employee_id")),
			Department:          domain.Department(table.cell(row, "department")),
			SameDeptSenderCount: table.cellInt(row, "same_dept_sender_count"),
		})
	}
	return records, nil
}
