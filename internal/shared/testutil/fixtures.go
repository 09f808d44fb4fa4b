package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"orgpulse/pkg/contracts/domain"
)

// DatasetFixture is an in-memory dataset used across package tests.
type DatasetFixture struct {
	Profiles             []domain.EmployeeProfile
	CheckEvents          []domain.CheckEvent
	InternalInteractions []domain.InteractionEdge
	AllInteractions      []domain.InteractionEdge
	InDegree             []domain.InDegreeRecord
}

// SampleDataset returns a small organisation: two Finance employees, one
// HR employee, two R&D employees and one contractor outside the fixed
// departments. Punches are in UTC.
func SampleDataset() DatasetFixture {
	fin, hr, rd := domain.DepartmentFinance, domain.DepartmentHR, domain.DepartmentRnD

	return DatasetFixture{
		Profiles: []domain.EmployeeProfile{
			{EmployeeID: "1", Department: fin},
			{EmployeeID: "2", Department: fin},
			{EmployeeID: "3", Department: hr},
			{EmployeeID: "4", Department: rd},
			{EmployeeID: "5", Department: rd},
			{EmployeeID: "9", Department: "Contractors"},
		},
		CheckEvents: []domain.CheckEvent{
			checkEvent("1", "2024-01-02", "08:30", "17:00"),
			checkEvent("2", "2024-01-02", "09:00", "18:15"),
			checkEvent("3", "2024-01-02", "08:45", ""),
			checkEvent("4", "2024-01-03", "10:00", "19:30"),
			checkEvent("5", "2024-01-03", "22:00", "07:00"),
			checkEvent("9", "2024-01-04", "08:00", "16:00"),
		},
		InternalInteractions: []domain.InteractionEdge{
			{NodeA: "1", NodeB: "2", DeptA: fin, DeptB: fin, Weight: 4},
			{NodeA: "4", NodeB: "5", DeptA: rd, DeptB: rd, Weight: 7},
		},
		AllInteractions: []domain.InteractionEdge{
			{NodeA: "1", NodeB: "2", DeptA: fin, DeptB: fin, Weight: 4},
			{NodeA: "4", NodeB: "5", DeptA: rd, DeptB: rd, Weight: 7},
			{NodeA: "1", NodeB: "3", DeptA: fin, DeptB: hr, Weight: 2},
		},
		InDegree: []domain.InDegreeRecord{
			{EmployeeID: "1", Department: fin, SameDeptSenderCount: 1},
			{EmployeeID: "2", Department: fin, SameDeptSenderCount: 0},
			{EmployeeID: "3", Department: hr, SameDeptSenderCount: 0},
			{EmployeeID: "4", Department: rd, SameDeptSenderCount: 1},
			{EmployeeID: "5", Department: rd, SameDeptSenderCount: 1},
		},
	}
}

func checkEvent(id, day, in, out string) domain.CheckEvent {
	ev := domain.CheckEvent{ID: domain.EmployeeID(id), Day: day}
	parse := func(clock string) *time.Time {
		if clock == "" {
			return nil
		}
		t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, time.UTC)
		if err != nil {
			panic(err)
		}
		return &t
	}
	ev.Checkin = parse(in)
	ev.Checkout = parse(out)
	return ev
}

// WriteDatasetDir writes the fixture as JSON files using the default file
// names and returns the directory.
func WriteDatasetDir(t *testing.T, ds DatasetFixture) string {
	t.Helper()
	dir := t.TempDir()

	type punchRecord struct {
		ID       domain.EmployeeID `json:"id"`
		Day      string            `json:"day"`
		Checkin  *string           `json:"checkin"`
		Checkout *string           `json:"checkout"`
	}
	format := func(ts *time.Time) *string {
		if ts == nil {
			return nil
		}
		s := ts.UTC().Format(time.RFC3339)
		return &s
	}
	punches := make([]punchRecord, 0, len(ds.CheckEvents))
	for _, ev := range ds.CheckEvents {
		punches = append(punches, punchRecord{ID: ev.ID, Day: ev.Day, Checkin: format(ev.Checkin), Checkout: format(ev.Checkout)})
	}

	write := func(name string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	write("employee_profile.json", ds.Profiles)
	write("checking_clean.json", punches)
	write("internal_interactions.json", ds.InternalInteractions)
	write("all_interactions.json", ds.AllInteractions)
	write("in_degree.json", ds.InDegree)
	return dir
}
