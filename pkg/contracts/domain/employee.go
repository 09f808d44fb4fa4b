package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Department is the organizational unit an employee belongs to.
type Department string

// Recognized departments. Any other value is carried through the data
// but excluded from department-scoped views.
const (
	DepartmentFinance Department = "Finance"
	DepartmentHR      Department = "HR"
	DepartmentRnD     Department = "R&D"
)

// DepartmentOrder is the fixed display order used for every chart axis.
var DepartmentOrder = []Department{DepartmentFinance, DepartmentHR, DepartmentRnD}

var departmentLabels = map[Department]string{
	DepartmentFinance: "Finance",
	DepartmentHR:      "Human Resources",
	DepartmentRnD:     "Research & Development",
}

// IsRecognized reports whether d is one of the departments in DepartmentOrder.
func (d Department) IsRecognized() bool {
	_, ok := departmentLabels[d]
	return ok
}

// Label returns the display label used on chart annotations.
func (d Department) Label() string {
	if label, ok := departmentLabels[d]; ok {
		return label
	}
	return string(d)
}

// ParseDepartment matches s against the recognized departments.
func ParseDepartment(s string) (Department, error) {
	d := Department(s)
	if !d.IsRecognized() {
		return "", fmt.Errorf("unknown department %q", s)
	}
	return d, nil
}

// EmployeeID identifies an employee. Source files use both integer and
// string ids, so it decodes from either JSON form.
type EmployeeID string

// UnmarshalJSON accepts a JSON string or number.
func (id *EmployeeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = EmployeeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("employee id must be a string or number: %w", err)
	}
	*id = EmployeeID(normalizeNumber(n))
	return nil
}

// normalizeNumber renders integral values without a fractional part so
// 7 and 7.0 identify the same employee.
func normalizeNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}

// EmployeeProfile is the source of truth for department membership.
type EmployeeProfile struct {
	EmployeeID EmployeeID `json:"employee_id"`
	Department Department `json:"department"`
}
