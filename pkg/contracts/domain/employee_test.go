package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    EmployeeID
		wantErr bool
	}{
		{name: "integer", input: `1042`, want: "1042"},
		{name: "integral float", input: `7.0`, want: "7"},
		{name: "string", input: `"E-17"`, want: "E-17"},
		{name: "null", input: `null`, want: ""},
		{name: "object", input: `{"id":1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id EmployeeID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestEmployeeProfile_DecodesMixedIDs(t *testing.T) {
	var profiles []EmployeeProfile
	err := json.Unmarshal([]byte(`[{"employee_id":1,"department":"Finance"},{"employee_id":"2","department":"R&D"}]`), &profiles)
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, EmployeeID("1"), profiles[0].EmployeeID)
	assert.Equal(t, DepartmentFinance, profiles[0].Department)
	assert.Equal(t, EmployeeID("2"), profiles[1].EmployeeID)
	assert.Equal(t, DepartmentRnD, profiles[1].Department)
}

func TestDepartment(t *testing.T) {
	assert.True(t, DepartmentHR.IsRecognized())
	assert.False(t, Department("Sales").IsRecognized())
	assert.Equal(t, "Human Resources", DepartmentHR.Label())
	assert.Equal(t, "Sales", Department("Sales").Label())

	d, err := ParseDepartment("R&D")
	require.NoError(t, err)
	assert.Equal(t, DepartmentRnD, d)

	_, err = ParseDepartment("Marketing")
	assert.Error(t, err)
}

func TestHeatmapCell_MarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(HeatmapCell{1, 2, 8.5})
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,8.5]`, string(data))

	cell := HeatmapCell{3, 4, 7.25}
	assert.Equal(t, 3, cell.DayIndex())
	assert.Equal(t, 4, cell.EmployeeIndex())
	assert.Equal(t, 7.25, cell.Hours())
}
