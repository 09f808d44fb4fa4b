package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "HR", "HR"},
		{"integral float", 50.0, "50"},
		{"fraction", 0.85, "0.85"},
		{"negative", -1.25, "-1.25"},
		{"int", 96, "96"},
		{"int64", int64(7), "7"},
		{"bool", true, "true"},
		{"stringer", 90 * time.Minute, "1h30m0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCell(tt.input))
		})
	}
}
