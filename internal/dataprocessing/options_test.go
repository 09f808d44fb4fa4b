package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orgpulse/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	require.NoError(t, opts.Validate())
	assert.Equal(t, 96, opts.BinCount())
	assert.Equal(t, 14*time.Hour, opts.MaxWorkDuration)
	assert.Equal(t, time.Local, opts.location())
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{name: "bin width not dividing a day", mutate: func(o *Options) { o.BinWidth = 7 * time.Minute }},
		{name: "zero bin width", mutate: func(o *Options) { o.BinWidth = 0 }},
		{name: "zero work duration", mutate: func(o *Options) { o.MaxWorkDuration = 0 }},
		{name: "inverted node sizes", mutate: func(o *Options) { o.MinNodeSize, o.MaxNodeSize = 50, 25 }},
		{name: "inverted edge widths", mutate: func(o *Options) { o.MinEdgeWidth, o.MaxEdgeWidth = 3, 0.5 }},
		{name: "non-positive exponent", mutate: func(o *Options) { o.ColorExponent = 0 }},
		{name: "bad low color", mutate: func(o *Options) { o.LowColor = "green" }},
		{name: "bad high color", mutate: func(o *Options) { o.HighColor = "#12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default().Analytics
	cfg.BinWidth = 30 * time.Minute
	cfg.Timezone = "UTC"
	cfg.HighColor = "#FF0000"

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 48, opts.BinCount())
	assert.Equal(t, time.UTC, opts.Location)
	assert.Equal(t, "#FF0000", opts.HighColor)
	assert.Equal(t, 25.0, opts.MinNodeSize)

	cfg.Timezone = "Nowhere/Special"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)

	cfg.Timezone = ""
	cfg.LowColor = "nope"
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}
