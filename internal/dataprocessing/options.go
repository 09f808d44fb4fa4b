package dataprocessing

import (
	"fmt"
	"time"

	"orgpulse/internal/config"
)

// Options holds the tunable constants used by the chart builders.
type Options struct {
	// BinWidth is the histogram resolution. It must divide 24h evenly.
	BinWidth time.Duration

	// MaxWorkDuration is the longest shift counted on the heatmap. Longer
	// durations are treated as a missing or duplicated punch and score 0.
	MaxWorkDuration time.Duration

	// Location is the wall clock used for time-of-day binning and for
	// timestamps that carry no zone. Nil means time.Local.
	Location *time.Location

	MinNodeSize float64
	MaxNodeSize float64

	MinEdgeWidth float64
	MaxEdgeWidth float64

	// ColorExponent is applied to the normalized entropy before color
	// interpolation. Values below 1 push mid-range nodes toward HighColor.
	ColorExponent float64

	LowColor  string
	HighColor string

	EdgeOpacity   float64
	EdgeCurveness float64
}

// DefaultOptions returns the dashboard defaults.
func DefaultOptions() Options {
	return Options{
		BinWidth:        15 * time.Minute,
		MaxWorkDuration: 14 * time.Hour,
		MinNodeSize:     25,
		MaxNodeSize:     50,
		MinEdgeWidth:    0.5,
		MaxEdgeWidth:    3,
		ColorExponent:   0.5,
		LowColor:        "#5AD8A6",
		HighColor:       "#F7B74E",
		EdgeOpacity:     0.6,
		EdgeCurveness:   0.1,
	}
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	if o.BinWidth <= 0 || (24*time.Hour)%o.BinWidth != 0 {
		return fmt.Errorf("bin width %s must evenly divide 24h", o.BinWidth)
	}
	if o.MaxWorkDuration <= 0 {
		return fmt.Errorf("max work duration must be positive, got %s", o.MaxWorkDuration)
	}
	if o.MinNodeSize < 0 || o.MaxNodeSize < o.MinNodeSize {
		return fmt.Errorf("invalid node size range [%g, %g]", o.MinNodeSize, o.MaxNodeSize)
	}
	if o.MinEdgeWidth < 0 || o.MaxEdgeWidth < o.MinEdgeWidth {
		return fmt.Errorf("invalid edge width range [%g, %g]", o.MinEdgeWidth, o.MaxEdgeWidth)
	}
	if o.ColorExponent <= 0 {
		return fmt.Errorf("color exponent must be positive, got %g", o.ColorExponent)
	}
	if _, err := ParseHexColor(o.LowColor); err != nil {
		return fmt.Errorf("low color: %w", err)
	}
	if _, err := ParseHexColor(o.HighColor); err != nil {
		return fmt.Errorf("high color: %w", err)
	}
	return nil
}

// BinCount returns the number of histogram bins in a day.
func (o Options) BinCount() int {
	return int(24 * time.Hour / o.BinWidth)
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// OptionsFromConfig maps the analytics configuration section onto Options.
func OptionsFromConfig(cfg config.AnalyticsConfig) (Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		BinWidth:        cfg.BinWidth,
		MaxWorkDuration: cfg.MaxWorkDuration,
		Location:        loc,
		MinNodeSize:     cfg.MinNodeSize,
		MaxNodeSize:     cfg.MaxNodeSize,
		MinEdgeWidth:    cfg.MinEdgeWidth,
		MaxEdgeWidth:    cfg.MaxEdgeWidth,
		ColorExponent:   cfg.ColorExponent,
		LowColor:        cfg.LowColor,
		HighColor:       cfg.HighColor,
		EdgeOpacity:     cfg.EdgeOpacity,
		EdgeCurveness:   cfg.EdgeCurveness,
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("invalid analytics options: %w", err)
	}
	return opts, nil
}
