package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex encodes c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor decodes a "#RRGGBB" string in either case. The leading '#'
// is optional.
func ParseHexColor(s string) (RGB, error) {
	c, ok := parseChannels(s)
	if !ok {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return c, nil
}

// InterpolateColor blends from a to b. The fraction is clamped to [0, 1]
// and NaN is treated as 0. Each channel that cannot be parsed reads as 0,
// so the result is always a valid color. When the blend lands exactly on
// a valid endpoint, that endpoint is returned as written.
func InterpolateColor(a, b string, fraction float64) string {
	switch {
	case math.IsNaN(fraction) || fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}

	from, fromOK := parseChannels(a)
	to, toOK := parseChannels(b)
	blended := RGB{
		R: lerpChannel(from.R, to.R, fraction),
		G: lerpChannel(from.G, to.G, fraction),
		B: lerpChannel(from.B, to.B, fraction),
	}

	switch {
	case fromOK && blended == from:
		return a
	case toOK && blended == to:
		return b
	}
	return blended.Hex()
}

func lerpChannel(from, to uint8, f float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*f))
}

// parseChannels reads the three channels of s. A channel that is missing
// or not hex reads as 0; ok is true only when s is a well-formed color.
func parseChannels(s string) (RGB, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	ok := len(hex) == 6
	channel := func(i int) uint8 {
		if len(hex) < i+2 {
			ok = false
			return 0
		}
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			ok = false
			return 0
		}
		return uint8(v)
	}
	c := RGB{R: channel(0), G: channel(2), B: channel(4)}
	return c, ok
}
