package uvpaint

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// FallbackColor is substituted whenever a color string cannot be parsed as
// 6-digit hex. A malformed string is recovered here, never propagated into
// rendered output.
const FallbackColor = "#000000"

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Hex parses a strict 6-digit hex color string with a leading '#'
// (for example "#ff69b4"). Unparseable input (wrong length, missing '#',
// non-hex characters) yields the fallback color and ok=false; the caller
// decides whether the miss is worth reporting.
func Hex(hex string) (RGBA, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return mustHex(FallbackColor), false
	}

	var r, g, b uint32
	if !parseHexByte(hex[1:3], &r) || !parseHexByte(hex[3:5], &g) || !parseHexByte(hex[5:7], &b) {
		return mustHex(FallbackColor), false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}, true
}

// HexOrFallback parses a hex color string, substituting the fallback color
// for malformed input and logging the recovery.
func HexOrFallback(hex string) RGBA {
	c, ok := Hex(hex)
	if !ok {
		Logger().Warn("uvpaint: malformed color, using fallback",
			"input", hex, "fallback", FallbackColor)
	}
	return c
}

// mustHex parses a hex string known to be valid at compile time.
func mustHex(hex string) RGBA {
	var r, g, b uint32
	parseHexByte(hex[1:3], &r)
	parseHexByte(hex[3:5], &g)
	parseHexByte(hex[5:7], &b)
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// HexString encodes the color as a 6-digit hex string. Channel values are
// rounded to the nearest integer before encoding; encoding a fractional
// channel would produce a malformed string like "#ff69.b5d2".
func (c RGBA) HexString() string {
	r := int(math.Round(clamp255(c.R * 255)))
	g := int(math.Round(clamp255(c.G * 255)))
	b := int(math.Round(clamp255(c.B * 255)))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// AdjustBrightness shifts every channel of a hex color by delta (in 0-255
// units), clamping each channel to [0, 255] and rounding to the nearest
// integer before re-encoding. Malformed input falls back to FallbackColor
// with the same delta applied.
func AdjustBrightness(hex string, delta float64) string {
	c, ok := Hex(hex)
	if !ok {
		Logger().Warn("uvpaint: malformed color in brightness adjust",
			"input", hex, "fallback", FallbackColor)
	}
	r := clamp255(c.R*255 + delta)
	g := clamp255(c.G*255 + delta)
	b := clamp255(c.B*255 + delta)
	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

// parseHexByte parses exactly two hex digits into val.
func parseHexByte(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
