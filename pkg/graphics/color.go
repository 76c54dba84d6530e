// Package graphics provides the color and text style value types used by
// the textfield options surface.
package graphics

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

const maxByte = 255.0

// Color is an ARGB color packed as 0xAARRGGBB.
type Color uint32

func argb(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns an opaque color from byte channels.
func RGB(r, g, b uint8) Color {
	return argb(0xFF, r, g, b)
}

// RGBA returns a color from byte channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return argb(unitToByte(a), r, g, b)
}

// RGBA8 returns a color from four byte channels.
func RGBA8(r, g, b, a uint8) Color {
	return argb(a, r, g, b)
}

func (c Color) alphaByte() uint8 { return uint8(c >> 24) }
func (c Color) redByte() uint8   { return uint8(c >> 16) }
func (c Color) greenByte() uint8 { return uint8(c >> 8) }
func (c Color) blueByte() uint8  { return uint8(c) }

// RGBAF returns the channels normalized to 0..1.
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.redByte()) / maxByte,
		float64(c.greenByte()) / maxByte,
		float64(c.blueByte()) / maxByte,
		float64(c.alphaByte()) / maxByte
}

// Alpha returns the alpha channel normalized to 0..1.
func (c Color) Alpha() float64 {
	return float64(c.alphaByte()) / maxByte
}

// WithAlpha returns the color with its alpha replaced by a 0..1 value.
func (c Color) WithAlpha(a float64) Color {
	return c.WithAlpha8(unitToByte(a))
}

// WithAlpha8 returns the color with its alpha byte replaced.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// ParseColor parses a color from its textual form. Accepted forms are
// "#RRGGBB" and "#AARRGGBB" hex notation, and the SVG 1.1 color names
// ("steelblue", "slategray", ...). Hex colors without an alpha component
// are opaque.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

func parseHexColor(hex string) (Color, error) {
	var v uint32
	for _, r := range hex {
		d, err := hexDigit(r)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", "#"+hex, err)
		}
		v = v<<4 | uint32(d)
	}
	switch len(hex) {
	case 6:
		return Color(0xFF000000 | v), nil
	case 8:
		return Color(v), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 6 or 8 digits", "#"+hex)
	}
}

func hexDigit(r rune) (uint8, error) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), nil
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, nil
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, nil
	}
	return 0, fmt.Errorf("bad digit %q", r)
}

// unitToByte maps a 0..1 value onto 0..255, rounding to nearest.
func unitToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * maxByte))
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
