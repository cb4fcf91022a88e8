package shape

import (
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// colorMode discriminates the three Color variants. The zero value is
// "no color" so that a zero Color means "do not draw".
type colorMode uint8

const (
	colorNone colorMode = iota
	colorAuto
	colorExplicit
)

// Color is the fill or stroke color of a shape. It is one of three
// variants: no color (the component is not drawn), auto (resolve against
// the renderer's current color state at assignment time), or an explicit
// RGBA value.
type Color struct {
	mode colorMode
	rgba RGBA
}

// NoColor returns the absent-color variant.
func NoColor() Color {
	return Color{mode: colorNone}
}

// AutoColor returns the variant that resolves against renderer state when
// assigned to a shape. It never survives assignment: setters replace it
// with either an explicit color or no color.
func AutoColor() Color {
	return Color{mode: colorAuto}
}

// ExplicitColor returns a concrete color value.
func ExplicitColor(c RGBA) Color {
	return Color{mode: colorExplicit, rgba: c}
}

// IsNone reports whether the color is absent.
func (c Color) IsNone() bool {
	return c.mode == colorNone
}

// IsAuto reports whether the color is the unresolved auto variant.
func (c Color) IsAuto() bool {
	return c.mode == colorAuto
}

// Values returns the RGBA components and whether the color is explicit.
func (c Color) Values() (RGBA, bool) {
	return c.rgba, c.mode == colorExplicit
}

// RenderState is the narrow view of a renderer's current color state.
// Auto colors are resolved against it once, at assignment time; later
// renderer-state changes do not retroactively recolor shapes.
type RenderState interface {
	// Fill returns whether filling is enabled and the current fill color.
	Fill() (enabled bool, rgba RGBA)

	// Stroke returns whether stroking is enabled and the current stroke
	// color.
	Stroke() (enabled bool, rgba RGBA)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Invalid input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// parseHex parses a hex substring into v. Invalid digits leave v at zero.
func parseHex(s string, v *uint32) {
	*v = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			*v = 0
			return
		}
		*v = *v<<4 + d
	}
}

// ParseColor resolves a color name (SVG 1.1 names, e.g. "red",
// "steelblue") or a hex string into an RGBA value. The boolean reports
// whether the name was recognized; hex strings always succeed.
func ParseColor(name string) (RGBA, bool) {
	if name != "" && name[0] == '#' {
		return Hex(name), true
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, false
	}
	return RGBA{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}, true
}
