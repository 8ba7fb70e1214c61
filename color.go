package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorANSI
	colorRGB
)

// Color is a cell color: the terminal default, an index into the 256 color
// palette, or a 24-bit RGB value. The zero Color is the terminal default.
type Color struct {
	kind    colorKind
	r, g, b uint8 // r is the palette index for ANSI colors
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns palette color index.
func ANSIColor(index uint8) Color {
	return Color{kind: colorANSI, r: index}
}

// RGBColor returns a 24-bit color.
func RGBColor(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// HexColor parses "#rgb" or "#rrggbb".
func HexColor(hex string) (Color, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c.kind == colorDefault
}

// Equal reports whether both colors are the same.
func (c Color) Equal(other Color) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case colorANSI:
		return c.r == other.r
	case colorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	}
	return true
}

// sequence returns the SGR parameters selecting c as foreground or
// background, downsampled to profile. It is empty for the default color and
// on terminals without color.
func (c Color) sequence(profile termenv.Profile, bg bool) string {
	var tc termenv.Color
	switch {
	case c.kind == colorANSI && c.r < 16:
		tc = termenv.ANSIColor(c.r)
	case c.kind == colorANSI:
		tc = termenv.ANSI256Color(c.r)
	case c.kind == colorRGB:
		tc = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	default:
		return ""
	}
	if tc = profile.Convert(tc); tc == nil {
		return ""
	}
	return tc.Sequence(bg)
}
