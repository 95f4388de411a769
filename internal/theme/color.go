package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// String renders the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// namedColors are the color names accepted by ParseColor.
var namedColors = map[string]Color{
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"red":     {205, 49, 49},
	"green":   {13, 188, 121},
	"yellow":  {229, 229, 16},
	"blue":    {36, 114, 200},
	"magenta": {188, 63, 188},
	"cyan":    {17, 168, 205},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"silver":  {192, 192, 192},
	"orange":  {253, 151, 31},
	"purple":  {174, 129, 255},
	"teal":    {78, 201, 176},
	"navy":    {0, 16, 128},
	"maroon":  {163, 21, 21},
}

// ParseColor accepts "#rgb" and "#rrggbb" hex forms, "rgb(r, g, b)",
// and a small set of color names.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		r, g, b := c.RGB255()
		return Color{R: r, G: g, B: b}, nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s)
	}

	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

func parseRGBFunc(s string) (Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb color %q", s)
	}

	var vals [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("invalid rgb color %q", s)
		}
		vals[i] = uint8(n)
	}
	return Color{R: vals[0], G: vals[1], B: vals[2]}, nil
}

// ContrastText returns black or white, whichever is more readable on
// the given background.
func ContrastText(bg Color) Color {
	c := colorful.Color{
		R: float64(bg.R) / 255.0,
		G: float64(bg.G) / 255.0,
		B: float64(bg.B) / 255.0,
	}
	l, _, _ := c.Luv()
	if l > 0.5 {
		return Color{0, 0, 0}
	}
	return Color{255, 255, 255}
}
