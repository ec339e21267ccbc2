package render

import "math"

// HSLToRGB converts hue/saturation/lightness (each 0-1) to an opaque RGBA.
func HSLToRGB(h, s, l float64) RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch int(h * 6) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Opaque(clampByte((r+m)*255), clampByte((g+m)*255), clampByte((b+m)*255))
}

// CycleColor returns the frame's accent color: a rotating hue when color
// cycling is enabled, the configured base color otherwise.
func CycleColor(cfg *Config, now float64) RGBA {
	if cfg.ColorCycle {
		hue := math.Mod(now*cfg.ColorCycleSpeed, 1)
		if hue < 0 {
			hue += 1
		}
		return HSLToRGB(hue, 0.8, 0.6)
	}
	return cfg.BaseColor
}
