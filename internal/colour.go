package internal

import "math"

// Display payload carried by a cell. The diagram copies it around but never
// looks at it. Hue is in degrees, the other components in [0, 1]. The zero
// value is fully transparent.
type HSLA struct {
	H, S, L, A float64
}

// RGBA implements color.Color with alpha-premultiplied components.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	red, green, blue := c.rgb()
	alpha := clamp01(c.A)
	scale := func(v float64) uint32 {
		return uint32(math.Round(v * alpha * 0xffff))
	}
	return scale(red), scale(green), scale(blue), uint32(math.Round(alpha * 0xffff))
}

func (c HSLA) IsZero() bool {
	return c == HSLA{}
}

func (c HSLA) rgb() (r, g, b float64) {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s, l := clamp01(c.S), clamp01(c.L)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return r + m, g + m, b + m
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
