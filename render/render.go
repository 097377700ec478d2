// Renderers that draw a diagram's cells as filled polygons.
//
// Both renderers flip the y axis, so the diagram reads with y pointing up as
// it does in the plane.
package render

import (
	"image/color"
	"math"

	"github.com/osuushi/voronoi"
)

type Options struct {
	// Output pixels per diagram unit. Defaults to 1.
	Scale float64
	// Cell outline width in pixels. Zero draws no outlines.
	StrokeWidth float64
	// Draw a dot on each site
	Markers bool
	// Write each site's debug name next to it
	Labels bool
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// Fill colour for a cell. Cells without a colour get one spread around the
// hue circle by golden angle, so neighbors in insertion order stay distinct.
func Fill(cell voronoi.Cell, i int) color.Color {
	if !cell.Colour.IsZero() {
		return cell.Colour
	}
	return voronoi.HSLA{
		H: math.Mod(float64(i)*137.508, 360),
		S: 0.55,
		L: 0.65,
		A: 1,
	}
}
