package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/dbg"
	"github.com/pkg/errors"
)

// Write the diagram as a standalone svg document in output pixels, with the
// same framing as Raster: the bounding square's top left corner is at the
// origin and y points down. Cells become <path> elements, site markers
// <circle> elements.
func SVG(w io.Writer, d *voronoi.Diagram, opts Options) error {
	out := bufio.NewWriter(w)
	canvas := svg.New(out)

	min, max := d.Bounds().Bounds()
	scale := opts.scale()
	screen := func(p voronoi.Point) (float64, float64) {
		return (p.X - min.X) * scale, (max.Y - p.Y) * scale
	}

	canvas.Start(int(math.Ceil((max.X-min.X)*scale)), int(math.Ceil((max.Y-min.Y)*scale)))
	canvas.Group(`stroke="black"`, fmt.Sprintf(`stroke-width="%g"`, opts.StrokeWidth), `stroke-linejoin="round"`)
	cells := d.Cells()
	for i, cell := range cells {
		fill, opacity := svgColour(Fill(cell, i))
		canvas.Path(svgPath(cell.Area, screen), fmt.Sprintf(`fill="%s"`, fill), fmt.Sprintf(`fill-opacity="%g"`, opacity))
	}
	canvas.Gend()

	if opts.Markers {
		for _, cell := range cells {
			x, y := screen(cell.Site)
			canvas.Circle(pixel(x), pixel(y), 3, `fill="black"`)
		}
	}

	if opts.Labels {
		for _, cell := range cells {
			x, y := screen(cell.Site)
			canvas.Text(pixel(x), pixel(y)-8, dbg.Name(cell.Site),
				`font-size="12"`, `font-family="monospace"`, `text-anchor="middle"`)
		}
	}
	canvas.End()

	// svgo doesn't report write errors, but the buffer holds on to the first one
	return errors.Wrap(out.Flush(), "writing svg")
}

func pixel(v float64) int {
	return int(math.Round(v))
}

// Path data keeps full precision, unlike svgo's integer shapes.
func svgPath(poly voronoi.Polygon, screen func(voronoi.Point) (float64, float64)) string {
	var b strings.Builder
	for i, p := range poly.Points {
		x, y := screen(p)
		if i == 0 {
			fmt.Fprintf(&b, "M%g %g", x, y)
		} else {
			fmt.Fprintf(&b, " L%g %g", x, y)
		}
	}
	b.WriteString(" Z")
	return b.String()
}

func svgColour(c color.Color) (hex string, opacity float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}
