package render

import (
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Rasterize the diagram. The image covers the bounding square at opts.Scale
// pixels per unit.
func Raster(d *voronoi.Diagram, opts Options) image.Image {
	min, max := d.Bounds().Bounds()
	scale := opts.scale()
	width := int(math.Ceil((max.X - min.X) * scale))
	height := int(math.Ceil((max.Y - min.Y) * scale))

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	cells := d.Cells()
	for i, cell := range cells {
		points := cell.Area.Points
		if len(points) < 3 {
			continue
		}
		c.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetColor(Fill(cell, i))
		if opts.StrokeWidth > 0 {
			c.FillPreserve()
			c.SetRGB(0, 0, 0)
			c.SetLineWidth(opts.StrokeWidth)
			c.Stroke()
		} else {
			c.Fill()
		}
	}

	if opts.Markers {
		c.SetRGB(0, 0, 0)
		for _, cell := range cells {
			c.DrawCircle(cell.Site.X, cell.Site.Y, 3/scale)
			c.Fill()
		}
	}

	if opts.Labels {
		c.SetRGB(0, 0, 0)
		c.SetFontFace(basicfont.Face7x13)
		for _, cell := range cells {
			// We have to go back to identity to draw the text, so get the point in native coordinates
			x, y := c.TransformPoint(cell.Site.X, cell.Site.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(cell.Site), x, y-8, 0.5, 0)
			c.Pop()
		}
	}

	return c.Image()
}

// Encode as png, resized to the given width first if width is positive. The
// aspect ratio is kept.
func EncodePNG(w io.Writer, img image.Image, width int) error {
	if width > 0 && width != img.Bounds().Dx() {
		img = imaging.Resize(img, width, 0, imaging.Lanczos)
	}
	return errors.Wrap(imaging.Encode(w, img, imaging.PNG), "encoding png")
}
