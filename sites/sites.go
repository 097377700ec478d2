// Readers and generators for lists of sites.
package sites

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". Blank lines and lines
// starting with # are skipped.
func Read(in io.Reader) ([]voronoi.Point, error) {
	var points []voronoi.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading sites")
	}
	return points, nil
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return voronoi.Point{X: x, Y: y}, nil
}

// Read the centers of every <circle> element in an svg document, in document
// order. Coordinates are taken as written, without applying any transform.
func ReadSVG(in io.Reader) ([]voronoi.Point, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	circles := rootEl.FindAll("circle")
	points := make([]voronoi.Point, 0, len(circles))
	for i, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: invalid cx", i)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "circle %d: invalid cy", i)
		}
		points = append(points, voronoi.Point{X: x, Y: y})
	}
	return points, nil
}

// n uniformly distributed sites in the square of half-width size around the
// origin.
func Random(rng *rand.Rand, n int, size float64) []voronoi.Point {
	points := make([]voronoi.Point, n)
	for i := range points {
		points[i] = voronoi.Point{
			X: (rng.Float64()*2 - 1) * size,
			Y: (rng.Float64()*2 - 1) * size,
		}
	}
	return points
}
