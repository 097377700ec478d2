package internal

import "fmt"

// Sites and polygon vertices are plain values. A site has no identity beyond
// its coordinates, so points are compared and used as map keys by value.
type Point struct {
	X float64
	Y float64
}

// Polygons handed around by the diagram are convex and wind counterclockwise.
type Polygon struct {
	Points []Point
}

// A directed line through A and B. Kernels treat it as infinite, so the
// distance between A and B only matters for its direction.
type Line struct {
	A, B Point
}

type PointSet map[Point]struct{}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}
