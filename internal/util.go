package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, clipping a cell along an edge it already has would shave off
// slivers with no area.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Z component of the 3D cross product. Positive when q is counterclockwise of p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Length()
}

func (p Point) Midpoint(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

// Rotated a quarter turn counterclockwise.
func (p Point) Perpendicular() Point {
	return Point{-p.Y, p.X}
}

// Linear interpolation; t=0 gives p, t=1 gives q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Lexicographic ordering, used to sort points for hull construction.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Signed distance from the line. Positive on the left of A→B.
func (l Line) SignedDistance(p Point) float64 {
	direction := l.B.Sub(l.A)
	length := direction.Length()
	if length == 0 {
		fatalf("line through coincident points %v has no direction", l.A)
	}
	return direction.Cross(p.Sub(l.A)) / length
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// First in, first out worklist of points.
type PointQueue []Point

func (q *PointQueue) Push(points ...Point) {
	*q = append(*q, points...)
}

func (q *PointQueue) Pop() (Point, bool) {
	if len(*q) == 0 {
		return Point{}, false
	}
	p := (*q)[0]
	*q = (*q)[1:]
	return p, true
}

func (q *PointQueue) Empty() bool {
	return len(*q) == 0
}
