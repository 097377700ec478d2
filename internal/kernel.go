package internal

// The geometric primitives the diagram is built from. The diagram never does
// geometry of its own, so an exact arithmetic kernel can be swapped in without
// touching the cascade.
//
// Contains must use the same membership rule for boundary points everywhere:
// the cascade relies on a boundary vertex being found in every cell it touches.
type Kernel interface {
	// Does the convex polygon contain the point?
	Contains(poly Polygon, p Point) bool
	// Split a convex polygon by a line. Left is the part on the left of the line
	// and right the part on its right; either is nil when it has no area. The
	// remainder holds the boundary vertices lying on the line.
	Clip(poly Polygon, line Line) (left, right *Polygon, remainder []Point)
	// Perpendicular bisector of two distinct points.
	Bisector(a, b Point) Line
	// Combine two convex pieces of one convex region.
	Merge(a, b Polygon) Polygon
}

// Floating point kernel. Boundaries are inclusive, with points up to
// Tolerance outside a polygon still counted as contained.
type FloatKernel struct{}

var _ Kernel = FloatKernel{}

func (FloatKernel) Contains(poly Polygon, p Point) bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		if vertex.Equal(next) {
			continue
		}
		if (Line{vertex, next}).SignedDistance(p) < -Tolerance {
			return false
		}
	}
	return true
}

// Sutherland–Hodgman against a single line, keeping both sides at once.
// Vertices within Tolerance of the line go to both sides.
func (FloatKernel) Clip(poly Polygon, line Line) (left, right *Polygon, remainder []Point) {
	n := len(poly.Points)
	if n < 3 {
		fatalf("cannot clip degenerate polygon with point count: %d", n)
	}

	distances := make([]float64, n)
	for i, p := range poly.Points {
		distances[i] = line.SignedDistance(p)
	}

	var leftPoints, rightPoints []Point
	for i, p := range poly.Points {
		j := CircularIndex(i+1, n)
		dp, dq := distances[i], distances[j]

		switch {
		case dp > Tolerance:
			leftPoints = append(leftPoints, p)
		case dp < -Tolerance:
			rightPoints = append(rightPoints, p)
		default:
			leftPoints = append(leftPoints, p)
			rightPoints = append(rightPoints, p)
			remainder = append(remainder, p)
		}

		// The edge crosses the line strictly between its endpoints
		if (dp > Tolerance && dq < -Tolerance) || (dp < -Tolerance && dq > Tolerance) {
			crossing := p.Lerp(poly.Points[j], dp/(dp-dq))
			leftPoints = append(leftPoints, crossing)
			rightPoints = append(rightPoints, crossing)
			remainder = append(remainder, crossing)
		}
	}

	return clipSide(leftPoints), clipSide(rightPoints), remainder
}

func clipSide(points []Point) *Polygon {
	poly := Polygon{Points: points}.Simplify()
	if len(poly.Points) < 3 || poly.Area() < Tolerance*Tolerance {
		return nil
	}
	return &poly
}

// The bisector passes through the midpoint, directed so that b lies on its
// left.
func (FloatKernel) Bisector(a, b Point) Line {
	if a.Equal(b) {
		fatalf("cannot bisect coincident points %v and %v", a, b)
	}
	m := a.Midpoint(b)
	p := b.Sub(a).Perpendicular()
	return Line{m.Add(p), m.Sub(p)}
}

// The pieces of a Voronoi cell tile a convex region, so their union is the
// hull of their vertices.
func (FloatKernel) Merge(a, b Polygon) Polygon {
	points := make([]Point, 0, len(a.Points)+len(b.Points))
	points = append(points, a.Points...)
	points = append(points, b.Points...)
	return ConvexHull(points)
}
