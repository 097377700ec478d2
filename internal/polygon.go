package internal

import "sort"

// Axis aligned square of half-width size around center, counterclockwise from
// the bottom left corner.
func Square(center Point, size float64) Polygon {
	return Polygon{Points: []Point{
		{center.X - size, center.Y - size},
		{center.X + size, center.Y - size},
		{center.X + size, center.Y + size},
		{center.X - size, center.Y + size},
	}}
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	area := poly.SignedArea()
	if area < 0 {
		return -area
	}
	return area
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Convexity check for a counterclockwise polygon. Collinear runs are allowed.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i, p := range poly.Points {
		edge := Line{p, poly.Points[CircularIndex(i+1, n)]}
		if edge.A.Equal(edge.B) {
			continue
		}
		next := poly.Points[CircularIndex(i+2, n)]
		if edge.SignedDistance(next) < -Tolerance {
			return false
		}
	}
	return true
}

// Vertex average. For a convex polygon this always lies inside it.
func (poly Polygon) Centroid() Point {
	var c Point
	if len(poly.Points) == 0 {
		return c
	}
	for _, p := range poly.Points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(poly.Points)))
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Bounding box as min and max corners.
func (poly Polygon) Bounds() (min, max Point) {
	for i, p := range poly.Points {
		if i == 0 {
			min, max = p, p
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// Drop repeated vertices and vertices lying on the segment between their
// neighbors. The result has the same area and winding.
func (poly Polygon) Simplify() Polygon {
	points := make([]Point, 0, len(poly.Points))
	for _, p := range poly.Points {
		if len(points) > 0 && points[len(points)-1].Equal(p) {
			continue
		}
		points = append(points, p)
	}
	for len(points) > 1 && points[0].Equal(points[len(points)-1]) {
		points = points[:len(points)-1]
	}

	// Neighbors come from the deduplicated ring, so a whole collinear run is
	// dropped in one pass.
	result := make([]Point, 0, len(points))
	for i, p := range points {
		prev := points[CircularIndex(i-1, len(points))]
		next := points[CircularIndex(i+1, len(points))]
		if len(points) > 2 && !prev.Equal(next) && Equal(Line{prev, next}.SignedDistance(p), 0) {
			continue
		}
		result = append(result, p)
	}
	return Polygon{Points: result}
}

// Andrew's monotone chain. Returns the counterclockwise hull without
// collinear vertices.
func ConvexHull(points []Point) Polygon {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	if len(sorted) < 3 {
		return Polygon{Points: sorted}
	}

	turnsLeft := func(o, a, b Point) bool {
		return a.Sub(o).Cross(b.Sub(o)) > 0
	}

	hull := make([]Point, 0, 2*len(sorted))
	// Lower chain
	for _, p := range sorted {
		for len(hull) >= 2 && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain
	lowerLength := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lowerLength && !turnsLeft(hull[len(hull)-2], hull[len(hull)-1], p) {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// The last point repeats the first
	hull = hull[:len(hull)-1]

	return Polygon{Points: hull}.Simplify()
}
