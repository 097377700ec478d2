package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file loads site fixtures. A fixture is an svg file in fixtures/ whose
// <circle> elements are the sites, in document order. Radius and styling are
// ignored. If anything goes wrong, it panics.
//
// Fixtures are available by name, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	sites := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		sites = append(sites, Point{x, y})
	}
	return sites
}

// Some ad hoc site sets

func RandomSites(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	sites := make([]Point, n)
	for i := range sites {
		sites[i] = Point{
			X: (rng.Float64()*2 - 1) * size,
			Y: (rng.Float64()*2 - 1) * size,
		}
	}
	return sites
}

// Sites on a circle, slightly rotated so no two share an x or y value.
func CircleSites(n int, radius float64) []Point {
	sites := make([]Point, n)
	for i := range sites {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.1
		sites[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return sites
}

// A regular grid. Every interior Voronoi vertex is shared by four cells,
// which is as degenerate as inputs get without repeating a site.
func GridSites(n int, spacing float64) []Point {
	var sites []Point
	offset := spacing * float64(n-1) / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sites = append(sites, Point{X: float64(i)*spacing - offset, Y: float64(j)*spacing - offset})
		}
	}
	return sites
}

func BuildDiagram(size float64, sites []Point, opts ...Option) *Diagram {
	d := New(size, opts...)
	for _, site := range sites {
		d = d.Insert(site)
	}
	return d
}
