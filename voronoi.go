// Incremental planar Voronoi diagrams for Go.
//
// A Diagram partitions a fixed bounding square into convex cells, one per
// site, such that each cell is the set of points closer to its site than to
// any other. Sites are inserted one at a time: the cell containing the new
// site is split along the bisector, and the split is then propagated to every
// neighbor that the new cell takes area from. Nothing is ever recomputed from
// scratch.
//
// Diagrams are values. Insert returns a new diagram and leaves the receiver as
// it was.
package voronoi

import "github.com/osuushi/voronoi/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type Line = internal.Line
type Cell = internal.Cell
type HSLA = internal.HSLA
type Diagram = internal.Diagram
type Insertion = internal.Insertion
type Option = internal.Option

// Geometry kernels. See internal.Kernel for the contract.
type Kernel = internal.Kernel
type FloatKernel = internal.FloatKernel

const (
	DefaultSize = internal.DefaultSize
	Tolerance   = internal.Tolerance
)

var (
	ErrOutOfBounds     = internal.ErrOutOfBounds
	ErrDuplicateSite   = internal.ErrDuplicateSite
	ErrDegenerateSplit = internal.ErrDegenerateSplit
)

var (
	WithLogger          = internal.WithLogger
	WithKernel          = internal.WithKernel
	CenteredOnFirstSite = internal.CenteredOnFirstSite
)

// An empty diagram over the square of half-width size. It panics if size is
// not positive.
func New(size float64, opts ...Option) *Diagram {
	return internal.New(size, opts...)
}

// Build a diagram from a list of sites, in order. Sites that can't be
// inserted are skipped; compare Len() with len(sites) to find out if any were.
func FromSites(size float64, sites []Point, opts ...Option) *Diagram {
	d := New(size, opts...)
	for _, site := range sites {
		d = d.Insert(site)
	}
	return d
}
