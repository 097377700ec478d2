package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Half-width of the bounding square when none is given.
const DefaultSize = 1000

// A Voronoi diagram over a fixed bounding square, built one site at a time.
//
// The cells always partition the bounding square, and every cell holds exactly
// the points at least as close to its site as to any other site. Insertion
// returns a new diagram and leaves the receiver untouched, so a *Diagram can be
// shared freely once built. Inserting into one value from several goroutines at
// once is still the caller's problem to serialize.
type Diagram struct {
	size   float64
	bounds Polygon
	// Defer placing the bounding square until the first site arrives
	centerOnFirst bool

	cells []Cell
	index map[Point]int

	kernel Kernel
	logger *zap.Logger
}

// What an insertion did: the site added, the cell it landed in, and every
// neighbor the cascade had to clip afterwards.
type Insertion struct {
	Site      Point
	Split     Point
	Reclipped []Point
}

type Option func(*Diagram)

func WithLogger(logger *zap.Logger) Option {
	return func(d *Diagram) {
		if logger == nil {
			logger = zap.NewNop()
		}
		d.logger = logger
	}
}

func WithKernel(kernel Kernel) Option {
	return func(d *Diagram) {
		d.kernel = kernel
	}
}

// Center the bounding square on the first site inserted instead of the
// origin. The first site then can never be out of bounds.
func CenteredOnFirstSite() Option {
	return func(d *Diagram) {
		d.centerOnFirst = true
	}
}

// An empty diagram whose bounding square has half-width size.
func New(size float64, opts ...Option) *Diagram {
	if size <= 0 {
		fatalf("bounding square size must be positive, got %g", size)
	}
	d := &Diagram{
		size:   size,
		bounds: Square(Point{}, size),
		index:  make(map[Point]int),
		kernel: FloatKernel{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Diagram) Size() float64 {
	return d.size
}

// The bounding square. With CenteredOnFirstSite this is only settled once the
// first site is in.
func (d *Diagram) Bounds() Polygon {
	return d.bounds
}

func (d *Diagram) Len() int {
	return len(d.cells)
}

// All cells, in no particular order. The slice is a copy.
func (d *Diagram) Cells() []Cell {
	cells := make([]Cell, len(d.cells))
	copy(cells, d.cells)
	return cells
}

// The cell for a site, if the site is in the diagram.
func (d *Diagram) Cell(site Point) (Cell, bool) {
	i, ok := d.index[site]
	if !ok {
		return Cell{}, false
	}
	return d.cells[i], true
}

// The cell whose area contains p. Points on a shared boundary belong to
// whichever cell is found first.
func (d *Diagram) Locate(p Point) (Cell, bool) {
	i := d.locate(p)
	if i < 0 {
		return Cell{}, false
	}
	return d.cells[i], true
}

// Insert a site with no colour. Sites outside the bounding square and sites
// already present are ignored.
func (d *Diagram) Insert(site Point) *Diagram {
	return d.InsertCell(Cell{Site: site})
}

// Insert a cell's site and colour. Only the site and colour are used; the area
// is computed. Rejected insertions return the receiver.
func (d *Diagram) InsertCell(c Cell) *Diagram {
	result, _, _ := d.TryInsert(c)
	return result
}

// Like InsertCell, but reports what the insertion did, or why it didn't
// happen. On error the receiver is returned unchanged.
func (d *Diagram) TryInsert(c Cell) (result *Diagram, insertion *Insertion, err error) {
	defer func() {
		recoveredErr := HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = d
			insertion = nil
			err = recoveredErr
		}
	}()

	r := d.clone()
	insertion, err = r.insert(c)
	if err != nil {
		d.logger.Debug("insertion skipped", zap.Stringer("site", c.Site), zap.Error(err))
		return d, nil, err
	}
	return r, insertion, nil
}

func (d *Diagram) clone() *Diagram {
	r := *d
	r.cells = make([]Cell, len(d.cells), len(d.cells)+1)
	copy(r.cells, d.cells)
	r.index = make(map[Point]int, len(d.index)+1)
	for site, i := range d.index {
		r.index[site] = i
	}
	return &r
}

// Sites closer than this to an existing site are duplicates. Clip puts anything
// within Tolerance of the bisector on both sides, so a site within twice that
// could not be told apart from its neighbor's side of the split.
const minSiteSeparation = 2 * Tolerance

// Mutates the diagram in place. Only ever called on a fresh clone.
func (d *Diagram) insert(c Cell) (*Insertion, error) {
	v := c.Site

	// NaN compares false against every edge, so it would be inside every cell
	if !v.IsFinite() {
		return nil, errors.Wrapf(ErrOutOfBounds, "inserting %v", v)
	}

	if len(d.cells) == 0 {
		return d.bootstrap(c)
	}

	if _, ok := d.index[v]; ok {
		return nil, errors.Wrapf(ErrDuplicateSite, "inserting %v", v)
	}

	k := d.locate(v)
	if k < 0 {
		return nil, errors.Wrapf(ErrOutOfBounds, "inserting %v", v)
	}
	located := d.cells[k]
	if located.Site.Distance(v) <= minSiteSeparation {
		return nil, errors.Wrapf(ErrDuplicateSite, "inserting %v, too close to %v", v, located.Site)
	}

	retained, seed, remainder, ok := d.split(located, v)
	if !ok {
		return nil, errors.Wrapf(ErrDegenerateSplit, "inserting %v into %v", v, located)
	}
	d.cells[k].Area = retained
	d.logger.Debug("split located cell",
		zap.Stringer("site", v),
		zap.Stringer("cell", d.cells[k]),
		zap.Int("remainder", len(remainder)),
	)

	insertion := &Insertion{Site: v, Split: located.Site}
	area := d.cascade(v, seed, remainder, located.Site, insertion)

	d.add(Cell{Site: v, Area: area, Colour: c.Colour})
	return insertion, nil
}

// The first cell is the whole bounding square.
func (d *Diagram) bootstrap(c Cell) (*Insertion, error) {
	if d.centerOnFirst {
		d.bounds = Square(c.Site, d.size)
	} else if !d.kernel.Contains(d.bounds, c.Site) {
		return nil, errors.Wrapf(ErrOutOfBounds, "inserting %v", c.Site)
	}

	d.add(Cell{Site: c.Site, Area: d.bounds, Colour: c.Colour})
	d.logger.Debug("bootstrapped diagram", zap.Stringer("cell", d.cells[0]), zap.Float64("size", d.size))
	return &Insertion{Site: c.Site}, nil
}

func (d *Diagram) add(c Cell) {
	d.index[c.Site] = len(d.cells)
	d.cells = append(d.cells, c)
}

// Point location. The cells partition the bounding square, so the first
// containing cell is the one; this is not a nearest site search, which gives
// different answers once cells have been clipped.
func (d *Diagram) locate(p Point) int {
	for i, cell := range d.cells {
		if d.kernel.Contains(cell.Area, p) {
			return i
		}
	}
	return -1
}

// Clip a cell against the bisector between its site and v. Returns the part
// the cell keeps, the part that now belongs to v, and the clip remainder. Not
// ok when the bisector doesn't cut the cell into two pieces, or when neither
// piece can be told to hold the cell's site.
func (d *Diagram) split(cell Cell, v Point) (retained, taken Polygon, remainder []Point, ok bool) {
	u := cell.Site
	left, right, remainder := d.kernel.Clip(cell.Area, d.kernel.Bisector(u, v))
	if left == nil || right == nil {
		return Polygon{}, Polygon{}, nil, false
	}
	switch {
	case d.kernel.Contains(*left, u):
		return *left, *right, remainder, true
	case d.kernel.Contains(*right, u):
		return *right, *left, remainder, true
	}
	return Polygon{}, Polygon{}, nil, false
}

// Grow the new cell for v outward from the located cell. Every point on the
// worklist lies on the boundary of the growing cell; any cell containing one
// is a candidate neighbor, and is clipped against v once. The vertices of
// each piece taken from a neighbor go back on the worklist, since the next
// neighbor along the boundary touches one of them.
func (d *Diagram) cascade(v Point, area Polygon, remainder []Point, split Point, insertion *Insertion) Polygon {
	used := make(PointSet)
	used.Add(split)

	var worklist PointQueue
	worklist.Push(remainder...)
	worklist.Push(area.Points...)

	for !worklist.Empty() {
		q, _ := worklist.Pop()
		for k := range d.cells {
			cell := &d.cells[k]
			if used.Contains(cell.Site) || !d.kernel.Contains(cell.Area, q) {
				continue
			}
			used.Add(cell.Site)

			retained, taken, further, ok := d.split(*cell, v)
			if !ok {
				// Touches the new cell without sharing any area with it
				continue
			}
			cell.Area = retained
			area = d.kernel.Merge(area, taken)
			worklist.Push(further...)
			worklist.Push(taken.Points...)
			insertion.Reclipped = append(insertion.Reclipped, cell.Site)

			d.logger.Debug("reclipped neighbor",
				zap.Stringer("site", v),
				zap.Stringer("cell", *cell),
				zap.Int("worklist", len(worklist)),
			)
		}
	}
	return area
}
