package internal

import "github.com/pkg/errors"

// Insertions that can't go ahead are reported with these. The plain Insert
// methods treat all of them as a no-op.
var (
	ErrOutOfBounds     = errors.New("site lies outside the bounding square")
	ErrDuplicateSite   = errors.New("site is already in the diagram")
	ErrDegenerateSplit = errors.New("bisector does not separate the located cell")
)

// Threading errors through every kernel call would clutter the cascade for
// conditions that only arise from broken input (polygons without area, lines
// without direction). Instead, the kernel panics, and the public API recovers
// to convert to an error.

type VoronoiError error

// Panic with a VoronoiError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleVoronoiPanicRecover(r interface{}) error {
	if r != nil {
		if voronoiError, ok := r.(VoronoiError); ok {
			return voronoiError
		}
		panic(r)
	}
	return nil
}
