package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoi/dbg"
)

type Cell struct {
	Site Point
	// Convex, counterclockwise region of the plane closer to Site than to any
	// other site in the diagram.
	Area   Polygon
	Colour HSLA
}

// Cells are the same cell iff they have the same site. Areas are not compared.
func (c Cell) Equal(other Cell) bool {
	return c.Site == other.Site
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell %s %v <%d vertices, area %g>",
		c.DbgName(),
		c.Site,
		len(c.Area.Points),
		c.Area.Area(),
	)
}

func (c Cell) DbgName() string {
	name := dbg.Name(c.Site)
	if len(c.Area.Points) < 3 || c.Area.Area() < Tolerance { // Degenerate
		name = aurora.Red(name).String()
	} else if !c.Area.IsCCW() {
		name = aurora.Cyan(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
