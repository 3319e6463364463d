package planar

import (
	"fmt"
	"iter"
	"math"
)

// Crossings is the signed number of times a path crosses the rightward rays
// of a shadow. Upward crossings count +1 and downward crossings −1.
//
// The value [Overlap] signals that the path touches the shadow itself. It is
// terminal: once a walk produced it, no further edge changes it.
type Crossings int

// Overlap is the sentinel value of [Crossings].
const Overlap Crossings = math.MinInt

func (c Crossings) IsOverlap() bool { return c == Overlap }

func (c Crossings) String() string {
	if c == Overlap {
		return "Overlap"
	}
	return fmt.Sprintf("%d", int(c))
}

// WindingRule decides from a crossing count whether something is inside a
// path.
type WindingRule int

const (
	// NonZero treats every non-zero count as inside.
	NonZero WindingRule = iota
	// EvenOdd treats odd counts as inside.
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(r))
	}
}

// pointMask is applied to counts of a point shadow.
func (r WindingRule) pointMask() int {
	switch r {
	case NonZero:
		return -1
	case EvenOdd:
		return 1
	default:
		panic(fmt.Sprintf("invalid winding rule %d", int(r)))
	}
}

// shapeMask is applied to counts of an extended shadow. Such a shadow is
// crossed once at each of its two extrema, so one winding around it counts
// twice.
func (r WindingRule) shapeMask() int {
	switch r {
	case NonZero:
		return -1
	case EvenOdd:
		return 2
	default:
		panic(fmt.Sprintf("invalid winding rule %d", int(r)))
	}
}

// Inside reports whether a count computed for a [PointShadow] places the
// point inside the path. Overlap counts as inside.
func (r WindingRule) Inside(c Crossings) bool {
	return c == Overlap || int(c)&r.pointMask() != 0
}

// Covers reports whether a count computed for an extended shadow means that
// the path winds around the shadow. Overlap counts as covering.
func (r WindingRule) Covers(c Crossings) bool {
	return c == Overlap || int(c)&r.shapeMask() != 0
}

// CrossingPolicy selects how the count of a path whose last subpath is
// left open is completed.
type CrossingPolicy int

const (
	// Standard leaves the count of open paths as is.
	Standard CrossingPolicy = iota
	// AutoClose adds the crossings of the edge from the current point back
	// to the start of the last subpath.
	AutoClose
	// SimpleIntersectionWhenNotPolygon drops the count of open paths. Only
	// Overlap survives.
	SimpleIntersectionWhenNotPolygon
)

func (p CrossingPolicy) String() string {
	switch p {
	case Standard:
		return "Standard"
	case AutoClose:
		return "AutoClose"
	case SimpleIntersectionWhenNotPolygon:
		return "SimpleIntersectionWhenNotPolygon"
	default:
		return fmt.Sprintf("CrossingPolicy(%d)", int(p))
	}
}

// CrossingOptions configures [Accumulate]. The zero value is ready to use.
type CrossingOptions struct {
	Policy CrossingPolicy
	// Flatness used for flattening curves. Zero selects [DefaultFlatness].
	Flatness float64
	// Maximum number of curve subdivisions. Zero selects
	// [DefaultFlatteningLimit].
	Limit int
}

func (opts CrossingOptions) flatness() float64 {
	if opts.Flatness <= 0 {
		return DefaultFlatness
	}
	return opts.Flatness
}

func (opts CrossingOptions) limit() int {
	if opts.Limit <= 0 {
		return DefaultFlatteningLimit
	}
	return opts.Limit
}

// Accumulate computes the crossings of seq with the shadow. See
// [AccumulateFrom].
func Accumulate(seq iter.Seq[PathElement], shadow Shadow, opts CrossingOptions) Crossings {
	return AccumulateFrom(0, seq, shadow, opts)
}

// AccumulateFrom adds the crossings of seq with the shadow to initial.
//
// The path is flattened first and its edges are then fed to the shadow in
// order. A ClosePath tests the edge back to the subpath's start point, if
// the two differ. The walk stops as soon as the count becomes [Overlap].
//
// Segment, rectangle, triangle, rounded rectangle and path shadows stop the
// walk at the first ClosePath after which the count is non-zero, without
// looking at later subpaths.
//
// The path must start with a MoveTo.
func AccumulateFrom(initial Crossings, seq iter.Seq[PathElement], shadow Shadow, opts CrossingOptions) Crossings {
	c := initial
	if c == Overlap {
		return c
	}
	stopOnClose := shadow.stopsOnClose()
	var start, cur Point
	for el := range FlattenLimit(seq, opts.flatness(), opts.limit()) {
		switch el.Kind {
		case MoveToKind:
			start, cur = el.P0, el.P0
		case LineToKind:
			c = shadow.Edge(c, cur, el.P0)
			cur = el.P0
		case ClosePathKind:
			if cur != start {
				c = shadow.Edge(c, cur, start)
			}
			if stopOnClose && c != 0 {
				return c
			}
			cur = start
		default:
			panic(fmt.Sprintf("unexpected %s in flattened path", el.Kind))
		}
		if c == Overlap {
			return c
		}
	}

	if cur != start {
		switch opts.Policy {
		case Standard:
		case AutoClose:
			c = shadow.Edge(c, cur, start)
		case SimpleIntersectionWhenNotPolygon:
			// Overlap returned early from the loop.
			c = 0
		default:
			panic(fmt.Sprintf("invalid crossing policy %d", int(opts.Policy)))
		}
	}
	return c
}

// pointCrossings returns the crossings of the edge (x0, y0)→(x1, y1) with the
// rightward ray from (px, py). The ray includes its origin. Edges cover
// their lower end point but not their upper one, so that a path passing
// through a vertex is counted once.
func pointCrossings(px, py, x0, y0, x1, y1 float64) int {
	if py < y0 && py < y1 {
		return 0
	}
	if py >= y0 && py >= y1 {
		return 0
	}
	if px >= x0 && px >= x1 {
		return 0
	}
	if px < x0 && px < x1 {
		return edgeDirection(y0, y1)
	}
	xi := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px >= xi {
		return 0
	}
	return edgeDirection(y0, y1)
}

// pointCrossingsStrict is like pointCrossings but also counts edges ending
// exactly at the ray's height or origin.
func pointCrossingsStrict(px, py, x0, y0, x1, y1 float64) int {
	if py < y0 && py < y1 {
		return 0
	}
	if py > y0 && py > y1 {
		return 0
	}
	if px > x0 && px > x1 {
		return 0
	}
	if y0 == y1 {
		return 0
	}
	if px < x0 && px < x1 {
		return edgeDirection(y0, y1)
	}
	xi := x0 + (py-y0)*(x1-x0)/(y1-y0)
	if px > xi {
		return 0
	}
	return edgeDirection(y0, y1)
}

func edgeDirection(y0, y1 float64) int {
	if y0 < y1 {
		return 1
	}
	return -1
}

// lineCrossings is pointCrossings for an edge given as two points.
func lineCrossings(px, py float64, from, to Point) int {
	return pointCrossings(px, py, from.X, from.Y, to.X, to.Y)
}

// extentCrossings handles the cases shared by all extended shadows, given
// the shadow's extent. It reports false if the edge needs the shadow's own
// test.
func extentCrossings(c Crossings, ext Rect, from, to Point) (Crossings, bool) {
	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	if y0 <= ext.Y0 && y1 <= ext.Y0 {
		return c, true
	}
	if y0 >= ext.Y1 && y1 >= ext.Y1 {
		return c, true
	}
	if x0 <= ext.X0 && x1 <= ext.X0 {
		return c, true
	}
	if x0 >= ext.X1 && x1 >= ext.X1 {
		if y0 < y1 {
			if y0 <= ext.Y0 {
				c++
			}
			if y1 >= ext.Y1 {
				c++
			}
		} else {
			if y1 <= ext.Y0 {
				c--
			}
			if y0 >= ext.Y1 {
				c--
			}
		}
		return c, true
	}
	return c, false
}

// anchorCrossings adds the crossings of an edge that passes the shadow
// without touching it, measured at the shadow's extremal points.
func anchorCrossings(c Crossings, xAtMinY, xAtMaxY float64, ext Rect, from, to Point) Crossings {
	return c +
		Crossings(lineCrossings(xAtMinY, ext.Y0, from, to)) +
		Crossings(lineCrossings(xAtMaxY, ext.Y1, from, to))
}
