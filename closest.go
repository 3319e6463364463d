package planar

import (
	"iter"
	"math"
)

// maxRefinements bounds the alternating projections between an edge and an
// ellipse.
const maxRefinements = 64

// ClosestShadow is a path shadow that also tracks the closest pair of points
// between the edges fed to it and the shadow's outline. Its crossings are
// those of [PathShadow]. An edge at distance zero produces [Overlap].
//
// A ClosestShadow accumulates state and must not be used by more than one
// walk at a time.
type ClosestShadow struct {
	path    *flatPath
	ellipse option[Ellipse]

	// Smallest squared distance seen so far. It never increases.
	distSq   float64
	onOther  Point
	onShadow Point
}

// NewClosestShadow returns a closest-point shadow over the outline of seq.
// The path is flattened with the flatness and limit of opts.
func NewClosestShadow(seq iter.Seq[PathElement], opts CrossingOptions) *ClosestShadow {
	return &ClosestShadow{
		path:   newFlatPath(seq, opts),
		distSq: math.Inf(1),
	}
}

// NewEllipseClosestShadow returns a closest-point shadow over the outline of
// e. Distances are measured to the ellipse itself, not to its flattening.
func NewEllipseClosestShadow(e Ellipse, opts CrossingOptions) *ClosestShadow {
	cs := NewClosestShadow(e.PathElements(opts.flatness()), opts)
	if !e.IsEmpty() {
		cs.ellipse.set(e)
		bbox := e.BoundingBox()
		cs.path.Rect = bbox
		cs.path.xAtMinY = e.Center.X
		cs.path.xAtMaxY = e.Center.X
	}
	return cs
}

// Shadow returns cs as a [Shadow] for use with [Accumulate].
func (cs *ClosestShadow) Shadow() Shadow {
	return Shadow{kind: ClosestShadowKind, closest: cs}
}

// Distance returns the smallest distance seen so far. It is +Inf until the
// first edge has been measured.
func (cs *ClosestShadow) Distance() float64 {
	return math.Sqrt(cs.distSq)
}

// Points returns the closest pair seen so far: the point on the walked edges
// and the point on the shadow's outline. It returns false if no edge has
// been measured yet.
func (cs *ClosestShadow) Points() (onOther, onShadow Point, ok bool) {
	return cs.onOther, cs.onShadow, !math.IsInf(cs.distSq, 1)
}

func (cs *ClosestShadow) edge(c Crossings, from, to Point) Crossings {
	if !cs.path.ok {
		return c
	}
	edge := Line{from, to}
	var p, q Point
	d := math.Inf(1)
	for l := range cs.path.outlineEdges() {
		pp, qq, dd := edge.ClosestPoints(l)
		if dd < d {
			p, q, d = pp, qq, dd
		}
	}
	if cs.ellipse.isSet {
		p, q, d = closestToEllipse(cs.ellipse.value, edge, p)
	}
	if d < cs.distSq {
		cs.distSq = d
		cs.onOther = p
		cs.onShadow = q
	}
	if d <= 0 {
		return Overlap
	}

	if c, ok := extentCrossings(c, cs.path.Rect, from, to); ok {
		return c
	}
	return anchorCrossings(c, cs.path.xAtMinY, cs.path.xAtMaxY, cs.path.Rect, from, to)
}

// closestToEllipse returns the closest pair between the edge and the
// ellipse's outline, and their squared distance. guess is a point on the
// edge to start from.
func closestToEllipse(e Ellipse, edge Line, guess Point) (Point, Point, float64) {
	if pt, ok := ellipseOutlineHit(e, edge); ok {
		return pt, pt, 0
	}
	p := guess
	q, _ := e.NearestOnBoundary(p)
	for range maxRefinements {
		_, t := edge.Nearest(q)
		next := edge.Eval(t)
		if next == p {
			break
		}
		p = next
		q, _ = e.NearestOnBoundary(p)
	}
	return p, q, p.DistanceSquared(q)
}

// ellipseOutlineHit returns a point where the segment meets the ellipse's
// outline.
func ellipseOutlineHit(e Ellipse, l Line) (Point, bool) {
	sqA := e.Radii.X * e.Radii.X
	sqB := e.Radii.Y * e.Radii.Y
	p := l.P0.Sub(e.Center)
	v := l.P1.Sub(l.P0)
	a := v.X*v.X/sqA + v.Y*v.Y/sqB
	b := 2 * (p.X*v.X/sqA + p.Y*v.Y/sqB)
	c := p.X*p.X/sqA + p.Y*p.Y/sqB - 1
	roots, n := SolveQuadratic(c, b, a)
	for _, t := range roots[:n] {
		if t >= 0 && t <= 1 {
			return l.Eval(t), true
		}
	}
	return Point{}, false
}

// ClosestPair is the result of [ClosestPoints].
type ClosestPair struct {
	// Closest points on the outlines of the two paths.
	OnA, OnB Point
	Distance float64
	// Overlap is set if the outlines touch. OnB is then a point they share.
	Overlap bool
	// Enclosed is set if A winds around B and A's last subpath ends where
	// it started. Earlier subpaths of A may be open.
	Enclosed bool
}

// Point returns the answer of the closest-point query: the shared point for
// overlapping paths, the point on B if A encloses B, and the point on A
// otherwise.
func (p ClosestPair) Point() Point {
	if p.Overlap || p.Enclosed {
		return p.OnB
	}
	return p.OnA
}

// ClosestPoints finds the closest pair of points between the outlines of a
// and b. It walks a's edges over a [ClosestShadow] of b and classifies the
// final count with rule to decide whether a encloses b.
func ClosestPoints(a, b iter.Seq[PathElement], rule WindingRule, opts CrossingOptions) ClosestPair {
	return closestPoints(a, NewClosestShadow(b, opts), rule, opts)
}

// ClosestPointsToEllipse is like [ClosestPoints], with the exact outline of e
// in place of b.
func ClosestPointsToEllipse(a iter.Seq[PathElement], e Ellipse, rule WindingRule, opts CrossingOptions) ClosestPair {
	return closestPoints(a, NewEllipseClosestShadow(e, opts), rule, opts)
}

func closestPoints(a iter.Seq[PathElement], cs *ClosestShadow, rule WindingRule, opts CrossingOptions) ClosestPair {
	opts.Policy = Standard
	c := Accumulate(a, cs.Shadow(), opts)
	pair := ClosestPair{
		OnA:      cs.onOther,
		OnB:      cs.onShadow,
		Distance: cs.Distance(),
	}
	if c == Overlap {
		pair.Overlap = true
		pair.Distance = 0
		return pair
	}
	pair.Enclosed = endsAtStart(a) && rule.Covers(c)
	return pair
}
