package planar

import (
	"iter"
	"math"
)

// Line represents a line segment. It is the edge type of flattened paths.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point of the
// line, and the closest point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Side returns 1 if pt lies to the right of the line's supporting line when
// looking from P0 to P1 in a y-up coordinate system, -1 if it lies to the
// left and 0 if it lies on the line.
func (l Line) Side(pt Point) int {
	d := l.P1.Sub(l.P0)
	p := pt.Sub(l.P0)
	side := p.X*d.Y - p.Y*d.X
	switch {
	case side < 0:
		return -1
	case side > 0:
		return 1
	default:
		return 0
	}
}

// inBox reports whether pt lies in the line's closed bounding box.
func (l Line) inBox(pt Point) bool {
	return pt.X >= min(l.P0.X, l.P1.X) && pt.X <= max(l.P0.X, l.P1.X) &&
		pt.Y >= min(l.P0.Y, l.P1.Y) && pt.Y <= max(l.P0.Y, l.P1.Y)
}

// Intersects reports whether two segments share at least one point. Touching
// end points and collinear overlaps count as intersections.
func (l Line) Intersects(o Line) bool {
	d1 := l.Side(o.P0)
	d2 := l.Side(o.P1)
	d3 := o.Side(l.P0)
	d4 := o.Side(l.P1)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	return (d1 == 0 && l.inBox(o.P0)) ||
		(d2 == 0 && l.inBox(o.P1)) ||
		(d3 == 0 && o.inBox(l.P0)) ||
		(d4 == 0 && o.inBox(l.P1))
}

// ClosestPoints returns the closest pair of points between two segments, the
// first on l and the second on o, and their squared distance. Intersecting
// segments report a shared point at distance zero.
func (l Line) ClosestPoints(o Line) (Point, Point, float64) {
	if l.Intersects(o) {
		if pt, ok := l.CrossingPoint(o); ok && !pt.IsInf() && !pt.IsNaN() {
			return pt, pt, 0
		}
		// Parallel: the segments overlap on a common line, so one of the
		// end points lies on the other segment.
		for _, pt := range [...]Point{o.P0, o.P1} {
			if l.Side(pt) == 0 && l.inBox(pt) {
				return pt, pt, 0
			}
		}
		for _, pt := range [...]Point{l.P0, l.P1} {
			if o.Side(pt) == 0 && o.inBox(pt) {
				return pt, pt, 0
			}
		}
	}

	best := math.Inf(1)
	var p, q Point
	if d, t := l.Nearest(o.P0); d < best {
		best, p, q = d, l.Eval(t), o.P0
	}
	if d, t := l.Nearest(o.P1); d < best {
		best, p, q = d, l.Eval(t), o.P1
	}
	if d, t := o.Nearest(l.P0); d < best {
		best, p, q = d, l.P0, o.Eval(t)
	}
	if d, t := o.Nearest(l.P1); d < best {
		best, p, q = d, l.P1, o.Eval(t)
	}
	return p, q, best
}
