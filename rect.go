package planar

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle. Most operations expect X0 ≤ X1 and
// Y0 ≤ Y1; use [Rect.Abs] to normalize.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given half-extents centered
// around the center point.
func NewRectFromCenter(center Point, halfWidth, halfHeight float64) Rect {
	if halfWidth < 0 || halfHeight < 0 {
		panic(fmt.Sprintf("negative half-extents %g, %g", halfWidth, halfHeight))
	}
	return Rect{
		X0: center.X - halfWidth,
		Y0: center.Y - halfHeight,
		X1: center.X + halfWidth,
		Y1: center.Y + halfHeight,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether pt lies in the rectangle. The left and top edges
// are inclusive, the right and bottom edges exclusive, so that a plane tiled
// with rectangles has each point in exactly one of them.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X0: r.X0 + d,
		Y0: r.Y0 + d,
		X1: r.X1 - d,
		Y1: r.Y1 - d,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// Ellipse returns the largest ellipse inscribed in the rectangle.
func (r Rect) Ellipse() Ellipse {
	return NewEllipseFromRect(r)
}

// ClipLine clips l to the closed rectangle. It returns false if the two
// don't share any point.
func (r Rect) ClipLine(l Line) (Line, bool) {
	r = r.Abs()
	t0, t1 := 0.0, 1.0
	d := l.P1.Sub(l.P0)
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	if !clip(-d.X, l.P0.X-r.X0) ||
		!clip(d.X, r.X1-l.P0.X) ||
		!clip(-d.Y, l.P0.Y-r.Y0) ||
		!clip(d.Y, r.Y1-l.P0.Y) {
		return Line{}, false
	}
	return Line{l.Eval(t0), l.Eval(t1)}, true
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

func (r Rect) Path() BezPath { return slices.Collect(r.PathElements(0)) }

func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
