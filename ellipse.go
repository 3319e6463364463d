package planar

import (
	"fmt"
	"iter"
	"math"
)

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Point
	// Radii along the x and y axes.
	Radii Vec2
}

// NewEllipse returns an ellipse. It panics if either radius is negative.
func NewEllipse(center Point, radii Vec2) Ellipse {
	if radii.X < 0 || radii.Y < 0 {
		panic(fmt.Sprintf("negative radii %s", radii))
	}
	return Ellipse{Center: center, Radii: radii}
}

// NewEllipseFromRect returns the largest ellipse that can be bounded by this
// [Rect]. This uses the absolute width and height of the rectangle.
func NewEllipseFromRect(rect Rect) Ellipse {
	rect = rect.Abs()
	return Ellipse{
		Center: rect.Center(),
		Radii:  Vec(rect.Width()/2, rect.Height()/2),
	}
}

// IsEmpty reports whether the ellipse has no area.
func (e Ellipse) IsEmpty() bool {
	return e.Radii.X <= 0 || e.Radii.Y <= 0
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	if e.IsEmpty() {
		return false
	}
	d := pt.Sub(e.Center)
	x := d.X / e.Radii.X
	y := d.Y / e.Radii.Y
	return x*x+y*y < 1
}

func (e Ellipse) IsInf() bool {
	return e.Center.IsInf() || math.IsInf(e.Radii.X, 0) || math.IsInf(e.Radii.Y, 0)
}

func (e Ellipse) IsNaN() bool {
	return e.Center.IsNaN() || math.IsNaN(e.Radii.X) || math.IsNaN(e.Radii.Y)
}

func (e Ellipse) BoundingBox() Rect {
	return NewRectFromCenter(e.Center, math.Abs(e.Radii.X), math.Abs(e.Radii.Y))
}

func (e Ellipse) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		arc := Arc{
			Center:     e.Center,
			Radii:      e.Radii,
			StartAngle: 0.0,
			SweepAngle: 2 * math.Pi,
		}
		_ = yield(MoveTo(e.Center.Translate(Vec(e.Radii.X, 0)))) &&
			arc.appendCubics(tolerance, yield) &&
			yield(ClosePath())
	}
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	e.Center = e.Center.Translate(v)
	return e
}

// IntersectsLine reports whether the segment shares a point with the
// ellipse's interior. If touching is true, segments tangent to the ellipse
// intersect it, too. Empty ellipses don't intersect anything.
func (e Ellipse) IntersectsLine(l Line, touching bool) bool {
	if e.IsEmpty() {
		return false
	}
	sqA := e.Radii.X * e.Radii.X
	sqB := e.Radii.Y * e.Radii.Y
	p := l.P0.Sub(e.Center)
	v := l.P1.Sub(l.P0)

	// Points of the segment are p + t·v. Substituting into the ellipse's
	// equation gives a·t² + b·t + c = 0.
	a := v.X*v.X/sqA + v.Y*v.Y/sqB
	b := 2 * (p.X*v.X/sqA + p.Y*v.Y/sqB)
	c := p.X*p.X/sqA + p.Y*p.Y/sqB - 1

	if a == 0 {
		return c < 0 || (touching && c == 0)
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	if disc == 0 {
		if !touching {
			return false
		}
		t := -b / (2 * a)
		return t >= 0 && t <= 1
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return t2 >= 0 && t1 <= 1
}

// Nearest returns the point of the filled ellipse closest to pt, and the
// distance between the two. Points inside the ellipse are their own nearest
// point.
func (e Ellipse) Nearest(pt Point) (Point, float64) {
	if e.Contains(pt) {
		return pt, 0
	}
	q := e.solve(pt, nearestCanonical)
	return q, pt.Distance(q)
}

// NearestOnBoundary returns the point of the ellipse's outline closest to pt,
// and the distance between the two.
func (e Ellipse) NearestOnBoundary(pt Point) (Point, float64) {
	q := e.solve(pt, nearestCanonical)
	return q, pt.Distance(q)
}

// Farthest returns the point of the ellipse's outline farthest from pt, and
// the distance between the two.
func (e Ellipse) Farthest(pt Point) (Point, float64) {
	q := e.solve(pt, farthestCanonical)
	return q, pt.Distance(q)
}

// solve maps pt into the canonical configuration of f, with the larger
// radius along x and the point in the first quadrant, and maps f's solution
// back.
func (e Ellipse) solve(pt Point, f canonicalSolver) Point {
	if e.Radii.X < 0 || e.Radii.Y < 0 {
		panic(fmt.Sprintf("negative radii %s", e.Radii))
	}
	d := pt.Sub(e.Center)
	e0, e1 := e.Radii.X, e.Radii.Y
	y0, y1 := d.X, d.Y
	swap := e0 < e1
	if swap {
		e0, e1 = e1, e0
		y0, y1 = y1, y0
	}

	x0, x1, opposite := f(e0, e1, math.Abs(y0), math.Abs(y1))
	if opposite {
		x0 = math.Copysign(x0, -y0)
		x1 = math.Copysign(x1, -y1)
	} else {
		x0 = math.Copysign(x0, y0)
		x1 = math.Copysign(x1, y1)
	}

	if swap {
		x0, x1 = x1, x0
	}
	return e.Center.Translate(Vec(x0, x1))
}
