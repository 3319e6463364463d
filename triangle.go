package planar

import (
	"iter"
	"math"
)

// Triangle is a triangle given by its three vertices, in any order.
type Triangle struct {
	P0, P1, P2 Point
}

// Contains reports whether pt lies inside the triangle or on its outline.
// Degenerate triangles contain nothing.
func (t Triangle) Contains(pt Point) bool {
	y12 := t.P1.Y - t.P2.Y
	x02 := t.P0.X - t.P2.X
	x21 := t.P2.X - t.P1.X
	y02 := t.P0.Y - t.P2.Y
	den := y12*x02 + x21*y02
	if den == 0 {
		return false
	}
	px := pt.X - t.P2.X
	py := pt.Y - t.P2.Y
	a := (y12*px + x21*py) / den
	b := (-y02*px + x02*py) / den
	c := 1 - a - b
	return a >= 0 && a <= 1 &&
		b >= 0 && b <= 1 &&
		c >= 0 && c <= 1
}

func (t Triangle) BoundingBox() Rect {
	return NewRectFromPoints(t.P0, t.P1).UnionPoint(t.P2)
}

func (t Triangle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(t.P0)) &&
			yield(LineTo(t.P1)) &&
			yield(LineTo(t.P2)) &&
			yield(ClosePath())
	}
}

func (t Triangle) Translate(v Vec2) Triangle {
	return Triangle{
		P0: t.P0.Translate(v),
		P1: t.P1.Translate(v),
		P2: t.P2.Translate(v),
	}
}

func (t Triangle) IsInf() bool {
	return t.P0.IsInf() || t.P1.IsInf() || t.P2.IsInf()
}

func (t Triangle) IsNaN() bool {
	return t.P0.IsNaN() || t.P1.IsNaN() || t.P2.IsNaN()
}

// IntersectsLine reports whether the segment and the triangle overlap. It
// separates them along the normals of the triangle's edges and of the
// segment. Shapes that merely touch count as separated.
func (t Triangle) IntersectsLine(l Line) bool {
	axes := [...]Vec2{
		t.P1.Sub(t.P0),
		t.P2.Sub(t.P1),
		t.P0.Sub(t.P2),
		l.P1.Sub(l.P0),
	}
	for _, axis := range axes {
		if axis == (Vec2{}) {
			continue
		}
		tmin, tmax := math.Inf(1), math.Inf(-1)
		for _, p := range [...]Point{t.P0, t.P1, t.P2} {
			a := axis.Cross(Vec2(p))
			tmin = min(tmin, a)
			tmax = max(tmax, a)
		}
		a0 := axis.Cross(Vec2(l.P0))
		a1 := axis.Cross(Vec2(l.P1))
		lmin, lmax := min(a0, a1), max(a0, a1)
		if tmax <= lmin || lmax <= tmin {
			return false
		}
	}
	return true
}
