package planar

import (
	"fmt"
	"iter"
	"math"
)

// Parallelogram is given by its center, two unit axes, and the extent of the
// shape along each axis, measured from the center.
type Parallelogram struct {
	Center  Point
	Axis1   Vec2
	Extent1 float64
	Axis2   Vec2
	Extent2 float64
}

// axisTolerance is how far an axis' length may be off from 1.
const axisTolerance = 1e-9

// NewParallelogram returns a parallelogram. It panics if an axis isn't a
// unit vector, if the axes are parallel, or if an extent is negative.
func NewParallelogram(center Point, axis1 Vec2, extent1 float64, axis2 Vec2, extent2 float64) Parallelogram {
	if math.Abs(axis1.Hypot()-1) > axisTolerance {
		panic(fmt.Sprintf("first axis %s isn't a unit vector", axis1))
	}
	if math.Abs(axis2.Hypot()-1) > axisTolerance {
		panic(fmt.Sprintf("second axis %s isn't a unit vector", axis2))
	}
	if axis1.Cross(axis2) == 0 {
		panic(fmt.Sprintf("axes %s and %s are parallel", axis1, axis2))
	}
	if extent1 < 0 || extent2 < 0 {
		panic(fmt.Sprintf("negative extents %g, %g", extent1, extent2))
	}
	return Parallelogram{
		Center:  center,
		Axis1:   axis1,
		Extent1: extent1,
		Axis2:   axis2,
		Extent2: extent2,
	}
}

// Corners returns the four corners in outline order.
func (p Parallelogram) Corners() [4]Point {
	u := p.Axis1.Mul(p.Extent1)
	v := p.Axis2.Mul(p.Extent2)
	return [4]Point{
		p.Center.Translate(u.Add(v)),
		p.Center.Translate(u.Neg().Add(v)),
		p.Center.Translate(u.Neg().Sub(v)),
		p.Center.Translate(u.Sub(v)),
	}
}

// Contains reports whether pt lies inside the parallelogram or on its
// outline.
func (p Parallelogram) Contains(pt Point) bool {
	det := p.Axis1.Cross(p.Axis2)
	if det == 0 {
		return false
	}
	d := pt.Sub(p.Center)
	s := d.Cross(p.Axis2) / det
	t := p.Axis1.Cross(d) / det
	return math.Abs(s) <= p.Extent1 && math.Abs(t) <= p.Extent2
}

func (p Parallelogram) BoundingBox() Rect {
	c := p.Corners()
	return NewRectFromPoints(c[0], c[1]).UnionPoint(c[2]).UnionPoint(c[3])
}

func (p Parallelogram) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		c := p.Corners()
		_ = yield(MoveTo(c[0])) &&
			yield(LineTo(c[1])) &&
			yield(LineTo(c[2])) &&
			yield(LineTo(c[3])) &&
			yield(ClosePath())
	}
}

func (p Parallelogram) Translate(v Vec2) Parallelogram {
	p.Center = p.Center.Translate(v)
	return p
}
