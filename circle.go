package planar

import (
	"fmt"
	"iter"
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns a circle. It panics if radius is negative.
func NewCircle(center Point, radius float64) Circle {
	if radius < 0 {
		panic(fmt.Sprintf("negative radius %g", radius))
	}
	return Circle{Center: center, Radius: radius}
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if tolerance <= 0 {
			tolerance = DefaultFlatness
		}
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		step := 2.0 * math.Pi / float64(n)
		for i := 1; i <= n; i++ {
			a := armLength
			th1 := step * float64(i)
			s0, c0 := math.Sincos(th1 - step)
			s1, c1 := 0.0, 1.0
			if i != n {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) BoundingBox() Rect {
	return NewRectFromCenter(c.Center, math.Abs(c.Radius), math.Abs(c.Radius))
}

// Ellipse returns the circle as an ellipse with equal radii.
func (c Circle) Ellipse() Ellipse {
	return Ellipse{Center: c.Center, Radii: Vec(math.Abs(c.Radius), math.Abs(c.Radius))}
}

// IntersectsLine reports whether the segment passes through the circle's
// interior. Touching the circle from the outside doesn't count.
func (c Circle) IntersectsLine(l Line) bool {
	d, _ := l.Nearest(c.Center)
	return d < c.Radius*c.Radius
}

// Nearest returns the point of the disk closest to pt, and its distance.
// Points inside the circle are their own nearest point.
func (c Circle) Nearest(pt Point) (Point, float64) {
	d := pt.Sub(c.Center)
	dist := d.Hypot()
	if dist <= c.Radius {
		return pt, 0
	}
	return c.Center.Translate(d.Mul(c.Radius / dist)), dist - c.Radius
}

// Farthest returns the point of the circle farthest from pt, and its
// distance. For the center, every point of the circle is equally far, and
// the one at angle zero is returned.
func (c Circle) Farthest(pt Point) (Point, float64) {
	d := pt.Sub(c.Center)
	dist := d.Hypot()
	if dist == 0 {
		return c.Center.Translate(Vec(c.Radius, 0)), c.Radius
	}
	return c.Center.Translate(d.Mul(-c.Radius / dist)), dist + c.Radius
}
