package planar

import (
	"fmt"
	"iter"
	"math"
)

// RoundedRect is an axis-aligned rectangle whose corners are quarters of
// an ellipse with the given radii.
type RoundedRect struct {
	Rect
	Radii Vec2
}

// NewRoundedRect returns a rounded rectangle. The radii are clamped to half
// the rectangle's width and height. It panics if either radius is negative.
func NewRoundedRect(r Rect, radii Vec2) RoundedRect {
	if radii.X < 0 || radii.Y < 0 {
		panic(fmt.Sprintf("negative corner radii %s", radii))
	}
	r = r.Abs()
	return RoundedRect{
		Rect: r,
		Radii: Vec2{
			X: min(radii.X, r.Width()/2),
			Y: min(radii.Y, r.Height()/2),
		},
	}
}

func dropFirst[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for el := range seq {
			if first {
				first = false
				continue
			}
			if !yield(el) {
				break
			}
		}
	}
}

func (r RoundedRect) BoundingBox() Rect {
	return r.Rect.Abs()
}

// PathElements traces the outline counterclockwise in a y-up coordinate
// system, starting at the bottom of the left side.
func (r RoundedRect) PathElements(tolerance float64) iter.Seq[PathElement] {
	rect := r.Rect.Abs()
	rx, ry := r.Radii.Splat()
	corner := func(quadrant int, center Point) iter.Seq[PathElement] {
		return dropFirst(Arc{
			Center:     center,
			Radii:      r.Radii,
			StartAngle: math.Pi / 2 * float64(quadrant),
			SweepAngle: math.Pi / 2,
		}.PathElements(tolerance))
	}
	corners := [...]iter.Seq[PathElement]{
		corner(2, Pt(rect.X0+rx, rect.Y0+ry)),
		corner(3, Pt(rect.X1-rx, rect.Y0+ry)),
		corner(0, Pt(rect.X1-rx, rect.Y1-ry)),
		corner(1, Pt(rect.X0+rx, rect.Y1-ry)),
	}
	sides := [...]PathElement{
		LineTo(Pt(rect.X1-rx, rect.Y0)),
		LineTo(Pt(rect.X1, rect.Y1-ry)),
		LineTo(Pt(rect.X0+rx, rect.Y1)),
		ClosePath(),
	}

	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(Pt(rect.X0, rect.Y0+ry))) {
			return
		}
		for i, c := range corners {
			if rx > 0 && ry > 0 {
				for el := range c {
					if !yield(el) {
						return
					}
				}
			}
			if !yield(sides[i]) {
				return
			}
		}
	}
}

func (r RoundedRect) IsInf() bool {
	return r.Rect.IsInf() || math.IsInf(r.Radii.X, 0) || math.IsInf(r.Radii.Y, 0)
}

func (r RoundedRect) IsNaN() bool {
	return r.Rect.IsNaN() || math.IsNaN(r.Radii.X) || math.IsNaN(r.Radii.Y)
}

// Contains reports whether pt lies inside the rounded rectangle or on its
// outline.
func (r RoundedRect) Contains(pt Point) bool {
	return r.contains(pt, false)
}

func (r RoundedRect) contains(pt Point, strict bool) bool {
	rect := r.Rect.Abs()
	center := rect.Center()

	// Fold the point into the top-right quadrant and measure it from the
	// center of that quadrant's corner ellipse. Points level with the
	// straight sides clamp to zero.
	halfW := rect.Width() / 2
	halfH := rect.Height() / 2
	ax := math.Abs(pt.X - center.X)
	ay := math.Abs(pt.Y - center.Y)
	if strict {
		if ax >= halfW || ay >= halfH {
			return false
		}
	} else if ax > halfW || ay > halfH {
		return false
	}
	px := max(ax-(halfW-r.Radii.X), 0)
	py := max(ay-(halfH-r.Radii.Y), 0)
	if px == 0 || py == 0 {
		return true
	}
	d := (px/r.Radii.X)*(px/r.Radii.X) + (py/r.Radii.Y)*(py/r.Radii.Y)
	if strict {
		return d < 1
	}
	return d <= 1
}

// IntersectsLine reports whether the segment passes through the rounded
// rectangle's interior. Touching the outline doesn't count.
func (r RoundedRect) IntersectsLine(l Line) bool {
	rect := r.Rect.Abs()
	c, ok := rect.ClipLine(l)
	if !ok {
		return false
	}
	if c.P0 == c.P1 {
		return r.contains(c.P0, true)
	}
	if (c.P0.X == rect.X0 && c.P1.X == rect.X0) ||
		(c.P0.X == rect.X1 && c.P1.X == rect.X1) ||
		(c.P0.Y == rect.Y0 && c.P1.Y == rect.Y0) ||
		(c.P0.Y == rect.Y1 && c.P1.Y == rect.Y1) {
		// The segment runs along one of the sides.
		return false
	}

	rx, ry := r.Radii.Splat()
	left := max(c.P0.X, c.P1.X) <= rect.X0+rx
	right := min(c.P0.X, c.P1.X) >= rect.X1-rx
	bottom := max(c.P0.Y, c.P1.Y) <= rect.Y0+ry
	top := min(c.P0.Y, c.P1.Y) >= rect.Y1-ry
	if !(left || right) || !(bottom || top) {
		return true
	}
	// The clipped segment lies within a corner's box, where only the corner
	// ellipse counts.
	var center Point
	if left {
		center.X = rect.X0 + rx
	} else {
		center.X = rect.X1 - rx
	}
	if bottom {
		center.Y = rect.Y0 + ry
	} else {
		center.Y = rect.Y1 - ry
	}
	return Ellipse{Center: center, Radii: r.Radii}.IntersectsLine(c, false)
}
