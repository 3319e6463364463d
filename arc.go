package planar

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// PathElements approximates the arc with cubic Béziers, starting with a
// MoveTo to the arc's first point.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}
		a.appendCubics(tolerance, yield)
	}
}

// appendCubics yields the arc's cubics without the leading MoveTo.
func (a Arc) appendCubics(tolerance float64, yield func(PathElement) bool) bool {
	if tolerance <= 0 {
		tolerance = DefaultFlatness
	}
	scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
	// Number of subdivisions per ellipse based on error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
	if n < 1 {
		return true
	}
	angleStep := a.SweepAngle / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
	angle0 := a.StartAngle
	p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
		p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

		angle0 = angle1
		p0 = p3

		if !yield(CubicTo(
			a.Center.Translate(p1),
			a.Center.Translate(p2),
			a.Center.Translate(p3),
		)) {
			return false
		}
	}
	return true
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// sweep angle, and returns a point on the ellipse relative to its center.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}.Rotate(xRotation)
}

// BoundingBox returns a box enclosing the control polygon of the arc's cubic
// approximation, which encloses the arc.
func (a Arc) BoundingBox() Rect {
	first := true
	var bbox Rect
	for el := range a.PathElements(DefaultFlatness) {
		for _, p := range el.points() {
			if first {
				bbox = Rect{p.X, p.Y, p.X, p.Y}
				first = false
			} else {
				bbox = bbox.UnionPoint(p)
			}
		}
	}
	return bbox
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// SVGArc is an elliptical arc in SVG endpoint parameterization, as carried
// by [ArcTo] path elements.
type SVGArc struct {
	From      Point
	To        Point
	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// Center converts the arc to center parameterization, following the SVG
// implementation notes. Radii too small to span the endpoints are scaled up.
// It returns false if the arc degenerates: coincident endpoints (the arc is
// omitted) or a zero radius (the arc is a straight line).
func (s SVGArc) Center() (Arc, bool) {
	if s.From == s.To {
		return Arc{}, false
	}
	rx := math.Abs(s.Radii.X)
	ry := math.Abs(s.Radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}

	hd := s.From.Sub(s.To).Mul(0.5).Rotate(-s.XRotation)
	lambda := (hd.X*hd.X)/(rx*rx) + (hd.Y*hd.Y)/(ry*ry)
	if lambda > 1 {
		f := math.Sqrt(lambda)
		rx *= f
		ry *= f
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*hd.Y*hd.Y - ry2*hd.X*hd.X
	den := rx2*hd.Y*hd.Y + ry2*hd.X*hd.X
	coef := math.Sqrt(max(num/den, 0))
	if s.LargeArc == s.Sweep {
		coef = -coef
	}
	cp := Vec2{coef * rx * hd.Y / ry, -coef * ry * hd.X / rx}
	center := s.From.Midpoint(s.To).Translate(cp.Rotate(s.XRotation))

	u := Vec2{(hd.X - cp.X) / rx, (hd.Y - cp.Y) / ry}
	v := Vec2{(-hd.X - cp.X) / rx, (-hd.Y - cp.Y) / ry}
	start := math.Atan2(u.Y, u.X)
	sweep := math.Atan2(u.Cross(v), u.Dot(v))
	if !s.Sweep && sweep > 0 {
		sweep -= 2 * math.Pi
	} else if s.Sweep && sweep < 0 {
		sweep += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: sweep,
		XRotation:  s.XRotation,
	}, true
}

// appendCubics appends the cubics approximating the arc to dst. a is the
// arc's center parameterization. The last cubic ends exactly at s.To.
func (s SVGArc) appendCubics(dst []CubicBez, a Arc, tolerance float64) []CubicBez {
	cur := s.From
	a.appendCubics(tolerance, func(el PathElement) bool {
		dst = append(dst, CubicBez{cur, el.P0, el.P1, el.P2})
		cur = el.P2
		return true
	})
	if len(dst) > 0 {
		// Sampling the ellipse doesn't land exactly on the end point.
		dst[len(dst)-1].P3 = s.To
	}
	return dst
}
