package planar

import "iter"

// ContainsPoint reports whether pt lies inside the area described by seq.
// Paths whose last subpath is left open contain nothing. Points on a vertex
// of the path are inside.
func ContainsPoint(seq iter.Seq[PathElement], pt Point, rule WindingRule) bool {
	c := Accumulate(seq, PointShadow(pt), CrossingOptions{Policy: SimpleIntersectionWhenNotPolygon})
	return rule.Inside(c)
}

// ContainsRect reports whether the rectangle lies entirely inside the area
// described by seq. The path is closed automatically. Empty rectangles are
// never contained.
func ContainsRect(seq iter.Seq[PathElement], r Rect, rule WindingRule) bool {
	if r.Abs().IsEmpty() {
		return false
	}
	c := Accumulate(seq, RectShadow(r), CrossingOptions{Policy: AutoClose})
	return c != Overlap && rule.Covers(c)
}

// Intersects reports whether the area described by seq and the shadow's
// shape share any point. For open paths, only touching the shape counts.
func Intersects(seq iter.Seq[PathElement], shadow Shadow, rule WindingRule) bool {
	if shadow.kind == RectShadowKind && shadow.rect.IsEmpty() {
		return false
	}
	c := Accumulate(seq, shadow, CrossingOptions{Policy: SimpleIntersectionWhenNotPolygon})
	if shadow.kind == PointShadowKind {
		return rule.Inside(c)
	}
	return rule.Covers(c)
}

// IntersectsPath reports whether the areas described by a and b share any
// point.
func IntersectsPath(a, b iter.Seq[PathElement], rule WindingRule) bool {
	if Intersects(a, PathShadow(b, CrossingOptions{}), rule) {
		return true
	}
	// The outlines don't touch, so one path can only lie inside the other
	// as a whole. Testing one point of each suffices.
	if pt, ok := firstPoint(a); ok && ContainsPoint(b, pt, rule) {
		return true
	}
	if pt, ok := firstPoint(b); ok && ContainsPoint(a, pt, rule) {
		return true
	}
	return false
}

func firstPoint(seq iter.Seq[PathElement]) (Point, bool) {
	for el := range seq {
		return el.EndPoint()
	}
	return Point{}, false
}

// Contains reports whether pt lies inside the path, using the non-zero
// winding rule. See [ContainsPoint].
func (p BezPath) Contains(pt Point) bool {
	return ContainsPoint(p.Elements(), pt, NonZero)
}

// Intersects reports whether the path's area and the shadow's shape share
// any point. See [Intersects].
func (p BezPath) Intersects(shadow Shadow, rule WindingRule) bool {
	return Intersects(p.Elements(), shadow, rule)
}
