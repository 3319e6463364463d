package planar

import (
	"iter"
	"math"
)

// NearestPoint returns the point of the path closest to pt, and the distance
// between the two. Curves are flattened with opts. A point inside one of the
// path's closed subpaths, according to rule, is its own nearest point. The
// result is false for paths without any points.
func NearestPoint(seq iter.Seq[PathElement], pt Point, rule WindingRule, opts CrossingOptions) (Point, float64, bool) {
	best := math.Inf(1)
	var q Point
	nearer := func(l Line) {
		if d, t := l.Nearest(pt); d < best {
			best, q = d, l.Eval(t)
		}
	}

	var start, cur Point
	var c Crossings
	for el := range FlattenLimit(seq, opts.flatness(), opts.limit()) {
		switch el.Kind {
		case MoveToKind:
			start, cur = el.P0, el.P0
			c = 0
			nearer(Line{cur, cur})
		case LineToKind:
			c += Crossings(lineCrossings(pt.X, pt.Y, cur, el.P0))
			nearer(Line{cur, el.P0})
			cur = el.P0
		case ClosePathKind:
			c += Crossings(lineCrossings(pt.X, pt.Y, cur, start))
			if rule.Inside(c) {
				return pt, 0, true
			}
			if cur != start {
				nearer(Line{cur, start})
			}
			cur = start
			c = 0
		}
	}
	if math.IsInf(best, 1) {
		return Point{}, 0, false
	}
	return q, math.Sqrt(best), true
}

// FarthestPoint returns the point of the path's edges farthest from pt, and
// the distance between the two. Curves are flattened with opts. The result
// is false for paths without any edges.
func FarthestPoint(seq iter.Seq[PathElement], pt Point, opts CrossingOptions) (Point, float64, bool) {
	best := -1.0
	var q Point
	for l := range drawnEdges(FlattenLimit(seq, opts.flatness(), opts.limit())) {
		// The farthest point of a segment is always one of its ends.
		for _, p := range [...]Point{l.P0, l.P1} {
			if d := pt.DistanceSquared(p); d > best {
				best, q = d, p
			}
		}
	}
	if best < 0 {
		return Point{}, 0, false
	}
	return q, math.Sqrt(best), true
}

// Length returns the length of the path's drawn outline, measured on its
// flattening with opts. Subpaths are only closed by an explicit ClosePath.
func Length(seq iter.Seq[PathElement], opts CrossingOptions) float64 {
	var n float64
	for l := range drawnEdges(FlattenLimit(seq, opts.flatness(), opts.limit())) {
		n += l.Length()
	}
	return n
}

// Length returns the length of the path's outline. See [Length].
func (p BezPath) Length(opts CrossingOptions) float64 {
	return Length(p.Elements(), opts)
}
