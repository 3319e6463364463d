package planar

import (
	"fmt"
	"iter"
)

type ShadowKind int

const (
	PointShadowKind ShadowKind = iota + 1
	SegmentShadowKind
	RectShadowKind
	CircleShadowKind
	EllipseShadowKind
	TriangleShadowKind
	RoundedRectShadowKind
	PathShadowKind
	ClosestShadowKind
)

func (k ShadowKind) String() string {
	switch k {
	case PointShadowKind:
		return "PointShadow"
	case SegmentShadowKind:
		return "SegmentShadow"
	case RectShadowKind:
		return "RectShadow"
	case CircleShadowKind:
		return "CircleShadow"
	case EllipseShadowKind:
		return "EllipseShadow"
	case TriangleShadowKind:
		return "TriangleShadow"
	case RoundedRectShadowKind:
		return "RoundedRectShadow"
	case PathShadowKind:
		return "PathShadow"
	case ClosestShadowKind:
		return "ClosestShadow"
	default:
		return "InvalidShadow"
	}
}

// Shadow is the reference shape of a crossing computation. A path's edges
// are tested against the shape and the rays extending from it to the right
// (toward +X). The count tells whether the path winds around the shape, and
// the shadow detects when an edge touches the shape itself.
//
// The zero value is not a valid shadow. Use one of the constructors.
type Shadow struct {
	kind ShadowKind

	pt      Point
	line    Line
	rect    Rect
	circle  Circle
	ellipse Ellipse
	tri     Triangle
	rrect   RoundedRect
	path    *flatPath
	closest *ClosestShadow
}

// PointShadow returns the shadow of a single point. Its counts are
// classified with [WindingRule.Inside].
func PointShadow(pt Point) Shadow {
	return Shadow{kind: PointShadowKind, pt: pt}
}

func SegmentShadow(l Line) Shadow {
	return Shadow{kind: SegmentShadowKind, line: l}
}

func RectShadow(r Rect) Shadow {
	return Shadow{kind: RectShadowKind, rect: r.Abs()}
}

func CircleShadow(c Circle) Shadow {
	return Shadow{kind: CircleShadowKind, circle: c}
}

func EllipseShadow(e Ellipse) Shadow {
	return Shadow{kind: EllipseShadowKind, ellipse: e}
}

func TriangleShadow(t Triangle) Shadow {
	return Shadow{kind: TriangleShadowKind, tri: t}
}

func RoundedRectShadow(r RoundedRect) Shadow {
	return Shadow{kind: RoundedRectShadowKind, rrect: r}
}

// PathShadow returns the shadow of the area enclosed by a path. Open
// subpaths are treated as closed. The path is flattened once, with the
// flatness and limit of opts; the shadow keeps ranging over the flattened
// sequence, so seq must remain valid and unchanged.
func PathShadow(seq iter.Seq[PathElement], opts CrossingOptions) Shadow {
	return Shadow{kind: PathShadowKind, path: newFlatPath(seq, opts)}
}

// ParallelogramShadow returns the path shadow of the parallelogram's outline.
func ParallelogramShadow(p Parallelogram) Shadow {
	return PathShadow(p.PathElements(0), CrossingOptions{})
}

func (s Shadow) Kind() ShadowKind { return s.kind }

// BoundingBox returns the extent of the shadow's shape.
func (s Shadow) BoundingBox() Rect {
	switch s.kind {
	case PointShadowKind:
		return Rect{s.pt.X, s.pt.Y, s.pt.X, s.pt.Y}
	case SegmentShadowKind:
		return s.line.BoundingBox()
	case RectShadowKind:
		return s.rect
	case CircleShadowKind:
		return s.circle.BoundingBox()
	case EllipseShadowKind:
		return s.ellipse.BoundingBox()
	case TriangleShadowKind:
		return s.tri.BoundingBox()
	case RoundedRectShadowKind:
		return s.rrect.BoundingBox()
	case PathShadowKind:
		return s.path.Rect
	case ClosestShadowKind:
		return s.closest.path.Rect
	default:
		panic(fmt.Sprintf("unhandled case %v", s.kind))
	}
}

// stopsOnClose reports whether a walk over this shadow ends at the first
// ClosePath that leaves a non-zero count.
func (s Shadow) stopsOnClose() bool {
	switch s.kind {
	case SegmentShadowKind, RectShadowKind, TriangleShadowKind, RoundedRectShadowKind, PathShadowKind:
		return true
	default:
		return false
	}
}

// Edge returns c updated with the crossings of the edge from→to. It returns
// [Overlap] if the edge touches the shadow's shape, and it never changes an
// Overlap.
func (s Shadow) Edge(c Crossings, from, to Point) Crossings {
	if c == Overlap {
		return c
	}
	switch s.kind {
	case PointShadowKind:
		return pointEdge(c, s.pt, from, to)
	case SegmentShadowKind:
		return segmentEdge(c, s.line, from, to)
	case RectShadowKind:
		return rectEdge(c, s.rect, from, to)
	case CircleShadowKind:
		return circleEdge(c, s.circle, from, to)
	case EllipseShadowKind:
		return ellipseEdge(c, s.ellipse, from, to)
	case TriangleShadowKind:
		return triangleEdge(c, s.tri, from, to)
	case RoundedRectShadowKind:
		return roundedRectEdge(c, s.rrect, from, to)
	case PathShadowKind:
		return pathEdge(c, s.path, from, to)
	case ClosestShadowKind:
		return s.closest.edge(c, from, to)
	default:
		panic(fmt.Sprintf("unhandled case %v", s.kind))
	}
}

func pointEdge(c Crossings, pt, from, to Point) Crossings {
	if to == pt {
		return Overlap
	}
	return c + Crossings(lineCrossings(pt.X, pt.Y, from, to))
}

func segmentEdge(c Crossings, s Line, from, to Point) Crossings {
	if c, ok := extentCrossings(c, s.BoundingBox(), from, to); ok {
		return c
	}
	edge := Line{from, to}
	if edge.Intersects(s) {
		return Overlap
	}
	up := s
	if up.P0.Y > up.P1.Y {
		up = Line{s.P1, s.P0}
	}
	if up.Side(from) > 0 || up.Side(to) > 0 {
		n1 := lineCrossings(s.P0.X, s.P0.Y, from, to)
		var n2 int
		if n1 != 0 {
			n2 = pointCrossingsStrict(s.P1.X, s.P1.Y, from.X, from.Y, to.X, to.Y)
		} else {
			n2 = lineCrossings(s.P1.X, s.P1.Y, from, to)
		}
		c += Crossings(n1 + n2)
	}
	return c
}

func rectEdge(c Crossings, r Rect, from, to Point) Crossings {
	if c, ok := extentCrossings(c, r, from, to); ok {
		return c
	}
	inside := func(pt Point) bool {
		return pt.X > r.X0 && pt.X < r.X1 && pt.Y > r.Y0 && pt.Y < r.Y1
	}
	if inside(from) || inside(to) {
		return Overlap
	}

	// Move both end points along the edge into the rectangle's vertical
	// range and look at where they end up horizontally.
	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	xi0, xi1 := x0, x1
	if y0 < r.Y0 {
		xi0 += (r.Y0 - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > r.Y1 {
		xi0 += (r.Y1 - y0) * (x1 - x0) / (y1 - y0)
	}
	if y1 < r.Y0 {
		xi1 += (r.Y0 - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > r.Y1 {
		xi1 += (r.Y1 - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 <= r.X0 && xi1 <= r.X0 {
		return c
	}
	if xi0 >= r.X1 && xi1 >= r.X1 {
		if y0 < y1 {
			if y0 <= r.Y0 {
				c++
			}
			if y1 >= r.Y1 {
				c++
			}
		} else {
			if y1 <= r.Y0 {
				c--
			}
			if y0 >= r.Y1 {
				c--
			}
		}
		return c
	}
	return Overlap
}

func circleEdge(c Crossings, circ Circle, from, to Point) Crossings {
	ext := circ.BoundingBox()
	if c, ok := extentCrossings(c, ext, from, to); ok {
		return c
	}
	if circ.IntersectsLine(Line{from, to}) {
		return Overlap
	}
	return anchorCrossings(c, circ.Center.X, circ.Center.X, ext, from, to)
}

func ellipseEdge(c Crossings, e Ellipse, from, to Point) Crossings {
	ext := e.BoundingBox()
	if c, ok := extentCrossings(c, ext, from, to); ok {
		return c
	}
	if e.IntersectsLine(Line{from, to}, true) {
		return Overlap
	}
	return anchorCrossings(c, e.Center.X, e.Center.X, ext, from, to)
}

func triangleEdge(c Crossings, t Triangle, from, to Point) Crossings {
	ext := t.BoundingBox()
	if c, ok := extentCrossings(c, ext, from, to); ok {
		return c
	}
	if t.IntersectsLine(Line{from, to}) {
		return Overlap
	}
	var top, bottom option[float64]
	for _, p := range [...]Point{t.P0, t.P1, t.P2} {
		if p.Y == ext.Y0 && (!bottom.isSet || p.X > bottom.value) {
			bottom.set(p.X)
		}
		if p.Y == ext.Y1 && (!top.isSet || p.X > top.value) {
			top.set(p.X)
		}
	}
	return anchorCrossings(c, bottom.unwrap(), top.unwrap(), ext, from, to)
}

func roundedRectEdge(c Crossings, r RoundedRect, from, to Point) Crossings {
	ext := r.BoundingBox()
	if c, ok := extentCrossings(c, ext, from, to); ok {
		return c
	}
	if r.IntersectsLine(Line{from, to}) {
		return Overlap
	}
	x := ext.X1 - r.Radii.X
	return anchorCrossings(c, x, x, ext, from, to)
}

func pathEdge(c Crossings, p *flatPath, from, to Point) Crossings {
	if !p.ok {
		return c
	}
	if c, ok := extentCrossings(c, p.Rect, from, to); ok {
		return c
	}
	edge := Line{from, to}
	for l := range p.edges() {
		if edge.Intersects(l) {
			return Overlap
		}
	}
	return anchorCrossings(c, p.xAtMinY, p.xAtMaxY, p.Rect, from, to)
}

// flatExtent is the extent of a flattened path, together with the rightmost
// vertex on its bottom and top edges.
type flatExtent struct {
	Rect
	xAtMinY float64
	xAtMaxY float64
	// ok is false for paths without any points.
	ok bool
}

func flatBounds(seq iter.Seq[PathElement]) flatExtent {
	var ext flatExtent
	for el := range seq {
		if el.Kind == ClosePathKind {
			continue
		}
		pt := el.P0
		if !ext.ok {
			ext = flatExtent{
				Rect:    Rect{pt.X, pt.Y, pt.X, pt.Y},
				xAtMinY: pt.X,
				xAtMaxY: pt.X,
				ok:      true,
			}
			continue
		}
		switch {
		case pt.Y < ext.Y0:
			ext.xAtMinY = pt.X
		case pt.Y == ext.Y0:
			ext.xAtMinY = max(ext.xAtMinY, pt.X)
		}
		switch {
		case pt.Y > ext.Y1:
			ext.xAtMaxY = pt.X
		case pt.Y == ext.Y1:
			ext.xAtMaxY = max(ext.xAtMaxY, pt.X)
		}
		ext.Rect = ext.UnionPoint(pt)
	}
	return ext
}

// flatPath is a flattened path with its extent.
type flatPath struct {
	seq iter.Seq[PathElement]
	flatExtent
}

func newFlatPath(seq iter.Seq[PathElement], opts CrossingOptions) *flatPath {
	flat := FlattenLimit(seq, opts.flatness(), opts.limit())
	return &flatPath{
		seq:        flat,
		flatExtent: flatBounds(flat),
	}
}

// edges returns the edges of the flattened path. Every subpath is closed.
// Each range over the result flattens the path anew.
func (p *flatPath) edges() iter.Seq[Line] {
	return polygonEdges(p.seq)
}

// polygonEdges returns the edges of a flattened path, closing every
// subpath.
func polygonEdges(seq iter.Seq[PathElement]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var start, cur Point
		open := false
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				if open && cur != start {
					if !yield(Line{cur, start}) {
						return
					}
				}
				start, cur = el.P0, el.P0
				open = false
			case LineToKind:
				if !yield(Line{cur, el.P0}) {
					return
				}
				cur = el.P0
				open = true
			case ClosePathKind:
				if cur != start {
					if !yield(Line{cur, start}) {
						return
					}
				}
				cur = start
				open = false
			default:
				panic(fmt.Sprintf("unexpected %s in flattened path", el.Kind))
			}
		}
		if open && cur != start {
			yield(Line{cur, start})
		}
	}
}

// outlineEdges returns the drawn edges of the flattened path. Unlike
// [flatPath.edges], open subpaths stay open.
func (p *flatPath) outlineEdges() iter.Seq[Line] {
	return drawnEdges(p.seq)
}

// drawnEdges returns the edges of a flattened path: one per LineTo, and one
// per ClosePath that doesn't end at the subpath's start already.
func drawnEdges(seq iter.Seq[PathElement]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var start, cur Point
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				start, cur = el.P0, el.P0
			case LineToKind:
				if !yield(Line{cur, el.P0}) {
					return
				}
				cur = el.P0
			case ClosePathKind:
				if cur != start {
					if !yield(Line{cur, start}) {
						return
					}
				}
				cur = start
			default:
				panic(fmt.Sprintf("unexpected %s in flattened path", el.Kind))
			}
		}
	}
}
