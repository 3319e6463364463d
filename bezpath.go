package planar

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ArcToKind:
		return "ArcTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is the element of a path.
//
// A valid path has MoveTo at the beginning of each subpath. The start point
// of a drawing element is the end point of the element before it.
//
// P0 holds the end point of MoveTo, LineTo and ArcTo. QuadTo holds its
// control point in P0 and its end point in P1, CubicTo its control points in
// P0 and P1 and its end point in P2. Radii, XRotation, LargeArc and Sweep
// are only used by ArcTo and follow the SVG arc command.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point

	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

func (el PathElement) String() string {
	if el.Kind == ArcToKind {
		return fmt.Sprintf("ArcTo(%s, %s, %g, %t, %t)", el.P0, el.Radii, el.XRotation, el.LargeArc, el.Sweep)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// ArcTo returns an elliptical arc element ending at pt. The arguments have
// the meaning of the SVG arc command, except that xRotation is in radians.
func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) PathElement {
	return PathElement{
		Kind:      ArcToKind,
		P0:        pt,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// points returns the element's control and end points.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// BezPath is a path made of lines, Béziers and elliptical arcs.
type BezPath []PathElement

func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values([]PathElement(p))
}

// Pop removes and returns the last element in the path. If the path contains no more
// elements, false is returned.
func (p *BezPath) Pop() (PathElement, bool) {
	if len(*p) == 0 {
		return PathElement{}, false
	}
	el := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return el, true
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ArcTo pushes an elliptical arc onto the path. See [ArcTo].
func (p *BezPath) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) {
	p.Push(ArcTo(radii, xRotation, largeArc, sweep, pt))
}

func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements. Every range over the
// result starts a new traversal.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Truncate truncates the path, keeping the first n elements.
func (p *BezPath) Truncate(n int) {
	if n >= len(*p) {
		return
	}
	*p = (*p)[:n]
}

// Flatten flattens the path to a sequence of lines. See [Flatten] for details on the
// process.
func (p BezPath) Flatten(flatness float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), flatness)
}

// IsClosed reports whether every subpath of the path ends in a ClosePath or
// returns to its starting point.
func (p BezPath) IsClosed() bool { return isClosed(p.Elements()) }

func isClosed(seq iter.Seq[PathElement]) bool {
	var start, cur Point
	open := false
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			if open && cur != start {
				return false
			}
			start, cur = el.P0, el.P0
			open = false
		case ClosePathKind:
			cur = start
			open = false
		default:
			cur, _ = el.EndPoint()
			open = true
		}
	}
	return !open || cur == start
}

// endsAtStart reports whether the last subpath of seq finishes where it
// started, explicitly or not. Earlier subpaths aren't considered.
func endsAtStart(seq iter.Seq[PathElement]) bool {
	var start, cur Point
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			start, cur = el.P0, el.P0
		case ClosePathKind:
			cur = start
		default:
			cur, _ = el.EndPoint()
		}
	}
	return cur == start
}

func (p BezPath) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p BezPath) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// Unlike [BezPath.BoundingBox], this uses control points directly rather than
// flattening curve elements. Arc elements contribute only their end points.
func (p BezPath) ControlBox() Rect {
	var cbox option[Rect]
	for _, el := range p {
		for _, pt := range el.points() {
			if !cbox.isSet {
				cbox.set(NewRectFromPoints(pt, pt))
			} else {
				cbox.set(cbox.value.UnionPoint(pt))
			}
		}
	}
	return cbox.value
}

// BoundingBox returns the bounding box of the path's flattening with
// [DefaultFlatness].
func (p BezPath) BoundingBox() Rect {
	return flatBounds(Flatten(p.Elements(), DefaultFlatness)).Rect
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// ReverseSubpaths returns a new path with the direction of all subpaths
// reversed. Reversing a closed path negates its crossing counts.
func (p BezPath) ReverseSubpaths() BezPath {
	out := make(BezPath, 0, len(p))
	var start Point
	// Index of the current subpath's first drawing element.
	first := 0
	// A MoveTo that hasn't been followed by any drawing element yet.
	moved := false
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			if moved {
				out = append(out, MoveTo(start))
			} else if first < i {
				out = appendReversed(out, start, p[first:i])
			}
			start, first, moved = el.P0, i+1, true
		case ClosePathKind:
			out = appendReversed(out, start, p[first:i])
			out = append(out, ClosePath())
			first, moved = i+1, false
		default:
			moved = false
		}
	}
	if first < len(p) {
		out = appendReversed(out, start, p[first:])
	} else if moved {
		out = append(out, MoveTo(start))
	}
	return out
}

// appendReversed appends the reversal of the subpath that starts at start
// and continues with els. els must only contain drawing elements.
func appendReversed(out BezPath, start Point, els []PathElement) BezPath {
	// from returns the start point of els[i].
	from := func(i int) Point {
		if i == 0 {
			return start
		}
		pt, _ := els[i-1].EndPoint()
		return pt
	}
	out = append(out, MoveTo(from(len(els))))
	for i := len(els) - 1; i >= 0; i-- {
		el := els[i]
		to := from(i)
		switch el.Kind {
		case LineToKind:
			out = append(out, LineTo(to))
		case QuadToKind:
			out = append(out, QuadTo(el.P0, to))
		case CubicToKind:
			out = append(out, CubicTo(el.P1, el.P0, to))
		case ArcToKind:
			out = append(out, ArcTo(el.Radii, el.XRotation, el.LargeArc, !el.Sweep, to))
		default:
			panic(fmt.Sprintf("unexpected %s in subpath", el.Kind))
		}
	}
	return out
}
