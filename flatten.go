package planar

import (
	"fmt"
	"iter"
)

const (
	// DefaultFlatness is the flatness used when callers don't specify one.
	DefaultFlatness = 0.1
	// DefaultFlatteningLimit is the default number of times a curve may be
	// halved. It bounds the work spent on degenerate control points.
	DefaultFlatteningLimit = 10
)

// arcErrorShare is the share of the flatness spent on approximating arcs
// with cubics. The rest goes to subdividing those cubics.
const arcErrorShare = 1.0 / 16

// Flatten flattens quadratic and cubic Béziers and elliptical arcs to lines,
// using [DefaultFlatteningLimit]. See [FlattenLimit].
func Flatten(seq iter.Seq[PathElement], flatness float64) iter.Seq[PathElement] {
	return FlattenLimit(seq, flatness, DefaultFlatteningLimit)
}

// FlattenLimit flattens quadratic and cubic Béziers and elliptical arcs to
// lines. The returned sequence contains only MoveTo, LineTo and ClosePath
// elements and, like seq, can be ranged over repeatedly.
//
// Curves are split at their midpoint until the distance of their control
// points from the chord is less than flatness, or until they have been split
// limit times. Unless the limit is hit, no point of the input curve is
// farther than flatness from the polyline.
//
// The sequence must start with a MoveTo.
func FlattenLimit(seq iter.Seq[PathElement], flatness float64, limit int) iter.Seq[PathElement] {
	if flatness < 0 {
		panic(fmt.Sprintf("negative flatness %g", flatness))
	}
	if limit < 0 {
		panic(fmt.Sprintf("negative flattening limit %d", limit))
	}
	return func(yield func(PathElement) bool) {
		f := flattener{
			limit:     limit,
			sqFlat:    flatness * flatness,
			sqArcFlat: (1 - arcErrorShare) * (1 - arcErrorShare) * flatness * flatness,
			arcTol:    arcErrorShare * flatness,
		}
		first := true
		var start, cur Point
		for el := range seq {
			if first {
				if el.Kind != MoveToKind {
					panic("missing initial MoveTo in path")
				}
				first = false
			}
			ok := true
			switch el.Kind {
			case MoveToKind:
				start, cur = el.P0, el.P0
				ok = yield(el)
			case LineToKind:
				cur = el.P0
				ok = yield(el)
			case QuadToKind:
				ok = f.quad(QuadBez{cur, el.P0, el.P1}, yield)
				cur = el.P1
			case CubicToKind:
				ok = f.cubic(CubicBez{cur, el.P0, el.P1, el.P2}, f.sqFlat, yield)
				cur = el.P2
			case ArcToKind:
				ok = f.arc(SVGArc{
					From:      cur,
					To:        el.P0,
					Radii:     el.Radii,
					XRotation: el.XRotation,
					LargeArc:  el.LargeArc,
					Sweep:     el.Sweep,
				}, yield)
				cur = el.P0
			case ClosePathKind:
				cur = start
				ok = yield(el)
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
			if !ok {
				return
			}
		}
	}
}

type pending[C any] struct {
	curve C
	level int
}

// flattener holds the scratch stacks of one traversal. The top of a stack is
// the next sub-curve in path order.
type flattener struct {
	limit     int
	sqFlat    float64
	sqArcFlat float64
	arcTol    float64

	quads  []pending[QuadBez]
	cubics []pending[CubicBez]
	arcs   []CubicBez
}

type bezier[C any] interface {
	SquaredFlatness() float64
	Subdivide() (C, C)
}

// subdivide emits the lines approximating c. It is the iterative form of
// recursive midpoint subdivision: each pending sub-curve carries its own
// depth, and the right half is pushed before the left so that lines come
// out in order.
func subdivide[C bezier[C]](
	stack []pending[C],
	c C,
	sqFlat float64,
	limit int,
	end func(C) Point,
	yield func(PathElement) bool,
) ([]pending[C], bool) {
	stack = append(stack[:0], pending[C]{c, 0})
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.level < limit && top.curve.SquaredFlatness() >= sqFlat {
			left, right := top.curve.Subdivide()
			stack = append(stack,
				pending[C]{right, top.level + 1},
				pending[C]{left, top.level + 1})
			continue
		}
		if !yield(LineTo(end(top.curve))) {
			return stack, false
		}
	}
	return stack, true
}

func (f *flattener) quad(q QuadBez, yield func(PathElement) bool) bool {
	var ok bool
	f.quads, ok = subdivide(f.quads, q, f.sqFlat, f.limit, func(q QuadBez) Point { return q.P2 }, yield)
	return ok
}

func (f *flattener) cubic(c CubicBez, sqFlat float64, yield func(PathElement) bool) bool {
	var ok bool
	f.cubics, ok = subdivide(f.cubics, c, sqFlat, f.limit, func(c CubicBez) Point { return c.P3 }, yield)
	return ok
}

func (f *flattener) arc(s SVGArc, yield func(PathElement) bool) bool {
	a, ok := s.Center()
	if !ok {
		if s.From == s.To {
			return true
		}
		return yield(LineTo(s.To))
	}

	f.arcs = s.appendCubics(f.arcs[:0], a, f.arcTol)
	if len(f.arcs) == 0 {
		return yield(LineTo(s.To))
	}
	for _, c := range f.arcs {
		if !f.cubic(c, f.sqArcFlat, yield) {
			return false
		}
	}
	return true
}
