package planar

import (
	"iter"
	"math"
)

// Shape describes the planar shapes known to this package. Every shape can be
// walked as a path, which makes any shape usable as the outer path of a
// crossing computation or as a [PathShadow].
type Shape interface {
	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape's outline.
	//
	// The tolerance parameter controls the accuracy of conversion of
	// geometric primitives to Bézier curves, as some curves such as circles
	// cannot be represented exactly but only approximated.
	PathElements(tolerance float64) iter.Seq[PathElement]
}

// ClosedShape is a [Shape] with an interior.
type ClosedShape interface {
	Shape
	Contains(pt Point) bool
}

var (
	_ ClosedShape = Rect{}
	_ ClosedShape = RoundedRect{}
	_ ClosedShape = Circle{}
	_ ClosedShape = Ellipse{}
	_ ClosedShape = Triangle{}
	_ ClosedShape = Parallelogram{}
	_ Shape       = Line{}
	_ Shape       = BezPath{}
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it will return the root ignoring the
// quadratic term. In the degenerate case where all coefficients are zero, so
// that all values of x satisfy the equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}

func (opt *option[T]) unwrap() T {
	if !opt.isSet {
		panic("option isn't set")
	}
	return opt.value
}
