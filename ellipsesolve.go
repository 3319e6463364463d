package planar

import "math"

// The nearest and farthest points of an ellipse are found by bisection on
// the Lagrange multiplier, following David Eberly, "Distance from a Point to
// an Ellipse, an Ellipsoid, or a Hyperellipsoid".
//
// The canonical configuration has the ellipse centered at the origin with
// radii e0 ≥ e1 along x and y, and the query point (y0, y1) in the first
// quadrant.

// maxEllipseIterations bounds the bisection. Halving an interval of float64s
// can't take more steps than there are binary exponents.
const maxEllipseIterations = 1074

// canonicalSolver returns the solution (x0, x1) with non-negative
// coordinates. If opposite is true, the solution lies in the quadrant
// opposite to the query point, i.e. its signs are flipped.
type canonicalSolver func(e0, e1, y0, y1 float64) (x0, x1 float64, opposite bool)

// nearestRoot finds the root of
//
//	(r0·z0/(s+r0))² + (z1/(s+1))² − 1
//
// g is the function's value at s = 0.
func nearestRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	s1 := 0.0
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	var s float64
	for range maxEllipseIterations {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}

func nearestCanonical(e0, e1, y0, y1 float64) (float64, float64, bool) {
	if e1 == 0 {
		// The ellipse has collapsed onto the segment from (−e0, 0) to (e0, 0).
		return min(y0, e0), 0, false
	}
	if y1 > 0 {
		if y0 > 0 {
			z0 := y0 / e0
			z1 := y1 / e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				return y0, y1, false
			}
			r0 := (e0 / e1) * (e0 / e1)
			sbar := nearestRoot(r0, z0, z1, g)
			return r0 * y0 / (sbar + r0), y1 / (sbar + 1), false
		}
		return 0, e1, false
	}

	numer0 := e0 * y0
	denom0 := e0*e0 - e1*e1
	if numer0 < denom0 {
		xde0 := numer0 / denom0
		return e0 * xde0, e1 * math.Sqrt(1-xde0*xde0), false
	}
	return e0, 0, false
}

// farthestRoot finds the root of
//
//	(r0·z0/(s−r0))² + (z1/(s−1))² − 1
//
// for s > r0, where the function is decreasing.
func farthestRoot(r0, z0, z1 float64) float64 {
	n0 := r0 * z0
	s0 := r0
	s1 := r0 + math.Hypot(n0, z1)
	var s float64
	for range maxEllipseIterations {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s - r0)
		ratio1 := z1 / (s - 1)
		g := ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}

// farthestCanonical solves for the farthest point, which always lies in the
// quadrant opposite to the query point.
func farthestCanonical(e0, e1, y0, y1 float64) (float64, float64, bool) {
	if e1 == 0 {
		return e0, 0, true
	}
	if y0 > 0 {
		if y1 > 0 {
			r0 := (e0 / e1) * (e0 / e1)
			s := farthestRoot(r0, y0/e0, y1/e1)
			return r0 * y0 / (s - r0), y1 / (s - 1), true
		}
		return e0, 0, true
	}

	// The point is on the minor axis. The farthest point is off-axis if the
	// ellipse is wide enough.
	if e0 > e1 {
		x1 := y1 * e1 * e1 / (e0*e0 - e1*e1)
		if x1 <= e1 {
			u := x1 / e1
			return e0 * math.Sqrt(1-u*u), x1, true
		}
	}
	return 0, e1, true
}
