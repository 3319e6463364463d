package planar

import (
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	approx        = cmpopts.EquateApprox(0, 1e-9)
	cmpFlatExtent = cmp.AllowUnexported(flatExtent{})
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, want, got Point, epsilon float64) {
	t.Helper()
	if d := want.Distance(got); d > epsilon || math.IsNaN(d) {
		t.Errorf("got %v, want %v (distance %g > %g)", got, want, d, epsilon)
	}
}

func collect(seq iter.Seq[PathElement]) BezPath {
	return BezPath(slices.Collect(seq))
}

func square(x0, y0, x1, y1 float64) BezPath {
	return Rect{x0, y0, x1, y1}.Path()
}

// randomPolygon returns a closed polygon with n vertices in [0, size)².
// It may intersect itself.
func randomPolygon(rng *rand.Rand, n int, size float64) BezPath {
	var p BezPath
	p.MoveTo(Pt(rng.Float64()*size, rng.Float64()*size))
	for range n - 1 {
		p.LineTo(Pt(rng.Float64()*size, rng.Float64()*size))
	}
	p.ClosePath()
	return p
}

// referenceWinding computes the winding number of a flattened path around pt
// by summing the angles its edges subtend.
func referenceWinding(seq BezPath, pt Point) int {
	total := 0.0
	for l := range polygonEdges(seq.Flatten(DefaultFlatness)) {
		a := l.P0.Sub(pt)
		b := l.P1.Sub(pt)
		total += math.Atan2(a.Cross(b), a.Dot(b))
	}
	return int(math.Round(total / (2 * math.Pi)))
}
