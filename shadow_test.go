package planar

import (
	"math"
	"testing"
)

type edgeCase struct {
	name     string
	from, to Point
	want     Crossings
}

func testEdges(t *testing.T, s Shadow, cases []edgeCase) {
	t.Helper()
	for _, tt := range cases {
		if got := s.Edge(0, tt.from, tt.to); got != tt.want {
			t.Errorf("%s, %s: got %v, want %v", s.Kind(), tt.name, got, tt.want)
		}
		if tt.want != Overlap {
			// Reversing an edge negates its crossings.
			if got := s.Edge(0, tt.to, tt.from); got != -tt.want {
				t.Errorf("%s, %s reversed: got %v, want %v", s.Kind(), tt.name, got, -tt.want)
			}
		}
	}
}

func TestPointShadowEdge(t *testing.T) {
	testEdges(t, PointShadow(Pt(1, 1)), []edgeCase{
		{"right", Pt(3, 0), Pt(3, 3), 1},
		{"left", Pt(0, 0), Pt(0, 3), 0},
		{"above", Pt(0, 2), Pt(3, 3), 0},
		{"ends on point", Pt(0, 0), Pt(1, 1), Overlap},
	})
	// Only the end point of an edge is tested for touching; the start point
	// is the end point of the edge before.
	if got := PointShadow(Pt(1, 1)).Edge(0, Pt(1, 1), Pt(3, 3)); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestSegmentShadowEdge(t *testing.T) {
	testEdges(t, SegmentShadow(Line{Pt(1, 1), Pt(2, 2)}), []edgeCase{
		{"right", Pt(3, 0), Pt(3, 3), 2},
		{"left", Pt(0, 1), Pt(1, 3), 0},
		{"touching end", Pt(0, 2), Pt(2, 0), Overlap},
		{"crossing", Pt(1, 2), Pt(2, 1), Overlap},
		{"right of both ends", Pt(1.5, 0), Pt(2.5, 3), 2},
		{"above", Pt(0, 3), Pt(3, 3), 0},
	})
	// Orientation of the segment doesn't matter.
	testEdges(t, SegmentShadow(Line{Pt(2, 2), Pt(1, 1)}), []edgeCase{
		{"right of both ends", Pt(1.5, 0), Pt(2.5, 3), 2},
	})
}

func TestRectShadowEdge(t *testing.T) {
	cases := []edgeCase{
		{"right", Pt(3, 0), Pt(3, 3), 2},
		{"right, half height", Pt(3, 0), Pt(3, 1.5), 1},
		{"left", Pt(0, 0), Pt(0, 3), 0},
		{"below", Pt(0, 0), Pt(3, 1), 0},
		{"vertical through", Pt(1.5, 0), Pt(1.5, 3), Overlap},
		{"diagonal through", Pt(0, 0), Pt(3, 3), Overlap},
		{"diagonal past corner", Pt(1, 4), Pt(4, 1), -2},
		{"starts inside", Pt(1.5, 1.5), Pt(5, 5), Overlap},
		{"along right side", Pt(2, 0), Pt(2, 3), 2},
	}
	testEdges(t, RectShadow(Rect{1, 1, 2, 2}), cases)
	// Rectangles are normalized.
	testEdges(t, RectShadow(Rect{2, 2, 1, 1}), cases)
}

func TestCircleShadowEdge(t *testing.T) {
	testEdges(t, CircleShadow(Circle{Pt(0, 0), 1}), []edgeCase{
		{"right", Pt(2, -2), Pt(2, 2), 2},
		{"through", Pt(0.5, -2), Pt(0.5, 2), Overlap},
		{"past corner", Pt(0.8, 2), Pt(2, 0.8), -1},
		{"left", Pt(-2, -2), Pt(-2, 2), 0},
	})
}

func TestEllipseShadowEdge(t *testing.T) {
	testEdges(t, EllipseShadow(Ellipse{Pt(0, 0), Vec(2, 1)}), []edgeCase{
		{"right", Pt(2.5, -2), Pt(2.5, 2), 2},
		{"through", Pt(1.9, -2), Pt(1.9, 2), Overlap},
		{"past corner", Pt(1.5, 2), Pt(3, 0.5), -1},
		{"inside", Pt(-0.5, 0), Pt(0.5, 0.1), Overlap},
	})
}

func TestTriangleShadowEdge(t *testing.T) {
	testEdges(t, TriangleShadow(Triangle{Pt(0, 0), Pt(2, 0), Pt(1, 2)}), []edgeCase{
		{"right", Pt(3, -1), Pt(3, 3), 2},
		{"through", Pt(1, -1), Pt(1, 3), Overlap},
		{"past right side", Pt(1.8, 2.5), Pt(2.5, 0.5), -1},
		{"left", Pt(-1, -1), Pt(-1, 3), 0},
	})
}

func TestRoundedRectShadowEdge(t *testing.T) {
	testEdges(t, RoundedRectShadow(NewRoundedRect(Rect{0, 0, 4, 2}, Vec(1, 1))), []edgeCase{
		{"right", Pt(5, -1), Pt(5, 3), 2},
		{"through straight part", Pt(2, -1), Pt(2, 3), Overlap},
		{"through corner", Pt(3.5, -1), Pt(3.5, 3), Overlap},
		{"past corner", Pt(3.7, 2.5), Pt(4.5, 1.7), -1},
	})
}

func TestPathShadowEdge(t *testing.T) {
	s := PathShadow(square(1, 1, 2, 2).Elements(), CrossingOptions{})
	testEdges(t, s, []edgeCase{
		{"right", Pt(3, 0), Pt(3, 3), 2},
		{"through", Pt(1.5, 0), Pt(1.5, 3), Overlap},
		{"touching corner", Pt(1, 3), Pt(4, 0), Overlap},
		{"past corner", Pt(1, 4), Pt(4, 1), -2},
	})

	// Open subpaths are closed, so the triangle's missing edge counts.
	var open BezPath
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(2, 0))
	open.LineTo(Pt(0, 2))
	testEdges(t, PathShadow(open.Elements(), CrossingOptions{}), []edgeCase{
		{"through missing edge", Pt(-1, 1), Pt(0.5, 1), Overlap},
	})

	// An empty path never produces crossings.
	empty := PathShadow(BezPath(nil).Elements(), CrossingOptions{})
	if got := empty.Edge(0, Pt(3, 0), Pt(3, 3)); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestPathShadowCurves(t *testing.T) {
	c := Circle{Pt(5, 5), 2}
	s := PathShadow(c.PathElements(DefaultFlatness), CrossingOptions{Flatness: 0.01})
	if got := Accumulate(square(0, 0, 10, 10).Elements(), s, CrossingOptions{}); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
	if got := Accumulate(square(6, 0, 10, 10).Elements(), s, CrossingOptions{}); got != Overlap {
		t.Errorf("got %v, want Overlap", got)
	}
}

func TestParallelogram(t *testing.T) {
	diag := Vec(1, 1).Mul(1 / math.Sqrt2)
	p := NewParallelogram(Pt(0, 0), Vec(1, 0), 2, diag, math.Sqrt2)

	wantCorners := [4]Point{Pt(3, 1), Pt(-1, 1), Pt(-3, -1), Pt(1, -1)}
	for i, c := range p.Corners() {
		assertNear(t, wantCorners[i], c, 1e-12)
	}
	for _, pt := range []Point{Pt(0, 0), Pt(2.5, 0.9), Pt(-2.5, -0.9), Pt(0.5, -0.9)} {
		if !p.Contains(pt) {
			t.Errorf("%v isn't contained", pt)
		}
	}
	for _, pt := range []Point{Pt(-2.5, 0.9), Pt(0, 1.5), Pt(3, 0)} {
		if p.Contains(pt) {
			t.Errorf("%v is contained", pt)
		}
	}

	bbox := p.BoundingBox()
	diff(t, Rect{-3, -1, 3, 1}, bbox, approx)

	s := ParallelogramShadow(p)
	if !Intersects(square(-5, -5, 5, 5).Elements(), s, NonZero) {
		t.Error("enclosing square doesn't intersect")
	}
	if !Intersects(square(2, 0, 5, 5).Elements(), s, NonZero) {
		t.Error("overlapping square doesn't intersect")
	}
	// Inside the bounding box, but outside the parallelogram.
	if Intersects(square(-3, 0.5, -2.5, 0.9).Elements(), s, NonZero) {
		t.Error("square in the cut-off corner intersects")
	}
}

func TestNewParallelogramPanics(t *testing.T) {
	for _, f := range []func(){
		func() { NewParallelogram(Pt(0, 0), Vec(2, 0), 1, Vec(0, 1), 1) },
		func() { NewParallelogram(Pt(0, 0), Vec(1, 0), 1, Vec(-1, 0), 1) },
		func() { NewParallelogram(Pt(0, 0), Vec(1, 0), -1, Vec(0, 1), 1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("didn't panic")
				}
			}()
			f()
		}()
	}
}

func TestShadowBoundingBox(t *testing.T) {
	tests := []struct {
		shadow Shadow
		want   Rect
	}{
		{PointShadow(Pt(1, 2)), Rect{1, 2, 1, 2}},
		{SegmentShadow(Line{Pt(2, 2), Pt(1, 3)}), Rect{1, 2, 2, 3}},
		{RectShadow(Rect{2, 2, 1, 1}), Rect{1, 1, 2, 2}},
		{CircleShadow(Circle{Pt(1, 1), 2}), Rect{-1, -1, 3, 3}},
		{EllipseShadow(Ellipse{Pt(1, 1), Vec(2, 1)}), Rect{-1, 0, 3, 2}},
		{TriangleShadow(Triangle{Pt(0, 0), Pt(2, 0), Pt(1, 2)}), Rect{0, 0, 2, 2}},
		{RoundedRectShadow(NewRoundedRect(Rect{0, 0, 4, 2}, Vec(1, 1))), Rect{0, 0, 4, 2}},
		{PathShadow(square(1, 1, 2, 2).Elements(), CrossingOptions{}), Rect{1, 1, 2, 2}},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.shadow.BoundingBox())
	}
}

func TestFlatBounds(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 1))
	p.LineTo(Pt(3, 0))
	p.LineTo(Pt(1, 0))
	p.LineTo(Pt(5, 2))
	p.LineTo(Pt(2, 4))
	p.LineTo(Pt(4, 4))
	p.LineTo(Pt(-1, 4))
	p.ClosePath()

	want := flatExtent{
		Rect:    Rect{-1, 0, 5, 4},
		xAtMinY: 3,
		xAtMaxY: 4,
		ok:      true,
	}
	diff(t, want, flatBounds(p.Elements()), cmpFlatExtent)
	diff(t, flatExtent{}, flatBounds(BezPath(nil).Elements()), cmpFlatExtent)
}

func TestContainsRect(t *testing.T) {
	p := square(0, 0, 10, 10)
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{2, 2, 3, 3}, true},
		{Rect{3, 3, 2, 2}, true},
		{Rect{9, 9, 11, 11}, false},
		{Rect{20, 20, 21, 21}, false},
		{Rect{-1, -1, 11, 11}, false},
		{Rect{2, 2, 2, 3}, false},
	}
	for _, tt := range tests {
		if got := ContainsRect(p.Elements(), tt.r, NonZero); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.r, got, tt.want)
		}
	}

	// Open paths are closed automatically.
	var open BezPath
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	open.LineTo(Pt(0, 10))
	if !ContainsRect(open.Elements(), Rect{2, 2, 3, 3}, NonZero) {
		t.Error("open path doesn't contain rectangle")
	}

	// A square with a hole of the same orientation.
	ring := square(0, 0, 10, 10)
	ring = append(ring, square(3, 3, 7, 7)...)
	if !ContainsRect(ring.Elements(), Rect{4, 4, 5, 5}, NonZero) {
		t.Error("NonZero: hole isn't contained")
	}
}

func TestIntersects(t *testing.T) {
	p := square(0, 0, 10, 10)
	tests := []struct {
		name   string
		shadow Shadow
		want   bool
	}{
		{"rect inside", RectShadow(Rect{2, 2, 3, 3}), true},
		{"rect overlapping", RectShadow(Rect{9, 9, 11, 11}), true},
		{"rect outside", RectShadow(Rect{20, 20, 21, 21}), false},
		{"empty rect", RectShadow(Rect{2, 2, 2, 3}), false},
		{"point inside", PointShadow(Pt(5, 5)), true},
		{"point outside", PointShadow(Pt(15, 5)), false},
		{"circle enclosing path", CircleShadow(Circle{Pt(5, 5), 20}), true},
		{"circle crossing", CircleShadow(Circle{Pt(10, 5), 1}), true},
		{"ellipse inside", EllipseShadow(Ellipse{Pt(5, 5), Vec(2, 1)}), true},
	}
	for _, tt := range tests {
		if got := Intersects(p.Elements(), tt.shadow, NonZero); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}

	// Open paths only intersect what they touch.
	var open BezPath
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	open.LineTo(Pt(0, 10))
	if Intersects(open.Elements(), RectShadow(Rect{4, 4, 5, 5}), NonZero) {
		t.Error("open path intersects enclosed rectangle")
	}
	if !Intersects(open.Elements(), RectShadow(Rect{9, 4, 11, 5}), NonZero) {
		t.Error("open path doesn't intersect touched rectangle")
	}
	if !open.Intersects(RectShadow(Rect{9, 4, 11, 5}), EvenOdd) {
		t.Error("open path doesn't intersect touched rectangle")
	}
}

func TestIntersectsEvenOdd(t *testing.T) {
	ring := square(0, 0, 10, 10)
	ring = append(ring, square(3, 3, 7, 7)...)
	hole := RectShadow(Rect{4, 4, 5, 5})
	if !Intersects(ring.Elements(), hole, NonZero) {
		t.Error("NonZero: hole doesn't intersect")
	}
	// The rectangle shadow stops after the outer square, so it reports the
	// hole as covered even under EvenOdd.
	if !Intersects(ring.Elements(), hole, EvenOdd) {
		t.Error("EvenOdd: rectangle shadow doesn't intersect")
	}
	if Intersects(ring.Elements(), CircleShadow(Circle{Pt(5, 5), 0.5}), EvenOdd) {
		t.Error("EvenOdd: circle in hole intersects")
	}
	if !Intersects(ring.Elements(), CircleShadow(Circle{Pt(5, 5), 0.5}), NonZero) {
		t.Error("NonZero: circle in hole doesn't intersect")
	}
	if ContainsPoint(ring.Elements(), Pt(5, 5), EvenOdd) {
		t.Error("EvenOdd: point in hole is contained")
	}
	if !ring.Contains(Pt(5, 5)) {
		t.Error("NonZero: point in hole isn't contained")
	}
}

func TestIntersectsPath(t *testing.T) {
	big := square(0, 0, 10, 10)
	small := square(2, 2, 3, 3)
	far := square(20, 20, 21, 21)
	crossing := square(9, 9, 11, 11)

	tests := []struct {
		name string
		a, b BezPath
		want bool
	}{
		{"a encloses b", big, small, true},
		{"b encloses a", small, big, true},
		{"crossing", big, crossing, true},
		{"disjoint", big, far, false},
		{"disjoint reversed", far, big, false},
	}
	for _, tt := range tests {
		if got := IntersectsPath(tt.a.Elements(), tt.b.Elements(), NonZero); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	diff(t, "RoundedRectShadow", RoundedRectShadowKind.String())
	diff(t, "InvalidShadow", ShadowKind(0).String())
	diff(t, "EvenOdd", EvenOdd.String())
	diff(t, "AutoClose", AutoClose.String())
	diff(t, "Overlap", Overlap.String())
	diff(t, "-3", Crossings(-3).String())
}
