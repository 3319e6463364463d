package planar

import (
	"testing"
)

func TestRectNormalization(t *testing.T) {
	r := Rect{10, 20, 0, 0}
	if w, h := r.Width(), r.Height(); w != -10 || h != -20 {
		t.Errorf("got size %v×%v, want -10×-20", w, h)
	}
	if !r.IsEmpty() {
		t.Error("flipped rectangle isn't empty")
	}
	diff(t, Rect{0, 0, 10, 20}, r.Abs())
	diff(t, Rect{0, 0, 10, 20}, NewRectFromPoints(Pt(10, 0), Pt(0, 20)))
	diff(t, Rect{0, 0, 10, 20}, r.BoundingBox())
	if got := (Rect{0, 0, 0, 5}).IsEmpty(); !got {
		t.Error("zero-width rectangle isn't empty")
	}
	if r.MinX() != 0 || r.MaxX() != 10 || r.MinY() != 0 || r.MaxY() != 20 {
		t.Errorf("wrong extrema for %v", r)
	}
}

func TestNewRectFromCenter(t *testing.T) {
	diff(t, Rect{-1, 1, 3, 5}, NewRectFromCenter(Pt(1, 3), 2, 2))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative extents")
		}
	}()
	NewRectFromCenter(Pt(0, 0), -1, 1)
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},
		{Pt(0, 5), true},
		{Pt(10, 5), false},
		{Pt(5, 10), false},
		{Pt(-1, 5), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 1, 1}
	diff(t, Rect{0, -2, 5, 1}, a.Union(Rect{3, -2, 5, 0}))
	diff(t, Rect{-1, 0, 1, 4}, a.UnionPoint(Pt(-1, 4)))

	// A succession of UnionPoint calls yields the enclosing rectangle.
	r := NewRectFromPoints(Pt(3, 3), Pt(3, 3))
	for _, pt := range []Point{Pt(1, 5), Pt(4, 2), Pt(2, 2)} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{1, 2, 4, 5}, r)
}

func TestRectInsetTranslate(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	diff(t, Rect{2, 2, 8, 8}, r.Inset(2))
	diff(t, Rect{-1, -1, 11, 11}, r.Inset(-1))
	diff(t, Rect{1, -2, 11, 8}, r.Translate(Vec(1, -2)))
	diff(t, Pt(5, 5), r.Center())
}

func TestRectEllipse(t *testing.T) {
	diff(t, Ellipse{Center: Pt(2, 3), Radii: Vec(2, 1)}, Rect{4, 4, 0, 2}.Ellipse())
}

func TestRectClipLine(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		name string
		rect Rect
		in   Line
		want Line
		ok   bool
	}{
		{"through", r, Line{Pt(-5, 5), Pt(15, 5)}, Line{Pt(0, 5), Pt(10, 5)}, true},
		{"flipped rect", Rect{10, 10, 0, 0}, Line{Pt(-5, 5), Pt(15, 5)}, Line{Pt(0, 5), Pt(10, 5)}, true},
		{"inside", r, Line{Pt(1, 1), Pt(2, 2)}, Line{Pt(1, 1), Pt(2, 2)}, true},
		{"outside", r, Line{Pt(20, 20), Pt(30, 30)}, Line{}, false},
		{"parallel outside", r, Line{Pt(-1, -5), Pt(-1, 15)}, Line{}, false},
		{"touches corner", r, Line{Pt(-5, 5), Pt(5, -5)}, Line{Pt(0, 0), Pt(0, 0)}, true},
		{"ends inside", r, Line{Pt(5, 5), Pt(5, 20)}, Line{Pt(5, 5), Pt(5, 10)}, true},
	}
	for _, tt := range tests {
		got, ok := tt.rect.ClipLine(tt.in)
		if ok != tt.ok {
			t.Errorf("%s: got %t, want %t", tt.name, ok, tt.ok)
			continue
		}
		diff(t, tt.want, got, approx)
	}
}

func TestRectPath(t *testing.T) {
	center := Pt(5, 5)
	if c := Accumulate(Rect{0, 0, 10, 10}.PathElements(0), PointShadow(center), CrossingOptions{}); c != 1 {
		t.Errorf("got crossings %v, want 1", c)
	}
	if c := Accumulate(Rect{0, 10, 10, 0}.PathElements(0), PointShadow(center), CrossingOptions{}); c != -1 {
		t.Errorf("got crossings %v for flipped rectangle, want -1", c)
	}
}

func TestRoundedRectClamping(t *testing.T) {
	got := NewRoundedRect(Rect{10, 10, 0, 0}, Vec(20, 3))
	diff(t, RoundedRect{Rect: Rect{0, 0, 10, 10}, Radii: Vec(5, 3)}, got)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative radius")
		}
	}()
	NewRoundedRect(Rect{0, 0, 1, 1}, Vec(-1, 0))
}

func TestRoundedRectContains(t *testing.T) {
	rr := NewRoundedRect(Rect{-5, -5, 10, 20}, Vec(5, 5))
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-5, 0), true},   // left edge
		{Pt(0, 20), true},   // top edge
		{Pt(6, 16), true},   // inside the top-right corner ellipse
		{Pt(9.5, 19.5), false},
		{Pt(10, 20), false}, // top-right corner
		{Pt(-5, 20), false}, // top-left corner
		{Pt(-10, 0), false},
	}
	for _, tt := range tests {
		if got := rr.Contains(tt.pt); got != tt.want {
			t.Errorf("%v: got %t, want %t", tt.pt, got, tt.want)
		}
		if got := ContainsPoint(rr.PathElements(0.1), tt.pt, NonZero); got != tt.want && tt.pt.X != -5 && tt.pt.Y != 20 {
			t.Errorf("%v: path contains is %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRoundedRectPath(t *testing.T) {
	// Zero radii give the plain rectangle.
	r := Rect{0, 0, 10, 4}
	diff(t, r.Path(), collect(RoundedRect{Rect: r}.PathElements(0.1)))

	rr := NewRoundedRect(Rect{-5, -5, 10, 20}, Vec(5, 5))
	p := collect(rr.PathElements(1e-9))
	if c := Accumulate(p.Elements(), PointShadow(Pt(0, 0)), CrossingOptions{}); c != 1 {
		t.Errorf("got crossings %v, want 1", c)
	}
	if !p.IsClosed() {
		t.Error("outline isn't closed")
	}
	diff(t, Rect{-5, -5, 10, 20}, p.ControlBox(), approx)
}

func TestRoundedRectIntersectsLine(t *testing.T) {
	rr := NewRoundedRect(Rect{-5, -5, 10, 20}, Vec(5, 5))
	tests := []struct {
		name string
		l    Line
		want bool
	}{
		{"through", Line{Pt(-10, 0), Pt(20, 0)}, true},
		{"along side", Line{Pt(-5, -10), Pt(-5, 30)}, false},
		{"outside", Line{Pt(20, 20), Pt(30, 30)}, false},
		{"misses corner", Line{Pt(7, 22.5), Pt(12, 17.5)}, false},
		{"cuts corner", Line{Pt(5, 22), Pt(12, 15)}, true},
		{"through corner point", Line{Pt(8, 22), Pt(12, 18)}, false},
		{"inside", Line{Pt(0, 0), Pt(1, 1)}, true},
	}
	for _, tt := range tests {
		if got := rr.IntersectsLine(tt.l); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}
