package planar

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0.5))
	p.QuadTo(Pt(15, 5), Pt(10, 10))
	p.CubicTo(Pt(7, 12), Pt(3, 12), Pt(0, 10))
	p.ArcTo(Vec(5, 3), math.Pi/2, true, false, Pt(-1, -2))
	p.ClosePath()

	want := "M0,0 L10,0.5 Q15,5 10,10 C7,12 3,12 0,10 A5,3 90 1,0 -1,-2 Z"
	opts := SVGOptions{MaxPrecision: 6}
	diff(t, want, p.SVG(opts))
	diff(t, want, SVG(p.Elements(), opts))
}

func TestSVGPrecision(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(1.0/3, -0.0001)),
		LineTo(Pt(2, 1.26)),
	}
	tests := []struct {
		precision int
		want      string
	}{
		{0, "M0.3333333333333333,-0.0001 L2,1.26"},
		{2, "M0.33,0 L2,1.26"},
		{1, "M0.3,0 L2,1.3"},
		{4, "M0.3333,-0.0001 L2,1.26"},
	}
	for _, tt := range tests {
		diff(t, tt.want, p.SVG(SVGOptions{MaxPrecision: tt.precision}))
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("write failed")
	}
	w.n--
	return len(b), nil
}

func TestWriteSVG(t *testing.T) {
	p := square(0, 0, 1, 1)

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	diff(t, "M0,0 L1,0 L1,1 L0,1 Z", sb.String())

	if err := p.WriteSVG(&failingWriter{n: 2}, SVGOptions{}); err == nil {
		t.Error("got no error")
	}
}
