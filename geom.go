package planar

import (
	"fmt"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PointFromVec converts a vector of the geom module to a point.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec converts the point to a vector of the geom module.
func (pt Point) Vec() vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

// RectFromGeom converts a rectangle of the geom module.
func RectFromGeom(r rect.Rect) Rect {
	return Rect{X0: r.LLx, Y0: r.LLy, X1: r.URx, Y1: r.URy}.Abs()
}

// Geom converts the rectangle to one of the geom module.
func (r Rect) Geom() rect.Rect {
	r = r.Abs()
	return rect.Rect{LLx: r.X0, LLy: r.Y0, URx: r.X1, URy: r.Y1}
}

// FromGeomPath converts a path of the geom module.
func FromGeomPath(p path.Path) BezPath {
	var out BezPath
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			out.MoveTo(PointFromVec(pts[0]))
		case path.CmdLineTo:
			out.LineTo(PointFromVec(pts[0]))
		case path.CmdQuadTo:
			out.QuadTo(PointFromVec(pts[0]), PointFromVec(pts[1]))
		case path.CmdCubeTo:
			out.CubicTo(PointFromVec(pts[0]), PointFromVec(pts[1]), PointFromVec(pts[2]))
		case path.CmdClose:
			out.ClosePath()
		default:
			panic(fmt.Sprintf("unhandled case %v", cmd))
		}
	}
	return out
}

// GeomData converts the path to the geom module's representation. The geom
// module has no arcs, so they are approximated by cubics within
// [DefaultFlatness].
func (p BezPath) GeomData() *path.Data {
	d := &path.Data{}
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			d.MoveTo(el.P0.Vec())
			start, cur = el.P0, el.P0
		case LineToKind:
			d.LineTo(el.P0.Vec())
			cur = el.P0
		case QuadToKind:
			d.QuadTo(el.P0.Vec(), el.P1.Vec())
			cur = el.P1
		case CubicToKind:
			d.CubeTo(el.P0.Vec(), el.P1.Vec(), el.P2.Vec())
			cur = el.P2
		case ArcToKind:
			s := SVGArc{
				From:      cur,
				To:        el.P0,
				Radii:     el.Radii,
				XRotation: el.XRotation,
				LargeArc:  el.LargeArc,
				Sweep:     el.Sweep,
			}
			var cubics []CubicBez
			if a, ok := s.Center(); ok {
				cubics = s.appendCubics(nil, a, DefaultFlatness)
			}
			for _, c := range cubics {
				d.CubeTo(c.P1.Vec(), c.P2.Vec(), c.P3.Vec())
			}
			if len(cubics) == 0 && s.From != s.To {
				d.LineTo(s.To.Vec())
			}
			cur = el.P0
		case ClosePathKind:
			d.Close()
			cur = start
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return d
}
