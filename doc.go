// Package planar answers containment, intersection and closest-point
// queries between planar shapes and arbitrary curved paths.
//
// # Shadows and crossings
//
// All queries are built on one mechanism. A [Shadow] is a reference shape
// together with the rays extending from it toward +X. Walking a path's edges
// over a shadow with [Accumulate] yields a signed count of the times the
// path crosses those rays, as [Crossings]. Classified with a [WindingRule],
// the count tells whether the path winds around the shape. An edge that
// touches the shape itself turns the count into [Overlap], which ends the
// walk.
//
// Shadows exist for points, segments, rectangles, circles, ellipses,
// triangles, rounded rectangles, parallelograms and arbitrary paths. The
// [ClosestShadow] additionally tracks the closest pair of points between the
// walked path and its own outline, which makes [ClosestPoints] a single walk
// as well.
//
// Curves are flattened to lines before they are walked. See [Flatten].
//
// # Paths
//
// Paths are sequences of [PathElement]: MoveTo, LineTo, quadratic and cubic
// Béziers, SVG-style elliptical arcs and ClosePath. Functions accept them as
// iter.Seq[PathElement], and every range over such a sequence must start a
// new traversal from the beginning. [BezPath] stores a path as a slice, and
// every [Shape] can express its outline as a path.
//
// Coordinates are y-up: turning from +X toward +Y is counterclockwise.
//
// # Literature
//
//   - [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid] by David Eberly
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [SVG implementation notes on elliptical arcs]
//
// [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid]: https://www.geometrictools.com/Documentation/DistancePointEllipseEllipsoid.pdf
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package planar
