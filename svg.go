package planar

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

type SVGOptions struct {
	// The maximum number of decimals with which to format coordinates. A
	// value of 0 chooses the shortest representation that round-trips.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

func (opts SVGOptions) point(pt Point) string {
	return opts.format(pt.X) + "," + opts.format(pt.Y)
}

// SVG converts a sequence of path elements to SVG path data.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG writes a sequence of path elements to w as SVG path data. Every
// element becomes one absolute command, separated by spaces. Arc rotations
// are written in degrees.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	sep := ""
	for el := range seq {
		var cmd string
		switch el.Kind {
		case MoveToKind:
			cmd = "M" + opts.point(el.P0)
		case LineToKind:
			cmd = "L" + opts.point(el.P0)
		case QuadToKind:
			cmd = "Q" + opts.point(el.P0) + " " + opts.point(el.P1)
		case CubicToKind:
			cmd = "C" + opts.point(el.P0) + " " + opts.point(el.P1) + " " + opts.point(el.P2)
		case ArcToKind:
			cmd = fmt.Sprintf("A%s %s %s %s",
				opts.point(Point(el.Radii)),
				opts.format(el.XRotation*180/math.Pi),
				flags(el.LargeArc, el.Sweep),
				opts.point(el.P0))
		case ClosePathKind:
			cmd = "Z"
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
		if _, err := io.WriteString(w, sep+cmd); err != nil {
			return err
		}
		sep = " "
	}
	return nil
}

func flags(largeArc, sweep bool) string {
	b := func(v bool) string {
		if v {
			return "1"
		}
		return "0"
	}
	return b(largeArc) + "," + b(sweep)
}
