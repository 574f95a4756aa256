package curve

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// Tolerance is the maximum distance the emitted polyline may deviate
	// from the curve. A value of 0 or less means [DefaultTolerance].
	Tolerance float64
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a curve to a string of SVG path commands, flattening it within
// the tolerance and projecting it onto the plane.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func SVG(c Curve, pl Plane, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, c, pl, opts)
	return sb.String()
}

// WriteSVG converts a curve to a string of SVG path commands and writes it to
// w. The curve is flattened within the tolerance and projected onto the
// plane; a closed curve ends in a close-path command.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, c Curve, pl Plane, opts SVGOptions) error {
	if c == nil {
		panic("curve: WriteSVG called with nil curve")
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(s, "0")
		}
	}
	pts, _ := c.Flattened(tol)
	closed := c.IsClosed()
	if closed {
		pts = pts[:len(pts)-1]
	}
	for i, pt := range pts {
		p := pl.uv(pt)
		if i == 0 {
			writef("M%s,%s", format(p.X), format(p.Y))
		} else {
			writef(" L%s,%s", format(p.X), format(p.Y))
		}
	}
	if closed {
		writef(" Z")
	}
	return err
}
