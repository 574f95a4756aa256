package curve

import (
	"math"
	"testing"
)

// lineArcLine builds an open polycurve out of a line, a half circle, and a
// line, connected end to end with matching tangents: a U-turn around the
// center (0, 1, 0).
func lineArcLine(t *testing.T) *PolyCurve {
	t.Helper()
	pc := NewPolyCurve()
	if !pc.Append(NewLineCurve(Pt(-2, 0, 0), Pt(0, 0, 0))) {
		t.Fatal("expected the first segment to append")
	}
	arcPlane := NewPlaneFromFrame(Pt(0, 1, 0), V(1, 0, 0), V(0, 1, 0))
	if !pc.Append(NewArcCurve(arcPlane, 1, -0.5*math.Pi, 0.5*math.Pi)) {
		t.Fatal("expected the arc to append")
	}
	if !pc.Append(NewLineCurve(Pt(0, 2, 0), Pt(-2, 2, 0))) {
		t.Fatal("expected the last segment to append")
	}
	return pc
}

func TestPolyCurveAppend(t *testing.T) {
	pc := NewPolyCurve()
	if !pc.Append(NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 0))) {
		t.Fatal("expected appending to an empty polycurve to succeed")
	}
	if pc.Append(NewLineCurve(Pt(5, 0, 0), Pt(6, 0, 0))) {
		t.Error("expected appending a disconnected segment to fail")
	}
	diff(t, 1, pc.SegmentCount())
}

func TestPolyCurveEval(t *testing.T) {
	pc := lineArcLine(t)
	diff(t, 3, pc.SegmentCount())
	// 2 + π + 2 of stacked segment domains.
	diff(t, Interval{0, 4 + math.Pi}, pc.Domain())
	approxPt(t, Pt(-2, 0, 0), pc.StartPoint(), 1e-12)
	approxPt(t, Pt(-2, 2, 0), pc.EndPoint(), 1e-12)
	approx(t, 4+math.Pi, pc.Length(1e-9), 1e-9)

	approxPt(t, Pt(-1, 0, 0), mustPointAt(t, pc, 1), 1e-12)
	// Rightmost point of the U-turn, half the sweep past the first break.
	approxPt(t, Pt(1, 1, 0), mustPointAt(t, pc, 2+0.5*math.Pi), 1e-12)
	approxPt(t, Pt(-1, 2, 0), mustPointAt(t, pc, 3+math.Pi), 1e-12)
}

func TestPolyCurveContinuity(t *testing.T) {
	pc := lineArcLine(t)
	if !pc.IsContinuous(1e-9) {
		t.Error("expected the polycurve to be continuous")
	}
	// Tangents agree across the joints too.
	for _, u := range []float64{2, 2 + math.Pi} {
		before, ok0 := TangentAt(pc, u-1e-9)
		after, ok1 := TangentAt(pc, u+1e-9)
		if !ok0 || !ok1 {
			t.Fatalf("expected tangents on both sides of %v", u)
		}
		approx(t, 0, before.Sub(after).Hypot(), 1e-6)
	}
}

func TestPolyCurveReverse(t *testing.T) {
	checkReversal(t, lineArcLine(t))
}

func TestPolyCurveTrim(t *testing.T) {
	pc := lineArcLine(t)
	// Across all three segments.
	checkTrimCoincidence(t, pc, 1, 3+math.Pi)
	// Inside a single segment.
	checkTrimCoincidence(t, pc, 0.25, 1.75)

	trimmed, ok := pc.Trim(1, 3+math.Pi)
	if !ok {
		t.Fatal("expected the trim to succeed")
	}
	sub, ok := trimmed.(*PolyCurve)
	if !ok {
		t.Fatalf("got %T, expected a polycurve", trimmed)
	}
	diff(t, 3, sub.SegmentCount())
}

func TestPolyCurveSplit(t *testing.T) {
	pc := lineArcLine(t)
	below, above, ok := pc.Split(2 + 0.5*math.Pi)
	if !ok {
		t.Fatal("expected the split to succeed")
	}
	approxPt(t, Pt(1, 1, 0), below.EndPoint(), 1e-12)
	approxPt(t, Pt(1, 1, 0), above.StartPoint(), 1e-12)
	approx(t, pc.Length(1e-9), below.Length(1e-9)+above.Length(1e-9), 1e-6)
}

func TestPolyCurveExplode(t *testing.T) {
	pc := lineArcLine(t)
	segs := pc.Explode()
	diff(t, 3, len(segs))
	// Exploded segments are copies; mutating them leaves the original alone.
	segs[0].Reverse()
	approxPt(t, Pt(-2, 0, 0), pc.StartPoint(), 1e-12)
}

func TestPolyCurveClosed(t *testing.T) {
	pc := NewPolyCurve()
	pc.Append(NewLineCurve(Pt(0, 0, 0), Pt(1, 0, 0)))
	pc.Append(NewLineCurve(Pt(1, 0, 0), Pt(1, 1, 0)))
	pc.Append(NewLineCurve(Pt(1, 1, 0), Pt(0, 0, 0)))
	if !pc.IsClosed() {
		t.Error("expected the triangle to be closed")
	}
}

func TestPolyCurveFlattened(t *testing.T) {
	pc := lineArcLine(t)
	pts, params := pc.Flattened(1e-5)
	diff(t, len(pts), len(params))
	for i, pt := range pts {
		approxPt(t, mustPointAt(t, pc, params[i]), pt, 1e-9)
	}
	for i := 1; i < len(params); i++ {
		if params[i] <= params[i-1] {
			t.Fatalf("got non-increasing parameter %v after %v", params[i], params[i-1])
		}
	}
}
