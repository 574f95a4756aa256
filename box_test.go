package curve

import (
	"math"
	"testing"
)

func TestBoxFromPoints(t *testing.T) {
	b := NewBoxFromPoints(Pt(1, 5, -2), Pt(-3, 2, 4), Pt(0, 0, 0))
	diff(t, Box{Min: Pt(-3, 0, -2), Max: Pt(1, 5, 4)}, b)
	if !b.IsValid() {
		t.Error("expected a valid box")
	}
	diff(t, Pt(-1, 2.5, 1), b.Center())
	diff(t, V(4, 5, 6), b.Diagonal())
}

func TestBoxUnion(t *testing.T) {
	a := NewBoxFromPoints(Pt(0, 0, 0), Pt(1, 1, 1))
	b := NewBoxFromPoints(Pt(2, -1, 0), Pt(3, 0, 2))
	diff(t, Box{Min: Pt(0, -1, 0), Max: Pt(3, 1, 2)}, a.Union(b))
}

func TestBoxContainsPoint(t *testing.T) {
	b := NewBoxFromPoints(Pt(0, 0, 0), Pt(2, 2, 2))
	if !b.ContainsPoint(Pt(1, 1, 1), 0) {
		t.Error("expected the box to contain its center")
	}
	if !b.ContainsPoint(Pt(2, 2, 2), 0) {
		t.Error("expected the box to contain its corner")
	}
	if b.ContainsPoint(Pt(2.1, 1, 1), 0) {
		t.Error("expected the box to exclude an outside point")
	}
	if !b.ContainsPoint(Pt(2.1, 1, 1), 0.2) {
		t.Error("expected the tolerance to admit a nearby point")
	}
}

func TestBoxInvalid(t *testing.T) {
	if (Box{Min: Pt(1, 0, 0), Max: Pt(0, 0, 0)}).IsValid() {
		t.Error("expected an inverted box to be invalid")
	}
	if (Box{Min: Pt(math.NaN(), 0, 0), Max: Pt(1, 1, 1)}).IsValid() {
		t.Error("expected a NaN box to be invalid")
	}
}
