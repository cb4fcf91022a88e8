package shape

import "testing"

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != (Point{4, 6}) {
		t.Errorf("Add() = %v, want {4 6}", got)
	}
	if got := p.Sub(q); got != (Point{2, 2}) {
		t.Errorf("Sub() = %v, want {2 2}", got)
	}
	if got := p.Mul(2); got != (Point{6, 8}) {
		t.Errorf("Mul() = %v, want {6 8}", got)
	}
	if got := p.Dot(q); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
	if got := p.Cross(q); got != 2 {
		t.Errorf("Cross() = %v, want 2", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := p.Lerp(q, 0.5); got != (Point{2, 3}) {
		t.Errorf("Lerp() = %v, want {2 3}", got)
	}
}

func TestPoint3(t *testing.T) {
	if got := Pt3(1, 2, 3); got != (Point3{1, 2, 3}) {
		t.Errorf("Pt3() = %v", got)
	}
}
