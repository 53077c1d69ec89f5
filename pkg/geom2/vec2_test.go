package geom2

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}

	if got := a.Add(b); got != (Vec2{4, 6}) {
		t.Errorf("Add() = %v, want {4 6}", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 2}) {
		t.Errorf("Sub() = %v, want {2 2}", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
	if got := a.PerpDot(b); got != -2 {
		t.Errorf("PerpDot() = %v, want -2", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"unit length after normalize", Vec2{3, 4}, 1},
		{"zero vector stays zero", Vec2{0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Normalize().Length(); !FuzzyEqual(got, tt.want) {
				t.Errorf("Normalize().Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2FuzzyEqual(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{1 + 1e-7, 1 - 1e-7}
	if !a.FuzzyEqual(b) {
		t.Error("expected fuzzy-equal within default eps")
	}
	c := Vec2{1.1, 1}
	if a.FuzzyEqual(c) {
		t.Error("expected not fuzzy-equal")
	}
}
