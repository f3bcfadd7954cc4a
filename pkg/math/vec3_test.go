package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	if l := (Vec3{3, 4, 12}).Normalize().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero", got)
	}
}

func TestVec3Approach(t *testing.T) {
	got := Vec3{10, 0, -10}.Approach(Vec3{}, 0.5)
	want := Vec3{5, 0, -5}
	if got != want {
		t.Errorf("Approach() = %v, want %v", got, want)
	}
}

func TestVec3Near(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want bool
	}{
		{Vec3{1, 2, 3}, Vec3{1, 2, 3}, true},
		{Vec3{1, 2, 3}, Vec3{1.005, 1.995, 3.01}, true},
		{Vec3{1, 2, 3}, Vec3{1, 2, 3.02}, false},
		{Vec3{-1, 0, 0}, Vec3{1, 0, 0}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Near(tt.b, 0.01); got != tt.want {
			t.Errorf("%v.Near(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		x, lo, hi, want float32
	}{
		{5, 2, 20, 5},
		{-1, 2, 20, 2},
		{1e30, 2, 20, 20},
		{nan, 2, 20, 2},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFiniteScalar(t *testing.T) {
	if got := Finite(float32(math.Inf(1))); got != 0 {
		t.Errorf("Finite(+Inf) = %v, want 0", got)
	}
	if got := Finite(float32(math.NaN())); got != 0 {
		t.Errorf("Finite(NaN) = %v, want 0", got)
	}
	if got := Finite(3.5); got != 3.5 {
		t.Errorf("Finite(3.5) = %v, want 3.5", got)
	}
}
