package scalar

import (
	"math"
	"testing"
)

func TestNearlyZero(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"zero", 0, true},
		{"negative zero", math.Copysign(0, -1), true},
		{"at tolerance", NearlyZeroTolerance, true},
		{"negative at tolerance", -NearlyZeroTolerance, true},
		{"just above", NearlyZeroTolerance * 1.01, false},
		{"one", 1, false},
		{"NaN", math.NaN(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyZero(tt.x); got != tt.want {
				t.Errorf("NearlyZero(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestNearlyZeroTol(t *testing.T) {
	if !NearlyZeroTol(1e-12, 1e-11) {
		t.Error("1e-12 should be within 1e-11")
	}
	if NearlyZeroTol(1e-10, 1e-11) {
		t.Error("1e-10 should not be within 1e-11")
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1, 1+NearlyZeroTolerance/2) {
		t.Error("values half a tolerance apart should be nearly equal")
	}
	if NearlyEqual(1, 1.1) {
		t.Error("1 and 1.1 should not be nearly equal")
	}
}

func TestSnapToZero(t *testing.T) {
	tests := []struct {
		deg     float64
		sin     float64
		cos     float64
		exactly bool
	}{
		{0, 0, 1, true},
		{90, 1, 0, true},
		{180, 0, -1, true},
		{270, -1, 0, true},
		{30, 0.5, math.Sqrt(3) / 2, false},
	}
	for _, tt := range tests {
		rad := DegreesToRadians(tt.deg)
		s, c := SinSnapToZero(rad), CosSnapToZero(rad)
		if tt.exactly {
			if s != tt.sin || c != tt.cos {
				t.Errorf("deg %v: got sin=%v cos=%v, want exactly %v %v", tt.deg, s, c, tt.sin, tt.cos)
			}
			continue
		}
		if math.Abs(s-tt.sin) > 1e-12 || math.Abs(c-tt.cos) > 1e-12 {
			t.Errorf("deg %v: got sin=%v cos=%v, want %v %v", tt.deg, s, c, tt.sin, tt.cos)
		}
	}
}

func TestDotCross(t *testing.T) {
	if got := Dot(2, 3, 4, 5); got != 26 {
		t.Errorf("Dot = %v, want 26", got)
	}
	if got := Cross(2, 3, 4, 5); got != -14 {
		t.Errorf("Cross = %v, want -14", got)
	}
	if got := Half(3); got != 1.5 {
		t.Errorf("Half(3) = %v, want 1.5", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite() {
		t.Error("no values should be finite")
	}
	if !IsFinite(1, -2, math.MaxFloat64) {
		t.Error("ordinary values should be finite")
	}
	if IsFinite(1, math.NaN()) {
		t.Error("NaN is not finite")
	}
	if IsFinite(math.Inf(-1)) {
		t.Error("-Inf is not finite")
	}
}
