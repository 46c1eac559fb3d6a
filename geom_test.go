package xform

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 6)
	if got := q.Sub(p); got != Vec(3, 4) {
		t.Errorf("Sub = %v, want (3,4)", got)
	}
	if got := p.Add(Vec(3, 4)); got != q {
		t.Errorf("Add = %v, want %v", got, q)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}

	tests := []struct {
		name string
		t    float64
		want Point
	}{
		{"start", 0, p},
		{"middle", 0.5, Pt(2.5, 4)},
		{"end", 1, q},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Lerp(q, tt.t); !got.Approx(tt.want, 1e-12) {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}

	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(1)).IsFinite() || !p.IsFinite() {
		t.Error("Point.IsFinite misclassified")
	}
	if p.ToVector().ToPoint() != p {
		t.Error("ToVector/ToPoint should round trip")
	}
}

func TestVectorOps(t *testing.T) {
	tests := []struct {
		name   string
		v, w   Vector
		dot    float64
		cross  float64
		length float64
	}{
		{"axes", Vec(1, 0), Vec(0, 1), 0, 1, 1},
		{"3-4-5", Vec(3, 4), Vec(4, -3), 0, -25, 5},
		{"parallel", Vec(2, 2), Vec(1, 1), 4, 0, math.Sqrt(8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Dot(tt.w); got != tt.dot {
				t.Errorf("Dot = %v, want %v", got, tt.dot)
			}
			if got := tt.v.Cross(tt.w); got != tt.cross {
				t.Errorf("Cross = %v, want %v", got, tt.cross)
			}
			if got := tt.v.Length(); math.Abs(got-tt.length) > 1e-12 {
				t.Errorf("Length = %v, want %v", got, tt.length)
			}
			if got := tt.v.Add(tt.w).Sub(tt.w); !got.Approx(tt.v, 1e-12) {
				t.Errorf("Add/Sub = %v, want %v", got, tt.v)
			}
		})
	}

	v := Vec(3, -2)
	if v.Neg() != Vec(-3, 2) || v.Mul(2) != Vec(6, -4) || v.Perp() != Vec(2, 3) {
		t.Errorf("Neg/Mul/Perp wrong for %v", v)
	}
	if v.Dot(v.Perp()) != 0 {
		t.Error("Perp should be orthogonal")
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(1, 2, 3, 4)
	if r != RectLTRB(1, 2, 4, 6) {
		t.Fatalf("RectXYWH = %v", r)
	}
	if r.Width() != 3 || r.Height() != 4 {
		t.Errorf("size = %vx%v, want 3x4", r.Width(), r.Height())
	}
	if r.Center() != Pt(2.5, 4) {
		t.Errorf("Center = %v", r.Center())
	}

	empty := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", r, false},
		{"zero width", RectLTRB(1, 1, 1, 5), true},
		{"zero height", RectLTRB(1, 1, 5, 1), true},
		{"inverted", RectLTRB(5, 5, 1, 1), true},
		{"NaN", RectLTRB(math.NaN(), 0, 1, 1), true},
	}
	for _, tt := range empty {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := RectLTRB(5, 6, 1, 2).Sort(); got != RectLTRB(1, 2, 5, 6) {
		t.Errorf("Sort = %v", got)
	}
	if RectLTRB(0, 0, math.Inf(1), 1).IsFinite() || !r.IsFinite() {
		t.Error("Rect.IsFinite misclassified")
	}
}

func TestBoundsOf(t *testing.T) {
	if got := BoundsOf(nil); got != (Rect{}) {
		t.Errorf("BoundsOf(nil) = %v, want zero", got)
	}
	got := BoundsOf([]Point{{3, -1}, {-2, 4}, {0, 0}})
	if want := RectLTRB(-2, -1, 3, 4); got != want {
		t.Errorf("BoundsOf = %v, want %v", got, want)
	}
	if got := BoundsOf([]Point{{7, 8}}); got != RectLTRB(7, 8, 7, 8) || !got.IsEmpty() {
		t.Errorf("single point bounds = %v", got)
	}
}

func TestRSXformFromRadians(t *testing.T) {
	x := RSXformFromRadians(3, 0, 5, 6, 0, 0)
	if x != (RSXform{SCos: 3, SSin: 0, TX: 5, TY: 6}) {
		t.Errorf("RSXformFromRadians = %+v", x)
	}
}
