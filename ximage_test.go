package xform

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func TestAff3RoundTrip(t *testing.T) {
	m := All(1, 2, 3, 4, 5, 6, 0, 0, 1)
	a, ok := m.ToAff3()
	if !ok {
		t.Fatal("ToAff3() failed")
	}
	if want := (f64.Aff3{1, 2, 3, 4, 5, 6}); a != want {
		t.Errorf("ToAff3() = %v, want %v", a, want)
	}
	if back := FromAff3(a); !back.Equal(m) {
		t.Errorf("FromAff3() = %v, want %v", back, m)
	}

	a32, ok := m.ToAff3F32()
	if !ok || a32 != (f32.Aff3{1, 2, 3, 4, 5, 6}) {
		t.Errorf("ToAff3F32() = %v, %v", a32, ok)
	}

	persp := All(1, 0, 0, 0, 1, 0, 0.5, 0, 1)
	if _, ok := persp.ToAff3(); ok {
		t.Error("ToAff3() should fail with perspective")
	}
	if _, ok := persp.ToAff3F32(); ok {
		t.Error("ToAff3F32() should fail with perspective")
	}
}

func TestMat3RoundTrip(t *testing.T) {
	m := All(1, 0.2, 3, 0.1, 1.2, -2, 0.001, 0.002, 1)
	got := FromMat3(m.ToMat3())
	if !got.CheapEqual(m) {
		t.Errorf("FromMat3(ToMat3()) = %v, want %v", got, m)
	}
	if !got.HasPerspective() {
		t.Error("FromMat3 should classify perspective")
	}
}

func TestMapFixed(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   fixed.Point26_6
		want fixed.Point26_6
	}{
		{"identity", Identity(), fixed.P(2, 3), fixed.P(2, 3)},
		{"translate", Translate(1, 0.5), fixed.P(2, 3), fixed.Point26_6{X: 192, Y: 224}},
		{"scale", Scale(0.5, 2), fixed.Point26_6{X: 65, Y: 1}, fixed.Point26_6{X: 33, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MapFixed(tt.in); got != tt.want {
				t.Errorf("MapFixed(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformImageErrors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	tests := []struct {
		name string
		dst  xdraw.Image
		src  image.Image
		m    Matrix
		want error
	}{
		{"nil dst", nil, src, Identity(), ErrNilImage},
		{"nil src", dst, nil, Identity(), ErrNilImage},
		{"non-finite", dst, src, All(math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1), ErrNonFinite},
		{"perspective", dst, src, All(1, 0, 0, 0, 1, 0, 0.1, 0, 1), ErrPerspective},
		{"singular", dst, src, Scale(0, 1), ErrSingular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TransformImage(tt.dst, tt.m, tt.src, src.Bounds(), xdraw.Src, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("TransformImage() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTransformImageTranslates(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			src.SetRGBA(x, y, red)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	if err := TransformImage(dst, Translate(2, 2), src, src.Bounds(), xdraw.Src, xdraw.NearestNeighbor); err != nil {
		t.Fatalf("TransformImage() = %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			want := color.RGBA{}
			if x >= 2 && y >= 2 {
				want = red
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
