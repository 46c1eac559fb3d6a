package xform

import (
	"errors"
	"fmt"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrPerspective is returned when an affine-only consumer receives a
	// matrix with perspective.
	ErrPerspective = errors.New("xform: matrix has perspective")

	// ErrNonFinite is returned when a matrix contains NaN or infinite
	// coefficients.
	ErrNonFinite = errors.New("xform: matrix is not finite")

	// ErrSingular is returned when an operation needs an invertible matrix.
	ErrSingular = errors.New("xform: matrix is not invertible")

	// ErrNilImage is returned when a source or destination image is nil.
	ErrNilImage = errors.New("xform: nil image")
)

// ToAff3 returns the matrix as an x/image affine transform, which shares the
// row-major [ScaleX SkewX TransX SkewY ScaleY TransY] layout. It fails when
// the matrix has perspective.
func (m Matrix) ToAff3() (f64.Aff3, bool) {
	if m.HasPerspective() {
		return f64.Aff3{}, false
	}
	var a f64.Aff3
	copy(a[:], m.mat[:6])
	return a, true
}

// FromAff3 creates a matrix from an x/image affine transform.
func FromAff3(a f64.Aff3) Matrix {
	return All(a[0], a[1], a[2], a[3], a[4], a[5], 0, 0, 1)
}

// ToAff3F32 is ToAff3 narrowed to float32.
func (m Matrix) ToAff3F32() (f32.Aff3, bool) {
	a, ok := m.ToAff3()
	if !ok {
		return f32.Aff3{}, false
	}
	var r f32.Aff3
	for i, v := range a {
		r[i] = float32(v)
	}
	return r, true
}

// ToMat3 returns all nine coefficients as an x/image row-major 3x3 matrix.
func (m Matrix) ToMat3() f64.Mat3 {
	return f64.Mat3(m.mat)
}

// FromMat3 creates a matrix from an x/image row-major 3x3 matrix.
func FromMat3(a f64.Mat3) Matrix {
	var m Matrix
	m.Set9(a)
	return m
}

// MapFixed maps a 26.6 fixed-point position, as used for glyph origins,
// rounding the result to the nearest 1/64.
func (m Matrix) MapFixed(p fixed.Point26_6) fixed.Point26_6 {
	q := m.MapXY(float64(p.X)/64, float64(p.Y)/64)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(q.X * 64)),
		Y: fixed.Int26_6(math.Round(q.Y * 64)),
	}
}

// TransformImage resamples the sr region of src into dst through m, which
// maps source coordinates to destination coordinates. A nil transformer
// selects xdraw.BiLinear.
//
// Perspective matrices are rejected with ErrPerspective because x/image only
// resamples affine transforms; non-finite and singular matrices are rejected
// as well.
func TransformImage(dst xdraw.Image, m Matrix, src image.Image, sr image.Rectangle, op xdraw.Op, t xdraw.Transformer) error {
	if dst == nil || src == nil {
		return ErrNilImage
	}
	if !m.IsFinite() {
		return ErrNonFinite
	}
	aff, ok := m.ToAff3()
	if !ok {
		return fmt.Errorf("xform: transform image: %w", ErrPerspective)
	}
	if _, ok := m.Invert(); !ok {
		return fmt.Errorf("xform: transform image: %w", ErrSingular)
	}
	if t == nil {
		t = xdraw.BiLinear
	}

	Logger().Debug("xform: transform image",
		"src", sr, "dst", dst.Bounds(), "matrix", m.String())
	t.Transform(dst, aff, src, sr, op, nil)
	return nil
}
