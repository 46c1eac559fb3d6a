package xform

import (
	"math"

	"github.com/gogpu/xform/internal/scalar"
)

// invertTolerance is the smallest |determinant| Invert accepts.
const invertTolerance = Tolerance * Tolerance * Tolerance

// Invert returns the inverse matrix. It fails when the determinant is within
// (1/4096)³ of zero or when the inverse would not be finite.
func (m Matrix) Invert() (Matrix, bool) {
	mask := m.Type()
	if mask == TypeIdentity {
		return Identity(), true
	}

	a := &m.mat
	if mask&(TypeAffine|TypePerspective) == 0 {
		if mask&TypeScale == 0 {
			return Translate(-a[MTransX], -a[MTransY]), true
		}
		if a[MScaleX] == 0 || a[MScaleY] == 0 {
			return Matrix{}, false
		}
		invX, invY := 1/a[MScaleX], 1/a[MScaleY]
		var inv Matrix
		inv.SetScaleTranslate(invX, invY, -a[MTransX]*invX, -a[MTransY]*invY)
		if !inv.IsFinite() {
			return Matrix{}, false
		}
		return inv, true
	}

	persp := mask&TypePerspective != 0
	det := m.determinant(persp)
	if scalar.NearlyZeroTol(det, invertTolerance) || !scalar.IsFinite(det) {
		return Matrix{}, false
	}
	invDet := 1 / det

	var inv Matrix
	if persp {
		inv.mat = [9]float64{
			scalar.Cross(a[MScaleY], a[MPersp2], a[MTransY], a[MPersp1]) * invDet,
			scalar.Cross(a[MTransX], a[MPersp1], a[MSkewX], a[MPersp2]) * invDet,
			scalar.Cross(a[MSkewX], a[MTransY], a[MTransX], a[MScaleY]) * invDet,
			scalar.Cross(a[MTransY], a[MPersp0], a[MSkewY], a[MPersp2]) * invDet,
			scalar.Cross(a[MScaleX], a[MPersp2], a[MTransX], a[MPersp0]) * invDet,
			scalar.Cross(a[MTransX], a[MSkewY], a[MScaleX], a[MTransY]) * invDet,
			scalar.Cross(a[MSkewY], a[MPersp1], a[MScaleY], a[MPersp0]) * invDet,
			scalar.Cross(a[MSkewX], a[MPersp0], a[MScaleX], a[MPersp1]) * invDet,
			scalar.Cross(a[MScaleX], a[MScaleY], a[MSkewX], a[MSkewY]) * invDet,
		}
	} else {
		inv.mat = [9]float64{
			a[MScaleY] * invDet,
			-a[MSkewX] * invDet,
			scalar.Cross(a[MSkewX], a[MTransY], a[MScaleY], a[MTransX]) * invDet,
			-a[MSkewY] * invDet,
			a[MScaleX] * invDet,
			scalar.Cross(a[MSkewY], a[MTransX], a[MScaleX], a[MTransY]) * invDet,
			0, 0, 1,
		}
	}
	inv.DirtyTypeCache()
	if !inv.IsFinite() {
		return Matrix{}, false
	}
	return inv, true
}

// DecomposeScale factors the matrix as remaining·scale, where scale is the
// returned Size and remaining carries rotation, skew and translation. The
// scale factors are the lengths of the first two columns. It fails for
// perspective matrices and when either factor is nearly zero or not finite.
func (m Matrix) DecomposeScale() (Size, Matrix, bool) {
	if m.HasPerspective() {
		return Size{}, Matrix{}, false
	}
	sx := math.Hypot(m.mat[MScaleX], m.mat[MSkewY])
	sy := math.Hypot(m.mat[MSkewX], m.mat[MScaleY])
	if !scalar.IsFinite(sx, sy) || scalar.NearlyZero(sx) || scalar.NearlyZero(sy) {
		return Size{}, Matrix{}, false
	}
	remaining := m
	remaining.PreScale(1/sx, 1/sy)
	return Size{Width: sx, Height: sy}, remaining, true
}

// MinMaxScales returns the smallest and largest factors by which the matrix
// stretches any unit vector (the singular values of the linear part). It
// fails for perspective matrices and when the result is not finite.
func (m Matrix) MinMaxScales() (minScale, maxScale float64, ok bool) {
	mask := m.Type()
	if mask&TypePerspective != 0 {
		return -1, -1, false
	}
	if mask&^TypeTranslate == 0 {
		return 1, 1, true
	}

	a := &m.mat
	if mask&TypeAffine == 0 {
		lo, hi := math.Abs(a[MScaleX]), math.Abs(a[MScaleY])
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}

	// Eigenvalues of MᵀM for the 2x2 linear part.
	p := scalar.Dot(a[MScaleX], a[MScaleX], a[MSkewY], a[MSkewY])
	q := scalar.Dot(a[MScaleX], a[MSkewX], a[MScaleY], a[MSkewY])
	r := scalar.Dot(a[MSkewX], a[MSkewX], a[MScaleY], a[MScaleY])

	var lo, hi float64
	if q*q <= Tolerance*Tolerance {
		lo, hi = math.Min(p, r), math.Max(p, r)
	} else {
		half := scalar.Half(p + r)
		x := scalar.Half(math.Sqrt((p-r)*(p-r) + 4*q*q))
		lo, hi = half-x, half+x
	}
	if !scalar.IsFinite(lo, hi) {
		return -1, -1, false
	}
	// Rounding can push the smaller eigenvalue slightly negative.
	lo = math.Max(lo, 0)
	return math.Sqrt(lo), math.Sqrt(hi), true
}

// MinScale returns the smaller factor of MinMaxScales, or -1 when it fails.
func (m Matrix) MinScale() float64 {
	lo, _, ok := m.MinMaxScales()
	if !ok {
		return -1
	}
	return lo
}

// MaxScale returns the larger factor of MinMaxScales, or -1 when it fails.
func (m Matrix) MaxScale() float64 {
	_, hi, ok := m.MinMaxScales()
	if !ok {
		return -1
	}
	return hi
}

// SetRectToRect sets the matrix to the scale and translation mapping src
// onto dst according to fit.
//
// With Fill each axis scales independently. Start, Center and End scale both
// axes by the smaller of the two ratios and place the result at the start,
// centre or end of dst along the axis with slack.
//
// When src is empty the matrix is reset to identity and false is returned.
// When dst is empty the matrix becomes the all-zero scale (every point maps
// to the origin) and true is returned.
func (m *Matrix) SetRectToRect(src, dst Rect, fit ScaleToFit) bool {
	if src.IsEmpty() {
		Logger().Debug("xform: rect-to-rect source is empty",
			"left", src.Left, "top", src.Top, "right", src.Right, "bottom", src.Bottom)
		m.Reset()
		return false
	}
	if dst.IsEmpty() {
		m.SetScaleTranslate(0, 0, 0, 0)
		return true
	}

	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	xLarger := false
	if fit != Fill {
		if sx > sy {
			xLarger = true
			sx = sy
		} else {
			sy = sx
		}
	}

	tx := dst.Left - src.Left*sx
	ty := dst.Top - src.Top*sy
	if fit == Center || fit == End {
		var diff float64
		if xLarger {
			diff = dst.Width() - src.Width()*sy
		} else {
			diff = dst.Height() - src.Height()*sy
		}
		if fit == Center {
			diff = scalar.Half(diff)
		}
		if xLarger {
			tx += diff
		} else {
			ty += diff
		}
	}
	m.SetScaleTranslate(sx, sy, tx, ty)
	return true
}

// RectToRect returns the matrix produced by SetRectToRect, failing when src
// is empty.
func RectToRect(src, dst Rect, fit ScaleToFit) (Matrix, bool) {
	var m Matrix
	if !m.SetRectToRect(src, dst, fit) {
		return Matrix{}, false
	}
	return m, true
}

// SetPolyToPoly sets the matrix to map src[i] onto dst[i] for up to four
// point pairs:
//
//   - 0 pairs: identity.
//   - 1 pair: translation.
//   - 2 pairs: rotation, uniform scale and translation.
//   - 3 pairs: affine.
//   - 4 pairs: perspective.
//
// It fails, leaving the matrix unchanged, when the slices differ in length,
// hold more than four points, or either polygon is degenerate (coincident
// points for two pairs, collinear points otherwise).
func (m *Matrix) SetPolyToPoly(src, dst []Point) bool {
	if len(src) != len(dst) || len(src) > 4 {
		return false
	}
	switch len(src) {
	case 0:
		m.Reset()
		return true
	case 1:
		m.SetTranslate(dst[0].X-src[0].X, dst[0].Y-src[0].Y)
		return true
	}

	fromUnitSrc, ok := unitToPoly(src)
	if !ok {
		Logger().Debug("xform: poly-to-poly source is degenerate", "points", len(src))
		return false
	}
	toUnit, ok := fromUnitSrc.Invert()
	if !ok {
		Logger().Debug("xform: poly-to-poly source is singular", "points", len(src))
		return false
	}
	fromUnitDst, ok := unitToPoly(dst)
	if ok {
		_, ok = fromUnitDst.Invert()
	}
	if !ok {
		Logger().Debug("xform: poly-to-poly destination is singular", "points", len(dst))
		return false
	}

	m.SetConcat(fromUnitDst, toUnit)
	return true
}

// PolyToPoly returns the matrix produced by SetPolyToPoly.
func PolyToPoly(src, dst []Point) (Matrix, bool) {
	m := Identity()
	if !m.SetPolyToPoly(src, dst) {
		return Matrix{}, false
	}
	return m, true
}

// unitToPoly returns the matrix mapping a canonical frame onto pts:
// for two points (0,0)→p0 and (1,0)→p1 with a perpendicular y axis; for
// three points (0,0)→p0, (1,0)→p1, (0,1)→p2; for four points the unit square
// (0,0),(1,0),(1,1),(0,1) onto p0..p3.
func unitToPoly(pts []Point) (Matrix, bool) {
	p0 := pts[0]
	switch len(pts) {
	case 2:
		d := pts[1].Sub(p0)
		if d.X == 0 && d.Y == 0 {
			return Matrix{}, false
		}
		return All(d.X, -d.Y, p0.X, d.Y, d.X, p0.Y, 0, 0, 1), true
	case 3:
		u, v := pts[1].Sub(p0), pts[2].Sub(p0)
		return All(u.X, v.X, p0.X, u.Y, v.Y, p0.Y, 0, 0, 1), true
	}

	p1, p2, p3 := pts[1], pts[2], pts[3]
	dx3 := p0.X - p1.X + p2.X - p3.X
	dy3 := p0.Y - p1.Y + p2.Y - p3.Y
	if dx3 == 0 && dy3 == 0 {
		// Parallelogram: no perspective needed.
		return All(p1.X-p0.X, p3.X-p0.X, p0.X, p1.Y-p0.Y, p3.Y-p0.Y, p0.Y, 0, 0, 1), true
	}

	dx1, dx2 := p1.X-p2.X, p3.X-p2.X
	dy1, dy2 := p1.Y-p2.Y, p3.Y-p2.Y
	denom := scalar.Cross(dx1, dy2, dx2, dy1)
	if denom == 0 {
		return Matrix{}, false
	}
	g := scalar.Cross(dx3, dy2, dx2, dy3) / denom
	h := scalar.Cross(dx1, dy3, dx3, dy1) / denom
	u := All(
		p1.X-p0.X+g*p1.X, p3.X-p0.X+h*p3.X, p0.X,
		p1.Y-p0.Y+g*p1.Y, p3.Y-p0.Y+h*p3.Y, p0.Y,
		g, h, 1,
	)
	return u, u.IsFinite()
}
