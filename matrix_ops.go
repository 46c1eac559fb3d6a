package xform

import "github.com/gogpu/xform/internal/scalar"

// Reset sets the matrix to identity.
func (m *Matrix) Reset() *Matrix {
	*m = Identity()
	return m
}

// SetIdentity is Reset under another name.
func (m *Matrix) SetIdentity() *Matrix {
	return m.Reset()
}

// SetTranslate sets the matrix to translate by (dx, dy).
func (m *Matrix) SetTranslate(dx, dy float64) *Matrix {
	m.mat = [9]float64{1, 0, dx, 0, 1, dy, 0, 0, 1}
	mask := typeRectStaysRect
	if dx != 0 || dy != 0 {
		mask |= TypeTranslate
	}
	m.setTypeMask(mask)
	return m
}

// SetScaleTranslate sets the matrix to scale by (sx, sy) and then translate by
// (tx, ty).
func (m *Matrix) SetScaleTranslate(sx, sy, tx, ty float64) *Matrix {
	m.mat = [9]float64{sx, 0, tx, 0, sy, ty, 0, 0, 1}
	var mask TypeMask
	if sx != 1 || sy != 1 {
		mask |= TypeScale
	}
	if tx != 0 || ty != 0 {
		mask |= TypeTranslate
	}
	if sx != 0 && sy != 0 {
		mask |= typeRectStaysRect
	}
	m.setTypeMask(mask)
	return m
}

// SetScale sets the matrix to scale by (sx, sy) about the origin.
func (m *Matrix) SetScale(sx, sy float64) *Matrix {
	return m.SetScaleTranslate(sx, sy, 0, 0)
}

// SetScalePivot sets the matrix to scale by (sx, sy) about pivot, which stays
// unchanged when mapped.
func (m *Matrix) SetScalePivot(sx, sy float64, pivot Point) *Matrix {
	if sx == 1 && sy == 1 {
		return m.Reset()
	}
	return m.SetScaleTranslate(sx, sy, pivot.X-sx*pivot.X, pivot.Y-sy*pivot.Y)
}

// SetSinCos sets the matrix to rotate by the angle whose sine and cosine are
// given, about the origin. The values need not be normalized; a scale is then
// folded into the rotation.
func (m *Matrix) SetSinCos(sin, cos float64) *Matrix {
	m.mat = [9]float64{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
	m.DirtyTypeCache()
	return m
}

// SetSinCosPivot is SetSinCos about pivot.
func (m *Matrix) SetSinCosPivot(sin, cos float64, pivot Point) *Matrix {
	oneMinusCos := 1 - cos
	m.mat = [9]float64{
		cos, -sin, scalar.Dot(sin, pivot.Y, oneMinusCos, pivot.X),
		sin, cos, scalar.Dot(-sin, pivot.X, oneMinusCos, pivot.Y),
		0, 0, 1,
	}
	m.DirtyTypeCache()
	return m
}

// SetRotate sets the matrix to rotate by degrees about the origin. Positive
// angles turn the x axis toward the y axis (clockwise on a y-down surface).
// Sines and cosines within Tolerance of zero are snapped to zero so quarter
// turns keep rectangles axis aligned.
func (m *Matrix) SetRotate(degrees float64) *Matrix {
	rad := scalar.DegreesToRadians(degrees)
	return m.SetSinCos(scalar.SinSnapToZero(rad), scalar.CosSnapToZero(rad))
}

// SetRotatePivot is SetRotate about pivot.
func (m *Matrix) SetRotatePivot(degrees float64, pivot Point) *Matrix {
	rad := scalar.DegreesToRadians(degrees)
	return m.SetSinCosPivot(scalar.SinSnapToZero(rad), scalar.CosSnapToZero(rad), pivot)
}

// SetSkew sets the matrix to skew by (kx, ky) about the origin.
func (m *Matrix) SetSkew(kx, ky float64) *Matrix {
	m.mat = [9]float64{1, kx, 0, ky, 1, 0, 0, 0, 1}
	m.DirtyTypeCache()
	return m
}

// SetSkewPivot is SetSkew about pivot.
func (m *Matrix) SetSkewPivot(kx, ky float64, pivot Point) *Matrix {
	m.mat = [9]float64{1, kx, -kx * pivot.Y, ky, 1, -ky * pivot.X, 0, 0, 1}
	m.DirtyTypeCache()
	return m
}

// SetRSXform sets the matrix to the rotation, scale and translation of x.
func (m *Matrix) SetRSXform(x RSXform) *Matrix {
	m.mat = [9]float64{x.SCos, -x.SSin, x.TX, x.SSin, x.SCos, x.TY, 0, 0, 1}
	m.DirtyTypeCache()
	return m
}

// SetAffine sets the matrix from six coefficients in AffineMember order,
// clearing perspective.
func (m *Matrix) SetAffine(affine [6]float64) *Matrix {
	m.mat = [9]float64{
		affine[AScaleX], affine[ASkewX], affine[ATransX],
		affine[ASkewY], affine[AScaleY], affine[ATransY],
		0, 0, 1,
	}
	m.DirtyTypeCache()
	return m
}

// ToAffine returns the six coefficients in AffineMember order. It fails when
// the matrix has perspective.
func (m Matrix) ToAffine() ([6]float64, bool) {
	if m.HasPerspective() {
		return [6]float64{}, false
	}
	var affine [6]float64
	for i, member := range affineToMember {
		affine[i] = m.mat[member]
	}
	return affine, true
}

// AffineIdentity returns the identity in AffineMember order.
func AffineIdentity() [6]float64 {
	return [6]float64{1, 0, 0, 1, 0, 0}
}

// SetConcat sets the matrix to a·b, which maps p to a(b(p)).
// Either argument may be a copy of the receiver.
func (m *Matrix) SetConcat(a, b Matrix) *Matrix {
	aType, bType := a.typeBits(), b.typeBits()

	switch {
	case aType&typePublicMask == TypeIdentity:
		*m = b
	case bType&typePublicMask == TypeIdentity:
		*m = a
	case (aType|bType)&(TypeAffine|TypePerspective) == 0:
		m.SetScaleTranslate(
			a.mat[MScaleX]*b.mat[MScaleX],
			a.mat[MScaleY]*b.mat[MScaleY],
			a.mat[MScaleX]*b.mat[MTransX]+a.mat[MTransX],
			a.mat[MScaleY]*b.mat[MTransY]+a.mat[MTransY],
		)
	case (aType|bType)&TypePerspective != 0:
		var r [9]float64
		for row := range 3 {
			for col := range 3 {
				r[row*3+col] = a.mat[row*3]*b.mat[col] +
					a.mat[row*3+1]*b.mat[3+col] +
					a.mat[row*3+2]*b.mat[6+col]
			}
		}
		m.mat = r
		m.DirtyTypeCache()
	default:
		x, y := &a.mat, &b.mat
		m.mat = [9]float64{
			scalar.Dot(x[MScaleX], y[MScaleX], x[MSkewX], y[MSkewY]),
			scalar.Dot(x[MScaleX], y[MSkewX], x[MSkewX], y[MScaleY]),
			scalar.Dot(x[MScaleX], y[MTransX], x[MSkewX], y[MTransY]) + x[MTransX],
			scalar.Dot(x[MSkewY], y[MScaleX], x[MScaleY], y[MSkewY]),
			scalar.Dot(x[MSkewY], y[MSkewX], x[MScaleY], y[MScaleY]),
			scalar.Dot(x[MSkewY], y[MTransX], x[MScaleY], y[MTransY]) + x[MTransY],
			0, 0, 1,
		}
		m.DirtyTypeCache()
	}
	return m
}

// PreConcat sets the matrix to m·other: other is applied first when mapping,
// so the new matrix maps p to old(other(p)).
func (m *Matrix) PreConcat(other Matrix) *Matrix {
	if other.IsIdentity() {
		return m
	}
	return m.SetConcat(*m, other)
}

// PostConcat sets the matrix to other·m: other is applied last when mapping,
// so the new matrix maps p to other(old(p)).
func (m *Matrix) PostConcat(other Matrix) *Matrix {
	if other.IsIdentity() {
		return m
	}
	return m.SetConcat(other, *m)
}

// PreTranslate applies a translation by (dx, dy) before the matrix.
func (m *Matrix) PreTranslate(dx, dy float64) *Matrix {
	mask := m.resolveType()
	switch {
	case mask&TypePerspective != 0:
		return m.PreConcat(Translate(dx, dy))
	case mask&typePublicMask <= TypeTranslate:
		m.mat[MTransX] += dx
		m.mat[MTransY] += dy
	default:
		m.mat[MTransX] += scalar.Dot(m.mat[MScaleX], dx, m.mat[MSkewX], dy)
		m.mat[MTransY] += scalar.Dot(m.mat[MSkewY], dx, m.mat[MScaleY], dy)
	}
	m.fixTranslateBit()
	return m
}

// PostTranslate applies a translation by (dx, dy) after the matrix.
func (m *Matrix) PostTranslate(dx, dy float64) *Matrix {
	if m.resolveType()&TypePerspective != 0 {
		return m.PostConcat(Translate(dx, dy))
	}
	m.mat[MTransX] += dx
	m.mat[MTransY] += dy
	m.fixTranslateBit()
	return m
}

// PreScale applies a scale by (sx, sy) about the origin before the matrix.
func (m *Matrix) PreScale(sx, sy float64) *Matrix {
	if sx == 1 && sy == 1 {
		return m
	}
	// Scaling the input scales the first two columns.
	m.mat[MScaleX] *= sx
	m.mat[MSkewY] *= sx
	m.mat[MPersp0] *= sx
	m.mat[MSkewX] *= sy
	m.mat[MScaleY] *= sy
	m.mat[MPersp1] *= sy
	m.DirtyTypeCache()
	return m
}

// PreScalePivot applies a scale by (sx, sy) about pivot before the matrix.
func (m *Matrix) PreScalePivot(sx, sy float64, pivot Point) *Matrix {
	if sx == 1 && sy == 1 {
		return m
	}
	var s Matrix
	return m.PreConcat(*s.SetScalePivot(sx, sy, pivot))
}

// PostScale applies a scale by (sx, sy) about the origin after the matrix.
func (m *Matrix) PostScale(sx, sy float64) *Matrix {
	if sx == 1 && sy == 1 {
		return m
	}
	return m.PostConcat(Scale(sx, sy))
}

// PostScalePivot applies a scale by (sx, sy) about pivot after the matrix.
func (m *Matrix) PostScalePivot(sx, sy float64, pivot Point) *Matrix {
	if sx == 1 && sy == 1 {
		return m
	}
	var s Matrix
	return m.PostConcat(*s.SetScalePivot(sx, sy, pivot))
}

// PostIDiv divides the first row by divX and the second by divY, mapping
// into a grid whose cells are divX by divY units. It fails and leaves the
// matrix unchanged if either divisor is zero.
func (m *Matrix) PostIDiv(divX, divY int) bool {
	if divX == 0 || divY == 0 {
		return false
	}
	dx, dy := float64(divX), float64(divY)
	m.mat[MScaleX] /= dx
	m.mat[MSkewX] /= dx
	m.mat[MTransX] /= dx
	m.mat[MSkewY] /= dy
	m.mat[MScaleY] /= dy
	m.mat[MTransY] /= dy
	m.DirtyTypeCache()
	return true
}

// PreRotate applies a rotation by degrees about the origin before the matrix.
func (m *Matrix) PreRotate(degrees float64) *Matrix {
	return m.PreConcat(RotateDeg(degrees))
}

// PreRotatePivot applies a rotation by degrees about pivot before the matrix.
func (m *Matrix) PreRotatePivot(degrees float64, pivot Point) *Matrix {
	var r Matrix
	return m.PreConcat(*r.SetRotatePivot(degrees, pivot))
}

// PostRotate applies a rotation by degrees about the origin after the matrix.
func (m *Matrix) PostRotate(degrees float64) *Matrix {
	return m.PostConcat(RotateDeg(degrees))
}

// PostRotatePivot applies a rotation by degrees about pivot after the matrix.
func (m *Matrix) PostRotatePivot(degrees float64, pivot Point) *Matrix {
	var r Matrix
	return m.PostConcat(*r.SetRotatePivot(degrees, pivot))
}

// PreSkew applies a skew by (kx, ky) about the origin before the matrix.
func (m *Matrix) PreSkew(kx, ky float64) *Matrix {
	return m.PreConcat(Skew(kx, ky))
}

// PreSkewPivot applies a skew by (kx, ky) about pivot before the matrix.
func (m *Matrix) PreSkewPivot(kx, ky float64, pivot Point) *Matrix {
	var k Matrix
	return m.PreConcat(*k.SetSkewPivot(kx, ky, pivot))
}

// PostSkew applies a skew by (kx, ky) about the origin after the matrix.
func (m *Matrix) PostSkew(kx, ky float64) *Matrix {
	return m.PostConcat(Skew(kx, ky))
}

// PostSkewPivot applies a skew by (kx, ky) about pivot after the matrix.
func (m *Matrix) PostSkewPivot(kx, ky float64, pivot Point) *Matrix {
	var k Matrix
	return m.PostConcat(*k.SetSkewPivot(kx, ky, pivot))
}
