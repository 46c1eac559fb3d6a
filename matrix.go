package xform

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/xform/internal/scalar"
)

// Tolerance is the default tolerance used by IsSimilarity and
// PreservesRightAngles, and by the nearly-zero checks inside the solvers.
const Tolerance = scalar.NearlyZeroTolerance

// Member names a slot of the 9-coefficient row-major layout:
//
//	| MScaleX  MSkewX   MTransX |
//	| MSkewY   MScaleY  MTransY |
//	| MPersp0  MPersp1  MPersp2 |
type Member int

const (
	MScaleX Member = iota // horizontal scale
	MSkewX                // horizontal skew
	MTransX               // horizontal translation
	MSkewY                // vertical skew
	MScaleY               // vertical scale
	MTransY               // vertical translation
	MPersp0               // input x perspective factor
	MPersp1               // input y perspective factor
	MPersp2               // perspective bias
)

// AffineMember names a slot of the 6-coefficient affine layout used by
// SetAffine and ToAffine. It is column-major and therefore NOT a prefix of
// the Member order:
//
//	| AScaleX  ASkewX  ATransX |
//	| ASkewY   AScaleY ATransY |
type AffineMember int

const (
	AScaleX AffineMember = iota // horizontal scale
	ASkewY                      // vertical skew
	ASkewX                      // horizontal skew
	AScaleY                     // vertical scale
	ATransX                     // horizontal translation
	ATransY                     // vertical translation
)

var affineToMember = [6]Member{MScaleX, MSkewY, MSkewX, MScaleY, MTransX, MTransY}

// Matrix is a 3x3 homogeneous 2D transformation. A point (x, y) maps to
//
//	x' = (ScaleX*x + SkewX*y + TransX) / w
//	y' = (SkewY*x  + ScaleY*y + TransY) / w
//	w  =  Persp0*x + Persp1*y + Persp2
//
// Matrix carries a cached TypeMask. The coefficients are unexported so every
// write goes through a method that either stores the new classification or
// marks the cache stale; stale caches are resolved on the next query.
//
// The zero Matrix has every coefficient zero (it is not the identity). Use
// Identity or I for an identity matrix.
//
// A Matrix is a plain value and is not internally synchronized: concurrent
// mutation of the same instance must be serialized by the caller.
type Matrix struct {
	mat      [9]float64
	typeMask TypeMask // typeKnown is set when the cache is valid
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		mat:      [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
		typeMask: typeKnown | typeRectStaysRect,
	}
}

// Translate creates a translation matrix.
func Translate(dx, dy float64) Matrix {
	var m Matrix
	m.SetTranslate(dx, dy)
	return m
}

// Scale creates a scaling matrix about the origin.
func Scale(sx, sy float64) Matrix {
	var m Matrix
	m.SetScale(sx, sy)
	return m
}

// RotateDeg creates a rotation matrix. Positive degrees rotate clockwise on a
// y-down surface.
func RotateDeg(degrees float64) Matrix {
	var m Matrix
	m.SetRotate(degrees)
	return m
}

// RotateRad creates a rotation matrix from an angle in radians.
func RotateRad(radians float64) Matrix {
	return RotateDeg(radians * 180 / math.Pi)
}

// Skew creates a skew matrix about the origin.
func Skew(kx, ky float64) Matrix {
	var m Matrix
	m.SetSkew(kx, ky)
	return m
}

// All creates a matrix from all nine coefficients in Member order.
func All(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2 float64) Matrix {
	var m Matrix
	m.SetAll(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2)
	return m
}

// FromAffine creates a matrix from six coefficients in AffineMember order.
func FromAffine(affine [6]float64) Matrix {
	var m Matrix
	m.SetAffine(affine)
	return m
}

// FromRSXform creates the matrix equivalent of an RSXform.
func FromRSXform(x RSXform) Matrix {
	var m Matrix
	m.SetRSXform(x)
	return m
}

// Concat returns a·b: the result maps p to a(b(p)).
func Concat(a, b Matrix) Matrix {
	var m Matrix
	m.SetConcat(a, b)
	return m
}

var (
	sharedIdentity = sync.OnceValue(Identity)
	sharedInvalid  = sync.OnceValue(func() Matrix {
		var m Matrix
		for i := range m.mat {
			m.mat[i] = math.MaxFloat64
		}
		m.typeMask = typeKnown | typePublicMask
		return m
	})
)

// I returns the shared identity matrix. It is built once on first use and is
// safe to call from any goroutine; the caller receives its own copy.
func I() Matrix {
	return sharedIdentity()
}

// InvalidMatrix returns a shared sentinel whose coefficients are all
// math.MaxFloat64. It never equals a matrix produced by ordinary operations.
func InvalidMatrix() Matrix {
	return sharedInvalid()
}

// computeType classifies the coefficients from scratch.
func (m *Matrix) computeType() TypeMask {
	if m.mat[MPersp0] != 0 || m.mat[MPersp1] != 0 || m.mat[MPersp2] != 1 {
		// Perspective subsumes every other category; rectangles never stay
		// rectangles under it.
		return typePublicMask
	}

	var mask TypeMask
	if m.mat[MTransX] != 0 || m.mat[MTransY] != 0 {
		mask |= TypeTranslate
	}

	sx, kx := m.mat[MScaleX], m.mat[MSkewX]
	ky, sy := m.mat[MSkewY], m.mat[MScaleY]
	if kx != 0 || ky != 0 {
		mask |= TypeAffine | TypeScale
		// Quarter turns swap axes but keep rectangles axis aligned.
		if sx == 0 && sy == 0 && kx != 0 && ky != 0 {
			mask |= typeRectStaysRect
		}
	} else {
		if sx != 1 || sy != 1 {
			mask |= TypeScale
		}
		if sx != 0 && sy != 0 {
			mask |= typeRectStaysRect
		}
	}
	return mask
}

// typeBits returns the classification including internal bits, computing it
// when the cache is stale. It does not store the result.
func (m Matrix) typeBits() TypeMask {
	if m.typeMask&typeKnown != 0 {
		return m.typeMask &^ typeKnown
	}
	return m.computeType()
}

// resolveType is typeBits for mutators: a stale cache is refreshed in place.
func (m *Matrix) resolveType() TypeMask {
	if m.typeMask&typeKnown == 0 {
		m.typeMask = m.computeType() | typeKnown
	}
	return m.typeMask &^ typeKnown
}

func (m *Matrix) setTypeMask(mask TypeMask) {
	m.typeMask = mask | typeKnown
}

// DirtyTypeCache marks the cached classification stale. Methods already keep
// the cache consistent; this exists for callers that build a Matrix through
// unsafe reinterpretation of its memory.
func (m *Matrix) DirtyTypeCache() {
	m.typeMask = 0
}

// fixTranslateBit updates TypeTranslate after a change to the translation
// only. The cache must be valid.
func (m *Matrix) fixTranslateBit() {
	mask := m.typeMask &^ TypeTranslate
	if m.mat[MTransX] != 0 || m.mat[MTransY] != 0 {
		mask |= TypeTranslate
	}
	m.typeMask = mask
}

// Type returns the structural classification of the matrix.
func (m Matrix) Type() TypeMask {
	return m.typeBits() & typePublicMask
}

// IsIdentity returns true if the matrix maps every point to itself.
func (m Matrix) IsIdentity() bool {
	return m.Type() == TypeIdentity
}

// IsScaleTranslate returns true if the matrix has no skew or perspective.
func (m Matrix) IsScaleTranslate() bool {
	return m.Type()&^(TypeScale|TypeTranslate) == 0
}

// IsTranslate returns true if the matrix is identity or a pure translation.
func (m Matrix) IsTranslate() bool {
	return m.Type()&^TypeTranslate == 0
}

// HasPerspective returns true if the bottom row differs from (0, 0, 1).
func (m Matrix) HasPerspective() bool {
	return m.Type()&TypePerspective != 0
}

// RectStaysRect returns true if the matrix maps every axis-aligned rectangle
// to another axis-aligned rectangle: a non-degenerate scale and translate,
// optionally combined with a quarter-turn rotation or mirror.
func (m Matrix) RectStaysRect() bool {
	return m.typeBits()&typeRectStaysRect != 0
}

// PreservesAxisAlignment is RectStaysRect under another name.
func (m Matrix) PreservesAxisAlignment() bool {
	return m.RectStaysRect()
}

func isDegenerate2x2(scaleX, skewX, skewY, scaleY float64) bool {
	return scalar.NearlyZeroTol(scalar.Cross(scaleX, scaleY, skewX, skewY), Tolerance*Tolerance)
}

// IsSimilarity returns true if the matrix only rotates, uniformly scales,
// reflects and translates. Coefficients are compared within tol.
func (m Matrix) IsSimilarity(tol float64) bool {
	mask := m.Type()
	if mask <= TypeTranslate {
		return true
	}
	if mask&TypePerspective != 0 {
		return false
	}

	mx, my := m.mat[MScaleX], m.mat[MScaleY]
	if mask&TypeAffine == 0 {
		return !scalar.NearlyZero(mx) && math.Abs(math.Abs(mx)-math.Abs(my)) <= tol
	}
	sx, sy := m.mat[MSkewX], m.mat[MSkewY]
	if isDegenerate2x2(mx, sx, sy, my) {
		return false
	}

	// Basis vectors must be 90 degree rotations of each other.
	near := func(a, b float64) bool { return math.Abs(a-b) <= tol }
	return (near(mx, my) && near(sx, -sy)) || (near(mx, -my) && near(sx, sy))
}

// PreservesRightAngles returns true if perpendicular vectors stay
// perpendicular after mapping, allowing non-uniform scale.
func (m Matrix) PreservesRightAngles(tol float64) bool {
	mask := m.Type()
	if mask <= TypeTranslate {
		return true
	}
	if mask&TypePerspective != 0 {
		return false
	}

	mx, my := m.mat[MScaleX], m.mat[MScaleY]
	sx, sy := m.mat[MSkewX], m.mat[MSkewY]
	if isDegenerate2x2(mx, sx, sy, my) {
		return false
	}
	col0 := Vector{X: mx, Y: sy}
	col1 := Vector{X: sx, Y: my}
	return scalar.NearlyZeroTol(col0.Dot(col1), tol*tol)
}

// At returns the coefficient at slot i. It panics if i is out of range.
func (m Matrix) At(i Member) float64 {
	return m.mat[i]
}

// Set writes the coefficient at slot i and marks the type cache stale.
func (m *Matrix) Set(i Member, v float64) *Matrix {
	m.mat[i] = v
	m.DirtyTypeCache()
	return m
}

// AffineAt returns the coefficient at affine slot i.
func (m Matrix) AffineAt(i AffineMember) float64 {
	return m.mat[affineToMember[i]]
}

// SetAffineAt writes the coefficient at affine slot i.
func (m *Matrix) SetAffineAt(i AffineMember, v float64) *Matrix {
	return m.Set(affineToMember[i], v)
}

func (m Matrix) ScaleX() float64     { return m.mat[MScaleX] }
func (m Matrix) ScaleY() float64     { return m.mat[MScaleY] }
func (m Matrix) SkewX() float64      { return m.mat[MSkewX] }
func (m Matrix) SkewY() float64      { return m.mat[MSkewY] }
func (m Matrix) TranslateX() float64 { return m.mat[MTransX] }
func (m Matrix) TranslateY() float64 { return m.mat[MTransY] }
func (m Matrix) PerspX() float64     { return m.mat[MPersp0] }
func (m Matrix) PerspY() float64     { return m.mat[MPersp1] }

func (m *Matrix) SetScaleX(v float64) *Matrix     { return m.Set(MScaleX, v) }
func (m *Matrix) SetScaleY(v float64) *Matrix     { return m.Set(MScaleY, v) }
func (m *Matrix) SetSkewX(v float64) *Matrix      { return m.Set(MSkewX, v) }
func (m *Matrix) SetSkewY(v float64) *Matrix      { return m.Set(MSkewY, v) }
func (m *Matrix) SetTranslateX(v float64) *Matrix { return m.Set(MTransX, v) }
func (m *Matrix) SetTranslateY(v float64) *Matrix { return m.Set(MTransY, v) }
func (m *Matrix) SetPerspX(v float64) *Matrix     { return m.Set(MPersp0, v) }
func (m *Matrix) SetPerspY(v float64) *Matrix     { return m.Set(MPersp1, v) }

// SetAll overwrites all nine coefficients in Member order.
func (m *Matrix) SetAll(scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2 float64) *Matrix {
	m.mat = [9]float64{scaleX, skewX, transX, skewY, scaleY, transY, persp0, persp1, persp2}
	m.DirtyTypeCache()
	return m
}

// Get9 returns the nine coefficients in Member order.
func (m Matrix) Get9() [9]float64 {
	return m.mat
}

// Set9 overwrites the nine coefficients from Member order.
func (m *Matrix) Set9(v [9]float64) *Matrix {
	m.mat = v
	m.DirtyTypeCache()
	return m
}

// Determinant returns the determinant of the full 3x3 matrix. Without
// perspective this is the determinant of the 2x2 linear part.
// A determinant of zero means the matrix is not invertible.
// A negative determinant means the transformation flips orientation.
func (m Matrix) Determinant() float64 {
	return m.determinant(m.HasPerspective())
}

func (m *Matrix) determinant(persp bool) float64 {
	a := &m.mat
	if persp {
		return a[MScaleX]*scalar.Cross(a[MScaleY], a[MPersp2], a[MTransY], a[MPersp1]) +
			a[MSkewX]*scalar.Cross(a[MTransY], a[MPersp0], a[MSkewY], a[MPersp2]) +
			a[MTransX]*scalar.Cross(a[MSkewY], a[MPersp1], a[MScaleY], a[MPersp0])
	}
	return scalar.Cross(a[MScaleX], a[MScaleY], a[MSkewX], a[MSkewY])
}

// IsFinite returns true if no coefficient is NaN or infinite.
func (m Matrix) IsFinite() bool {
	return scalar.IsFinite(m.mat[:]...)
}

// Equal reports whether both matrices have numerically equal coefficients.
// Comparison is exact: 0 equals -0 and NaN equals nothing. Use Equal rather
// than == because == also compares the type cache.
func (m Matrix) Equal(o Matrix) bool {
	if m.IsIdentity() && o.IsIdentity() {
		return true
	}
	return m.mat == o.mat
}

// CheapEqual reports whether both matrices have bit-identical coefficients.
// It is faster than Equal but treats 0 and -0 as different and identical NaN
// payloads as equal.
func (m Matrix) CheapEqual(o Matrix) bool {
	for i := range m.mat {
		if math.Float64bits(m.mat[i]) != math.Float64bits(o.mat[i]) {
			return false
		}
	}
	return true
}

// String formats the matrix as three bracketed rows.
func (m Matrix) String() string {
	a := m.mat
	return fmt.Sprintf("[%g %g %g][%g %g %g][%g %g %g]",
		a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7], a[8])
}
