// Package scalar holds the float64 helpers shared by the xform matrix code:
// tolerance tests, snapped trigonometry and the small dot/cross kernels used by
// inversion and decomposition.
package scalar

import "math"

// NearlyZeroTolerance is the default tolerance for NearlyZero (1/4096).
const NearlyZeroTolerance = 1.0 / (1 << 12)

// NearlyZero reports whether |x| <= NearlyZeroTolerance.
func NearlyZero(x float64) bool {
	return math.Abs(x) <= NearlyZeroTolerance
}

// NearlyZeroTol reports whether |x| <= tol.
func NearlyZeroTol(x, tol float64) bool {
	return math.Abs(x) <= tol
}

// NearlyEqual reports whether |a-b| <= NearlyZeroTolerance.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= NearlyZeroTolerance
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// SinSnapToZero returns sin(rad), with results within NearlyZeroTolerance of
// zero snapped to exactly zero so that quarter turns stay axis aligned.
func SinSnapToZero(rad float64) float64 {
	v := math.Sin(rad)
	if NearlyZero(v) {
		return 0
	}
	return v
}

// CosSnapToZero is the cosine counterpart of SinSnapToZero.
func CosSnapToZero(rad float64) float64 {
	v := math.Cos(rad)
	if NearlyZero(v) {
		return 0
	}
	return v
}

// Dot returns a*b + c*d.
func Dot(a, b, c, d float64) float64 {
	return a*b + c*d
}

// Cross returns a*b - c*d.
func Cross(a, b, c, d float64) float64 {
	return a*b - c*d
}

// Half returns x/2.
func Half(x float64) float64 {
	return x * 0.5
}

// IsFinite reports whether every value is neither NaN nor infinite.
func IsFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
