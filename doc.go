// Package xform provides 2D homogeneous transformation matrices for Go.
//
// # Overview
//
// A [Matrix] is a 3x3 transform covering translation, scale, rotation, skew
// and perspective. It classifies itself with a cached [TypeMask] so callers
// can pick fast paths, composes with other matrices, and maps points,
// vectors, homogeneous points and rectangles.
//
// # Quick Start
//
//	import "github.com/gogpu/xform"
//
//	m := xform.Scale(2, 2)
//	m.PostRotatePivot(30, xform.Pt(50, 50))
//	p := m.MapPoint(xform.Pt(10, 0))
//
//	inv, ok := m.Invert()
//	if !ok {
//	    // singular: treat as "not applicable"
//	}
//
// # Conventions
//
// Coefficients are stored row-major, and a point maps as
// x' = ScaleX*x + SkewX*y + TransX (see [Member]). [Matrix.PreConcat] applies
// its argument before the existing transform, [Matrix.PostConcat] after it.
// Angles are in degrees unless a function name says otherwise; positive angles
// turn clockwise on a y-down surface.
//
// # Failures
//
// Operations that can fail mathematically (inversion, fitting, decomposition,
// conversion to affine form) return a trailing bool and never panic. Batch
// mapping with a destination shorter than its source is a programming error
// and panics.
//
// # Interop
//
// Matrices convert to and from golang.org/x/image/math types, resample images
// through golang.org/x/image/draw, and pack into WGSL uniform layout for
// github.com/gogpu/gputypes vertex buffers.
//
// # Concurrency
//
// Matrix is a value type without internal locking. [I] and [InvalidMatrix]
// are built once and safe to call from any goroutine.
package xform

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
