package xform

import "strings"

// TypeMask classifies the structure of a Matrix. Callers use it to pick fast
// paths: a TypeIdentity matrix can be skipped, a TypeTranslate matrix only
// offsets, and so on. Bits combine; TypeIdentity is the empty mask.
type TypeMask uint8

const (
	// TypeIdentity means the matrix maps every point to itself.
	TypeIdentity TypeMask = 0
	// TypeTranslate is set when the translation is non-zero.
	TypeTranslate TypeMask = 0x01
	// TypeScale is set when a scale factor differs from one.
	TypeScale TypeMask = 0x02
	// TypeAffine is set when either skew coefficient is non-zero.
	TypeAffine TypeMask = 0x04
	// TypePerspective is set when the bottom row differs from (0, 0, 1).
	// A perspective matrix always reports the three lower bits as well.
	TypePerspective TypeMask = 0x08
)

// Internal cache bits. They never leave the package: Matrix.Type masks them off.
const (
	typeRectStaysRect TypeMask = 0x10
	typeKnown         TypeMask = 0x80

	typePublicMask = TypeTranslate | TypeScale | TypeAffine | TypePerspective
)

// String renders the set bits joined by '|', or "Identity" for the empty mask.
func (t TypeMask) String() string {
	t &= typePublicMask
	if t == TypeIdentity {
		return "Identity"
	}
	var parts []string
	for _, b := range []struct {
		bit  TypeMask
		name string
	}{
		{TypeTranslate, "Translate"},
		{TypeScale, "Scale"},
		{TypeAffine, "Affine"},
		{TypePerspective, "Perspective"},
	} {
		if t&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// ScaleToFit selects how Matrix.SetRectToRect maps a source rectangle into a
// destination whose aspect ratio differs.
type ScaleToFit int

const (
	// Fill scales each axis independently so src exactly covers dst.
	Fill ScaleToFit = iota
	// Start scales uniformly and aligns to the left/top of dst.
	Start
	// Center scales uniformly and centers within dst.
	Center
	// End scales uniformly and aligns to the right/bottom of dst.
	End
)

// String returns the fit mode name.
func (s ScaleToFit) String() string {
	switch s {
	case Fill:
		return "Fill"
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	default:
		return "Unknown"
	}
}

// ParseScaleToFit converts a fit mode name (case-insensitive) back to its value.
func ParseScaleToFit(s string) (ScaleToFit, bool) {
	switch strings.ToLower(s) {
	case "fill":
		return Fill, true
	case "start":
		return Start, true
	case "center", "centre":
		return Center, true
	case "end":
		return End, true
	}
	return Fill, false
}
