package xform

import "math"

// Point3 is a homogeneous 2D point. Matrix.MapHomogeneousPoints transforms it
// without dividing by Z.
type Point3 struct {
	X, Y, Z float64
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle given by its edges.
// A Rect is sorted when Left <= Right and Top <= Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectLTRB returns a Rect from its four edges.
func RectLTRB(l, t, r, b float64) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// RectXYWH returns a Rect from its top-left corner and size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns Right - Left. It is negative for unsorted rectangles.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top. It is negative for unsorted rectangles.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle encloses no area. NaN edges count as
// empty.
func (r Rect) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Sort returns the rectangle with swapped edges put back in order.
func (r Rect) Sort() Rect {
	return Rect{
		Left:   math.Min(r.Left, r.Right),
		Top:    math.Min(r.Top, r.Bottom),
		Right:  math.Max(r.Left, r.Right),
		Bottom: math.Max(r.Top, r.Bottom),
	}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) * 0.5, Y: (r.Top + r.Bottom) * 0.5}
}

// IsFinite reports whether all four edges are finite.
func (r Rect) IsFinite() bool {
	for _, v := range [4]float64{r.Left, r.Top, r.Right, r.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Approx returns true if all edges are equal within epsilon.
func (r Rect) Approx(o Rect, epsilon float64) bool {
	return math.Abs(r.Left-o.Left) <= epsilon && math.Abs(r.Top-o.Top) <= epsilon &&
		math.Abs(r.Right-o.Right) <= epsilon && math.Abs(r.Bottom-o.Bottom) <= epsilon
}

// BoundsOf returns the smallest sorted Rect containing every point.
// It returns the zero Rect for an empty slice.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		r.Left = math.Min(r.Left, p.X)
		r.Top = math.Min(r.Top, p.Y)
		r.Right = math.Max(r.Right, p.X)
		r.Bottom = math.Max(r.Bottom, p.Y)
	}
	return r
}

// RSXform is a compressed rotation+scale+translation: SCos and SSin are the
// cosine and sine of the rotation, each multiplied by the scale.
type RSXform struct {
	SCos, SSin float64
	TX, TY     float64
}

// RSXformFromRadians builds an RSXform that scales by scale, rotates by radians
// about the anchor (ax, ay) in source space and then moves the anchor to (tx, ty).
func RSXformFromRadians(scale, radians, tx, ty, ax, ay float64) RSXform {
	s := math.Sin(radians) * scale
	c := math.Cos(radians) * scale
	return RSXform{
		SCos: c,
		SSin: s,
		TX:   tx + -c*ax + s*ay,
		TY:   ty + -s*ax - c*ay,
	}
}
