package xform

import "math"

// MapXY maps the point (x, y).
func (m Matrix) MapXY(x, y float64) Point {
	mask := m.Type()
	switch {
	case mask == TypeIdentity:
		return Point{X: x, Y: y}
	case mask&TypePerspective != 0:
		return m.mapPersp(x, y)
	default:
		return Point{
			X: m.mat[MScaleX]*x + m.mat[MSkewX]*y + m.mat[MTransX],
			Y: m.mat[MSkewY]*x + m.mat[MScaleY]*y + m.mat[MTransY],
		}
	}
}

// mapPersp maps with the homogeneous divide. A zero w leaves the
// un-normalized coordinates multiplied by zero.
func (m *Matrix) mapPersp(x, y float64) Point {
	a := &m.mat
	px := a[MScaleX]*x + a[MSkewX]*y + a[MTransX]
	py := a[MSkewY]*x + a[MScaleY]*y + a[MTransY]
	w := a[MPersp0]*x + a[MPersp1]*y + a[MPersp2]
	if w != 0 {
		w = 1 / w
	}
	return Point{X: px * w, Y: py * w}
}

// MapPoint maps p.
func (m Matrix) MapPoint(p Point) Point {
	return m.MapXY(p.X, p.Y)
}

// MapPoints maps src into dst. dst and src may be the same slice.
// It panics if dst is shorter than src.
func (m Matrix) MapPoints(dst, src []Point) {
	if len(dst) < len(src) {
		panic("xform: MapPoints destination shorter than source")
	}
	a := &m.mat
	mask := m.Type()
	switch {
	case mask == TypeIdentity:
		copy(dst, src)
	case mask == TypeTranslate:
		tx, ty := a[MTransX], a[MTransY]
		for i, p := range src {
			dst[i] = Point{X: p.X + tx, Y: p.Y + ty}
		}
	case mask&^(TypeScale|TypeTranslate) == 0:
		sx, sy, tx, ty := a[MScaleX], a[MScaleY], a[MTransX], a[MTransY]
		for i, p := range src {
			dst[i] = Point{X: p.X*sx + tx, Y: p.Y*sy + ty}
		}
	case mask&TypePerspective != 0:
		for i, p := range src {
			dst[i] = m.mapPersp(p.X, p.Y)
		}
	default:
		for i, p := range src {
			dst[i] = Point{
				X: a[MScaleX]*p.X + a[MSkewX]*p.Y + a[MTransX],
				Y: a[MSkewY]*p.X + a[MScaleY]*p.Y + a[MTransY],
			}
		}
	}
}

// MapPointsInPlace maps every point of pts.
func (m Matrix) MapPointsInPlace(pts []Point) {
	m.MapPoints(pts, pts)
}

// MapHomogeneousPoints maps src into dst with the full 3x3 product and no
// perspective divide. It panics if dst is shorter than src.
func (m Matrix) MapHomogeneousPoints(dst, src []Point3) {
	if len(dst) < len(src) {
		panic("xform: MapHomogeneousPoints destination shorter than source")
	}
	if m.IsIdentity() {
		copy(dst, src)
		return
	}
	a := &m.mat
	for i, p := range src {
		dst[i] = Point3{
			X: a[MScaleX]*p.X + a[MSkewX]*p.Y + a[MTransX]*p.Z,
			Y: a[MSkewY]*p.X + a[MScaleY]*p.Y + a[MTransY]*p.Z,
			Z: a[MPersp0]*p.X + a[MPersp1]*p.Y + a[MPersp2]*p.Z,
		}
	}
}

// MapVector maps v, ignoring translation. With perspective the result is the
// difference between the mapped v and the mapped origin.
func (m Matrix) MapVector(v Vector) Vector {
	mask := m.Type()
	switch {
	case mask&^TypeTranslate == 0:
		return v
	case mask&TypePerspective != 0:
		return m.mapPersp(v.X, v.Y).Sub(m.mapPersp(0, 0))
	default:
		return Vector{
			X: m.mat[MScaleX]*v.X + m.mat[MSkewX]*v.Y,
			Y: m.mat[MSkewY]*v.X + m.mat[MScaleY]*v.Y,
		}
	}
}

// MapVectors maps src into dst, ignoring translation. dst and src may be the
// same slice. It panics if dst is shorter than src.
func (m Matrix) MapVectors(dst, src []Vector) {
	if len(dst) < len(src) {
		panic("xform: MapVectors destination shorter than source")
	}
	mask := m.Type()
	switch {
	case mask&^TypeTranslate == 0:
		copy(dst, src)
	case mask&TypePerspective != 0:
		origin := m.mapPersp(0, 0)
		for i, v := range src {
			dst[i] = m.mapPersp(v.X, v.Y).Sub(origin)
		}
	default:
		a := &m.mat
		for i, v := range src {
			dst[i] = Vector{
				X: a[MScaleX]*v.X + a[MSkewX]*v.Y,
				Y: a[MSkewY]*v.X + a[MScaleY]*v.Y,
			}
		}
	}
}

// MapVectorsInPlace maps every vector of vecs.
func (m Matrix) MapVectorsInPlace(vecs []Vector) {
	m.MapVectors(vecs, vecs)
}

// MapRectToQuad maps the four corners of r in the order top-left, top-right,
// bottom-right, bottom-left. The quad is exact, never a bounding box.
func (m Matrix) MapRectToQuad(r Rect) [4]Point {
	quad := [4]Point{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
	m.MapPoints(quad[:], quad[:])
	return quad
}

// MapRect returns the sorted bounds of r after mapping. The bool reports
// whether the mapped rectangle is still axis aligned (RectStaysRect); when it
// is false the result is the bounding box of the mapped corners.
func (m Matrix) MapRect(r Rect) (Rect, bool) {
	if m.IsScaleTranslate() {
		return m.mapRectScaleTranslate(r), m.RectStaysRect()
	}
	quad := m.MapRectToQuad(r)
	return BoundsOf(quad[:]), m.RectStaysRect()
}

func (m *Matrix) mapRectScaleTranslate(r Rect) Rect {
	sx, sy, tx, ty := m.mat[MScaleX], m.mat[MScaleY], m.mat[MTransX], m.mat[MTransY]
	return Rect{
		Left:   r.Left*sx + tx,
		Top:    r.Top*sy + ty,
		Right:  r.Right*sx + tx,
		Bottom: r.Bottom*sy + ty,
	}.Sort()
}

// MapRectScaleTranslate is the fast path of MapRect for scale+translate
// matrices. It fails for any other matrix.
func (m Matrix) MapRectScaleTranslate(r Rect) (Rect, bool) {
	if !m.IsScaleTranslate() {
		return Rect{}, false
	}
	return m.mapRectScaleTranslate(r), true
}

// MapRadius returns the geometric mean of the lengths of the mapped vectors
// (radius, 0) and (0, radius). It fails for matrices with perspective, where
// the mapped length depends on position.
func (m Matrix) MapRadius(radius float64) (float64, bool) {
	if m.HasPerspective() {
		return 0, false
	}
	d0 := m.MapVector(Vector{X: radius}).Length()
	d1 := m.MapVector(Vector{Y: radius}).Length()
	return math.Sqrt(d0 * d1), true
}

// IsFixedStepInX reports whether stepping x by one along a scanline moves the
// mapped point by a constant vector, i.e. Persp0 is nearly zero.
func (m Matrix) IsFixedStepInX() bool {
	return math.Abs(m.mat[MPersp0]) <= Tolerance
}

// FixedStepInX returns the mapped displacement for one unit of x along the
// scanline at y. It fails when IsFixedStepInX is false.
func (m Matrix) FixedStepInX(y float64) (Vector, bool) {
	if !m.IsFixedStepInX() {
		return Vector{}, false
	}
	step := Vector{X: m.mat[MScaleX], Y: m.mat[MSkewY]}
	if math.Abs(m.mat[MPersp1]) <= Tolerance && math.Abs(m.mat[MPersp2]-1) <= Tolerance {
		return step, true
	}
	w := y*m.mat[MPersp1] + m.mat[MPersp2]
	return Vector{X: step.X / w, Y: step.Y / w}, true
}
