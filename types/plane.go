package types

// Plane is an oriented plane given by a base point and a normal vector.
//
// A Plane's invariant is that Norm = (b-a)×(c-a) for some source triple
// (a,b,c); a plane is valid iff Norm is non-zero under the caller's
// tolerance. Invalid planes must never be instantiated by a caller: see
// NewPlane, which reports validity instead of panicking.
type Plane struct {
	Base Point
	Norm Vector
}

// NewPlane builds the plane spanned by the triple (a,b,c). The second
// return value is false when a, b, c are collinear (or coincident) under
// eps, in which case the returned Plane must not be used; callers such as
// Triangle fall back to a degenerate-segment representation instead.
func NewPlane(a, b, c Point, eps float64) (Plane, bool) {
	norm := b.Sub(a).Cross(c.Sub(a))
	if norm.IsZero(eps) {
		return Plane{}, false
	}
	return Plane{Base: a, Norm: norm}, true
}

// IsPointOnPlane reports whether p lies on the plane under eps.
func (pl Plane) IsPointOnPlane(p Point, eps float64) bool {
	d := p.Sub(pl.Base).Dot(pl.Norm)
	return SignOf(d, eps) == Zero
}

// IsSegmentOnPlane reports whether both endpoints of s lie on the plane.
func (pl Plane) IsSegmentOnPlane(s Segment, eps float64) bool {
	return pl.IsPointOnPlane(s.A, eps) && pl.IsPointOnPlane(s.B, eps)
}

// IntersectBySegment intersects s against the plane.
//
// Let denom = Norm·Dir(s):
//   - If denom ≈ 0 (s parallel to the plane): if both endpoints lie on the
//     plane, the whole segment lies on it and s.A is returned with ok=true;
//     otherwise there is no intersection.
//   - Otherwise t = Norm·(Base-s.A) / denom. If t falls outside [0,1] under
//     SignOf, there is no intersection; otherwise the point s.A + t*Dir(s)
//     is returned with ok=true.
func (pl Plane) IntersectBySegment(s Segment, eps float64) (Point, bool) {
	dir := s.Dir()
	denom := pl.Norm.Dot(dir)

	if SignOf(denom, eps) == Zero {
		if pl.IsSegmentOnPlane(s, eps) {
			return s.A, true
		}
		return Point{}, false
	}

	t := pl.Norm.Dot(pl.Base.Sub(s.A)) / denom
	if SignOf(t, eps) == Neg || SignOf(t-1, eps) == Pos {
		return Point{}, false
	}
	return s.A.Add(dir.Scale(t)), true
}
