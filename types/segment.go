package types

// Segment is a directed line segment from A to B.
//
// A segment is point-degenerate when B-A is the zero vector under the
// caller's tolerance; degenerate segments still participate in every
// operation below, they simply behave as a single point.
type Segment struct {
	A, B Point
}

// NewSegment constructs a segment from a to b.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Dir returns B-A.
func (s Segment) Dir() Vector {
	return s.B.Sub(s.A)
}

// IsPointDegenerate reports whether the segment has collapsed to a point
// under eps.
func (s Segment) IsPointDegenerate(eps float64) bool {
	return s.Dir().IsZero(eps)
}

// ContainsPoint reports whether p lies on the closed segment under eps.
//
//   - If the segment is point-degenerate, containment reduces to point
//     equality with A.
//   - Otherwise p must be collinear with (A,B), i.e. (B-A)×(p-A) ≈ 0, and its
//     projection parameter t = (B-A)·(p-A) must satisfy 0 <= t <= |B-A|^2,
//     both decided through SignOf.
func (s Segment) ContainsPoint(p Point, eps float64) bool {
	if s.IsPointDegenerate(eps) {
		return s.A.Equal(p, eps)
	}

	dir := s.Dir()
	toP := p.Sub(s.A)
	if !dir.Cross(toP).IsZero(eps) {
		return false
	}

	t := dir.Dot(toP)
	lenSq := dir.LenSq()
	return SignOf(t, eps) != Neg && SignOf(t-lenSq, eps) != Pos
}

// Intersects reports whether s and other intersect, including collinear
// overlap and point-degenerate cases.
//
// The test proceeds in four steps, matching the specification precisely:
//  1. The two segments must be coplanar: MixedProduct(dir, other.Dir(),
//     other.A-s.A) ≈ 0. Non-coplanar segments never intersect.
//  2. Endpoint-containment is checked in both directions and short-circuits
//     to true on the first hit (this also catches all collinear-overlap and
//     vertex-touching cases without a separate code path).
//  3. If either segment is point-degenerate and step 2 found nothing, there
//     is no intersection.
//  4. Otherwise the two (non-parallel) 3-D lines are solved for their
//     unique intersection parameter via norm = dir×other.Dir(); if the
//     lines are parallel (|norm|^2 ≈ 0) there is no intersection (a true
//     parallel-and-touching case would already have been caught in step 2).
func (s Segment) Intersects(other Segment, eps float64) bool {
	dir := s.Dir()
	otherDir := other.Dir()

	mixed := dir.MixedProduct(otherDir, other.A.Sub(s.A))
	if SignOf(mixed, eps) != Zero {
		return false
	}

	if s.ContainsPoint(other.A, eps) || s.ContainsPoint(other.B, eps) ||
		other.ContainsPoint(s.A, eps) || other.ContainsPoint(s.B, eps) {
		return true
	}

	if s.IsPointDegenerate(eps) || other.IsPointDegenerate(eps) {
		return false
	}

	norm := dir.Cross(otherDir)
	normLenSq := norm.LenSq()
	if SignOf(normLenSq, eps) == Zero {
		return false
	}

	t := other.A.Sub(s.A).Cross(otherDir).Dot(norm) / normLenSq
	inter := s.A.Add(dir.Scale(t))
	return s.ContainsPoint(inter, eps) && other.ContainsPoint(inter, eps)
}
