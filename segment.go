package bounce

import "github.com/setanarut/vec"

// Segment is a line between two endpoints owned by whoever created it.
//
// Moving the body does not move the endpoints; the owner positions them
// with SetEndpoints or RotateAbout.
type Segment struct {
	*Collider
	a, b vec.Vec2
}

// NewSegmentCollider attaches a segment from a to b to body and returns its collider.
func NewSegmentCollider(body *Body, a, b vec.Vec2) *Collider {
	seg := &Segment{a: a, b: b}
	seg.Collider = &Collider{Class: seg}
	body.AttachCollider(seg.Collider)
	return seg.Collider
}

func (seg *Segment) A() vec.Vec2 {
	return seg.a
}

func (seg *Segment) B() vec.Vec2 {
	return seg.b
}

// SetEndpoints moves both endpoints.
func (seg *Segment) SetEndpoints(a, b vec.Vec2) {
	seg.a = a
	seg.b = b
}

// RotateAbout rotates both endpoints by angle radians around pivot.
func (seg *Segment) RotateAbout(pivot vec.Vec2, angle float64) {
	seg.a = RotateAbout(seg.a, pivot, angle)
	seg.b = RotateAbout(seg.b, pivot, angle)
}

// Center returns the midpoint.
func (seg *Segment) Center() vec.Vec2 {
	return seg.a.Lerp(seg.b, 0.5)
}

// ClosestPoint returns the point of the segment nearest to p.
func (seg *Segment) ClosestPoint(p vec.Vec2) vec.Vec2 {
	ab := seg.b.Sub(seg.a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return seg.a
	}
	t := min(max(p.Sub(seg.a).Dot(ab)/l2, 0), 1)
	return seg.a.Add(ab.Scale(t))
}

func (seg *Segment) Length() float64 {
	return seg.b.Sub(seg.a).Mag()
}

// Direction returns the unit vector from a to b, zero for a degenerate segment.
func (seg *Segment) Direction() vec.Vec2 {
	return unitOrZero(seg.b.Sub(seg.a))
}

func (seg *Segment) BB() BB {
	return SegmentBB(seg.a, seg.b)
}
