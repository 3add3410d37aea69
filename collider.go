package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// ICollider is the geometry behind a Collider. Circle and Segment implement it.
type ICollider interface {
	Center() vec.Vec2
	BB() BB
}

// Collider is a contact shape attached to a body.
type Collider struct {
	Class    ICollider
	Body     *Body
	UserData any
}

func (c *Collider) String() string {
	return fmt.Sprintf("%T", c.Class)
}

// Center returns the reference point used to aim contact forces.
func (c *Collider) Center() vec.Vec2 {
	return c.Class.Center()
}

// BB returns the bounding box of the collider.
func (c *Collider) BB() BB {
	return c.Class.BB()
}

// CheckContact reports whether c and other touch.
//
// Circles touch circles when their centres are at most r1+r2 apart and touch
// segments when the centre is within the radius of the segment. Segments only
// touch segments they properly cross.
func (c *Collider) CheckContact(other *Collider) bool {
	switch a := c.Class.(type) {
	case *Circle:
		switch b := other.Class.(type) {
		case *Circle:
			return circleToCircle(a, b)
		case *Segment:
			return circleToSegment(a, b)
		}
	case *Segment:
		switch b := other.Class.(type) {
		case *Circle:
			return circleToSegment(b, a)
		case *Segment:
			return segmentToSegment(a, b)
		}
	}
	panic(fmt.Sprintf("bounce: unknown collider pair %v / %v", c, other))
}

func circleToCircle(c1, c2 *Circle) bool {
	return c2.Center().Sub(c1.Center()).Mag() <= c1.radius+c2.radius
}

func circleToSegment(circle *Circle, seg *Segment) bool {
	return SegPointDistance(seg.a, seg.b, circle.Center()) <= circle.radius
}

func segmentToSegment(s1, s2 *Segment) bool {
	_, ok := ProperInter(s1.a, s1.b, s2.a, s2.b)
	return ok
}

// DownwardFilter accepts a contact only while b2 is above b1 and not moving up.
//
// When b1 carries a segment, "above" is measured against the point of the
// segment closest to b2, so sloped spans catch balls along their whole length.
// Y grows downwards.
func DownwardFilter(b1, b2 *Body) bool {
	return b2.velocity.Y >= 0 && b2.position.Y < surfaceY(b1, b2.position)
}

func surfaceY(b *Body, p vec.Vec2) float64 {
	if b.collider != nil {
		if seg, ok := b.collider.Class.(*Segment); ok {
			return seg.ClosestPoint(p).Y
		}
	}
	return b.position.Y
}
