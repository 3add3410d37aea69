package bounce

import "github.com/setanarut/vec"

// Circle follows the position of its body.
type Circle struct {
	*Collider
	radius float64
}

// NewCircleCollider attaches a circle of radius r to body and returns its collider.
func NewCircleCollider(body *Body, r float64) *Collider {
	circle := &Circle{radius: r}
	circle.Collider = &Collider{Class: circle}
	body.AttachCollider(circle.Collider)
	return circle.Collider
}

func (circle *Circle) Center() vec.Vec2 {
	if circle.Body == nil {
		return vec.Vec2{}
	}
	return circle.Body.position
}

func (circle *Circle) BB() BB {
	return CircleBB(circle.Center(), circle.radius)
}

func (circle *Circle) Radius() float64 {
	return circle.radius
}

func (circle *Circle) SetRadius(r float64) {
	circle.radius = r
}
