package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Draw flags
const (
	DrawColliders = 1 << 0
	DrawLinks     = 1 << 1
	DrawForces    = 1 << 2
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

// IDrawer receives the debug geometry of a world.
type IDrawer interface {
	DrawCircle(pos vec.Vec2, angle, radius float64, outline, fill FColor, data any)
	DrawSegment(a, b vec.Vec2, fill FColor, data any)
	DrawDot(size float64, pos vec.Vec2, fill FColor, data any)

	Flags() uint
	OutlineColor() FColor
	ColliderColor(c *Collider, data any) FColor
	LinkColor() FColor
	ForceColor() FColor
	Data() any
}

// ForceDrawScale converts a force into a drawn length.
var ForceDrawScale = 0.05

// DrawCollider draws a collider with the drawer implementation
func DrawCollider(c *Collider, drawer IDrawer) {
	data := drawer.Data()
	outline := drawer.OutlineColor()
	fill := drawer.ColliderColor(c, data)

	switch class := c.Class.(type) {
	case *Circle:
		var angle float64
		if c.Body != nil {
			angle = c.Body.angle
		}
		drawer.DrawCircle(class.Center(), angle, class.radius, outline, fill, data)
	case *Segment:
		drawer.DrawSegment(class.a, class.b, fill, data)
	default:
		panic(fmt.Sprintf("bounce: unknown collider type %T", c.Class))
	}
}

// DrawShapeLinks draws the neighbour links and joints of an elastic shape.
func DrawShapeLinks(s *ElasticShape, drawer IDrawer) {
	data := drawer.Data()
	color := drawer.LinkColor()
	for _, l := range s.links {
		a := s.joints[l[0]].position
		b := s.joints[l[1]].position
		drawer.DrawSegment(a, b, color, data)
	}
	for _, j := range s.joints {
		size := 3.0
		if j.fixed {
			size = 5
		}
		drawer.DrawDot(size, j.position, color, data)
	}
}

// DrawWorld draws everything selected by the drawer flags.
func DrawWorld(w *World, drawer IDrawer) {
	flags := drawer.Flags()

	if flags&DrawLinks != 0 {
		for _, s := range w.shapes {
			DrawShapeLinks(s, drawer)
		}
	}

	if flags&DrawColliders != 0 {
		w.EachBody(func(b *Body) {
			if b.collider != nil && b.state != Dead {
				DrawCollider(b.collider, drawer)
			}
		})
	}

	if flags&DrawForces != 0 {
		data := drawer.Data()
		color := drawer.ForceColor()
		w.EachBody(func(b *Body) {
			f := b.appliedForce
			if f.X == 0 && f.Y == 0 {
				return
			}
			drawer.DrawSegment(b.position, b.position.Add(f.Scale(ForceDrawScale)), color, data)
		})
	}
}
