package bounce

import (
	"slices"
)

type updater interface {
	Update(dt float64)
}

type slot struct {
	body *Body
	gen  uint32
}

// World owns the bodies, elastic shapes and collision pairs of one simulation.
//
// Bodies are stored in an arena addressed by generational BodyID handles.
// Forces and collision pairs hold handles, never pointers, so a removed body
// simply stops resolving.
type World struct {
	UserData any

	// Collisions tests the registered body pairs at the end of every step.
	Collisions *CollisionManager

	slots  []slot
	free   []uint32
	loose  []*Body
	shapes []*ElasticShape
	stamp  uint
}

// NewWorld allocates and initializes a World
func NewWorld() *World {
	w := &World{}
	w.Collisions = newCollisionManager(w)
	return w
}

// Body resolves a handle. It returns false for the zero handle, a stale
// handle, or a nil world.
func (w *World) Body(id BodyID) (*Body, bool) {
	if w == nil || !id.Valid() || int(id.index) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[id.index]
	if s.gen != id.gen || s.body == nil {
		return nil, false
	}
	return s.body, true
}

// AddBody adds body to the world and returns its handle.
//
// Do not add the same Body twice.
func (w *World) AddBody(body *Body) BodyID {
	if body.world != nil {
		panic("bounce: body already belongs to a world")
	}
	var index uint32
	if n := len(w.free); n > 0 {
		index = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		index = uint32(len(w.slots))
		w.slots = append(w.slots, slot{})
	}
	s := &w.slots[index]
	s.gen++
	s.body = body

	body.id = BodyID{index: index, gen: s.gen}
	body.world = w
	if body.shape == nil {
		w.loose = append(w.loose, body)
	}
	return body.id
}

// RemoveBody frees the arena slot of body. Handles to it go stale.
//
// Collision pairs are left alone; call Collisions.UnregisterBody first, or
// use DestroyBody.
func (w *World) RemoveBody(body *Body) {
	if body.world != w {
		return
	}
	s := &w.slots[body.id.index]
	s.body = nil
	w.free = append(w.free, body.id.index)
	w.loose = slices.DeleteFunc(w.loose, func(b *Body) bool {
		return b == body
	})
	body.world = nil
	body.id = BodyID{}
}

// DestroyBody kills body, unregisters its collision pairs and removes it.
func (w *World) DestroyBody(body *Body) {
	body.Kill()
	w.Collisions.UnregisterBody(body)
	w.RemoveBody(body)
}

// RemoveShape destroys every joint of s and stops updating it.
func (w *World) RemoveShape(s *ElasticShape) {
	w.shapes = slices.DeleteFunc(w.shapes, func(o *ElasticShape) bool {
		return o == s
	})
	for _, j := range s.joints {
		w.DestroyBody(j.Body)
	}
}

// BodyCount returns the number of bodies in the arena, joints included.
func (w *World) BodyCount() int {
	return len(w.slots) - len(w.free)
}

// Bodies returns the bodies that do not belong to a shape.
func (w *World) Bodies() []*Body {
	return w.loose
}

// Shapes returns the elastic shapes in update order.
func (w *World) Shapes() []*ElasticShape {
	return w.shapes
}

// EachBody calls f for each body in the world, joints included.
func (w *World) EachBody(f func(b *Body)) {
	for _, s := range w.slots {
		if s.body != nil {
			f(s.body)
		}
	}
}

// BBQuery calls f for each collider whose bounding box intersects bb.
func (w *World) BBQuery(bb BB, f func(c *Collider)) {
	w.EachBody(func(b *Body) {
		if b.collider != nil && b.collider.BB().Intersects(bb) {
			f(b.collider)
		}
	})
}

// Stamp returns the number of steps taken.
func (w *World) Stamp() uint {
	return w.stamp
}

// Step advances the simulation by dt.
//
// Shapes update first, in the order they were created, then bodies that are
// not part of a shape, then the collision pairs are tested. Contact forces
// injected by this step act from the next one on.
func (w *World) Step(dt float64) {
	if dt == 0 {
		return
	}
	w.stamp++

	for _, s := range w.shapes {
		s.owner.Update(dt)
	}
	for _, b := range w.loose {
		b.Update(dt)
	}
	w.Collisions.Update()
}
