package bounce

import (
	"fmt"
	"slices"

	"github.com/setanarut/vec"
)

// BodyID is a generational handle of a body inside a World.
//
// The zero value refers to nothing. A handle goes stale when its body is
// removed from the world; resolving a stale handle fails instead of returning
// a different body.
type BodyID struct {
	index, gen uint32
}

// Valid reports whether the handle was ever issued by a world.
func (id BodyID) Valid() bool {
	return id.gen != 0
}

func (id BodyID) String() string {
	return fmt.Sprintf("%d:%d", id.index, id.gen)
}

// Body is a point mass integrated from the forces attached to it.
//
// Position and velocity are owned by the body. The only way to move it from
// the outside is AddForce.
type Body struct {
	// Name prefixes the collision identity. Defaults to "body".
	Name string
	// UserData is an object that this body is associated with.
	//
	// You can use this get a reference to your game object from within callbacks.
	UserData any

	id           BodyID
	world        *World
	shape        *ElasticShape
	position     vec.Vec2
	velocity     vec.Vec2
	mass         float64
	friction     float64
	angle        float64
	w            float64
	lockX, lockY bool
	fixed        bool
	state        BodyState
	forces       []Force
	appliedForce vec.Vec2
	collider     *Collider
	collisionID  string
}

// NewBody returns an alive body with the given mass, position and velocity.
//
// It panics if mass is not positive.
func NewBody(mass float64, position, velocity vec.Vec2) *Body {
	body := &Body{
		Name:     "body",
		position: position,
		velocity: velocity,
	}
	body.SetMass(mass)
	return body
}

func (b *Body) String() string {
	return fmt.Sprint("Body ", b.id, " ", b.state, " ", b.position)
}

// ID returns the world handle of the body. Zero until the body joins a world.
func (b *Body) ID() BodyID {
	return b.id
}

// World returns the world the body belongs to, or nil.
func (b *Body) World() *World {
	return b.world
}

// Position returns the position of the body.
func (b *Body) Position() vec.Vec2 {
	return b.position
}

// Velocity returns the velocity of the body.
func (b *Body) Velocity() vec.Vec2 {
	return b.velocity
}

// Mass returns mass of the body
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass sets mass of the body. It panics if mass is not positive.
func (b *Body) SetMass(mass float64) {
	if mass <= 0 {
		panic(fmt.Sprintf("bounce: body mass must be positive, got %v", mass))
	}
	b.mass = mass
}

// Friction returns the velocity damping coefficient.
func (b *Body) Friction() float64 {
	return b.friction
}

// SetFriction sets the velocity damping coefficient. Negative values are clamped to 0.
func (b *Body) SetFriction(friction float64) {
	b.friction = max(friction, 0)
}

// Orientation returns the angle of the body in radians.
func (b *Body) Orientation() float64 {
	return b.angle
}

// AngularVelocity returns the angular velocity of the body.
func (b *Body) AngularVelocity() float64 {
	return b.w
}

// SetAngularVelocity sets the angular velocity of the body.
func (b *Body) SetAngularVelocity(w float64) {
	b.w = w
}

// State returns the lifecycle state of the body.
func (b *Body) State() BodyState {
	return b.state
}

// Kill marks the body dead. Dead bodies stop taking part in contacts from the
// next collision update on. Their collision pairs stay registered until the
// owner calls CollisionManager.UnregisterBody.
func (b *Body) Kill() {
	b.state = Dead
}

// Sleep suspends integration of an alive body.
func (b *Body) Sleep() {
	if b.state == Alive {
		b.state = Asleep
	}
}

// Wake resumes integration of a sleeping body.
func (b *Body) Wake() {
	if b.state == Asleep {
		b.state = Alive
	}
}

// Fixed reports whether the body is pinned in place.
func (b *Body) Fixed() bool {
	return b.fixed
}

// LockedX reports whether integration skips the x axis.
func (b *Body) LockedX() bool {
	return b.lockX
}

// LockedY reports whether integration skips the y axis.
func (b *Body) LockedY() bool {
	return b.lockY
}

// ToggleX flips the x axis lock.
func (b *Body) ToggleX() {
	b.lockX = !b.lockX
}

// ToggleY flips the y axis lock.
func (b *Body) ToggleY() {
	b.lockY = !b.lockY
}

// ToggleFixed flips the fixed flag. Forces already attached are kept.
func (b *Body) ToggleFixed() {
	b.fixed = !b.fixed
}

// AddForce attaches f to the body. Fixed bodies silently reject new forces.
func (b *Body) AddForce(f Force) {
	if b.fixed {
		return
	}
	b.forces = append(b.forces, f)
}

// ClearForces removes every force from the body.
func (b *Body) ClearForces() {
	b.forces = nil
}

// DropInertForces removes fully decayed contact forces and returns how many
// were dropped. Update never does this on its own.
func (b *Body) DropInertForces() int {
	before := len(b.forces)
	b.forces = slices.DeleteFunc(b.forces, func(f Force) bool {
		c, ok := f.(*ContactForce)
		return ok && c.Inert()
	})
	return before - len(b.forces)
}

// Forces returns the forces attached to the body.
func (b *Body) Forces() []Force {
	return b.forces
}

// AttachCollider sets the collider of the body, replacing any previous one.
func (b *Body) AttachCollider(c *Collider) {
	b.collider = c
	if c != nil {
		c.Body = b
	}
}

// Collider returns the attached collider, or nil.
func (b *Body) Collider() *Collider {
	return b.collider
}

// CollisionID returns the collision identity, empty until the body is first registered.
func (b *Body) CollisionID() string {
	return b.collisionID
}

// TotalForce sums every attached force. It is recomputed on each call.
func (b *Body) TotalForce() vec.Vec2 {
	var total vec.Vec2
	l := b.locator()
	for _, f := range b.forces {
		total = total.Add(f.Direction(l).Scale(f.Magnitude(l)))
	}
	return total
}

// AppliedForce returns the total force used by the last Update.
func (b *Body) AppliedForce() vec.Vec2 {
	return b.appliedForce
}

// Acceleration returns the acceleration from the current forces and friction.
func (b *Body) Acceleration() vec.Vec2 {
	return b.acceleration(b.TotalForce())
}

func (b *Body) acceleration(total vec.Vec2) vec.Vec2 {
	return total.Scale(1 / b.mass).Sub(b.velocity.Scale(b.friction))
}

// Update decays contact forces and integrates the body over dt.
//
// Fixed and sleeping bodies are left untouched.
func (b *Body) Update(dt float64) {
	if b.fixed || b.state == Asleep {
		return
	}

	for _, f := range b.forces {
		switch f := f.(type) {
		case *ContactForce:
			f.Update(dt)
		case *ConstantForce, *PullForce, *RepulsionForce:
		}
	}

	b.angle += b.w * dt
	if b.angle > twoPi {
		b.angle = 0
	}

	b.appliedForce = b.TotalForce()
	acc := b.acceleration(b.appliedForce)
	half := 0.5 * dt * dt

	if !b.lockX {
		b.velocity.X += acc.X * dt
		b.position.X += b.velocity.X*dt + acc.X*half
	}
	if !b.lockY {
		b.velocity.Y += acc.Y * dt
		b.position.Y += b.velocity.Y*dt + acc.Y*half
	}
}

// locator avoids handing a typed nil to force evaluation.
func (b *Body) locator() Locator {
	if b.world == nil {
		return nil
	}
	return b.world
}
