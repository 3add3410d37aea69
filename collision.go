package bounce

import (
	"slices"
	"strconv"
)

// FilterFunc decides whether a geometric contact between a and b counts.
type FilterFunc func(a, b *Body) bool

// ContactFunc is called on every update in which a registered pair touches.
type ContactFunc func()

// RegisterOptions configures a collision pair.
type RegisterOptions struct {
	// Filter gates the contact. Nil accepts every contact.
	Filter FilterFunc
	// Callback is invoked on every update the contact holds.
	Callback ContactFunc
	// Sensor pairs only call Callback, and never inject contact forces.
	Sensor bool
	// ContactForceFactor scales the injected impulse. Zero means DefaultContactForceFactor.
	ContactForceFactor float64
}

// CollisionPair holds weak handles to two bodies watched for contact.
type CollisionPair struct {
	a, b       BodyID
	idA, idB   string
	filter     FilterFunc
	cb         ContactFunc
	sensor     bool
	forceScale float64
}

// Identities returns the collision identities of both bodies.
func (p *CollisionPair) Identities() (string, string) {
	return p.idA, p.idB
}

type pendingOp struct {
	register bool
	a, b     *Body
	opts     RegisterOptions
}

// CollisionManager tests registered body pairs for contact on every update.
//
// Pairs are never pruned on their own. Owners of a body that dies or leaves
// the world must call UnregisterBody, or Compact the manager explicitly.
type CollisionManager struct {
	// ContactDecay is the decay rate of injected contact forces.
	ContactDecay float64

	world   *World
	pairs   []*CollisionPair
	counter int
	locked  bool
	pending []pendingOp
}

func newCollisionManager(w *World) *CollisionManager {
	return &CollisionManager{
		ContactDecay: DefaultContactDecay,
		world:        w,
	}
}

// PairCount returns the number of registered pairs, live or not.
func (cm *CollisionManager) PairCount() int {
	return len(cm.pairs)
}

// Pairs returns a copy of the registered pairs.
func (cm *CollisionManager) Pairs() []*CollisionPair {
	return slices.Clone(cm.pairs)
}

// IsLocked returns true from inside a contact callback. Registrations made
// while locked are applied when Update returns.
func (cm *CollisionManager) IsLocked() bool {
	return cm.locked
}

func (cm *CollisionManager) identify(b *Body) string {
	if b.collisionID == "" {
		cm.counter++
		b.collisionID = b.Name + strconv.Itoa(cm.counter)
	}
	return b.collisionID
}

// Register watches b1 and b2 for contact.
//
// Nothing is registered when either body has no collider, is not alive or
// does not belong to the manager's world.
func (cm *CollisionManager) Register(b1, b2 *Body, opts RegisterOptions) {
	if cm.locked {
		cm.pending = append(cm.pending, pendingOp{register: true, a: b1, b: b2, opts: opts})
		return
	}
	if b1.collider == nil || b2.collider == nil || b1.state != Alive || b2.state != Alive {
		return
	}
	if b1.world != cm.world || b2.world != cm.world {
		return
	}
	factor := opts.ContactForceFactor
	if factor == 0 {
		factor = DefaultContactForceFactor
	}
	cm.pairs = append(cm.pairs, &CollisionPair{
		a:          b1.id,
		b:          b2.id,
		idA:        cm.identify(b1),
		idB:        cm.identify(b2),
		filter:     opts.Filter,
		cb:         opts.Callback,
		sensor:     opts.Sensor,
		forceScale: factor,
	})
}

// UnregisterBody removes every pair involving b.
func (cm *CollisionManager) UnregisterBody(b *Body) {
	if cm.locked {
		cm.pending = append(cm.pending, pendingOp{a: b})
		return
	}
	id := b.collisionID
	if id == "" {
		return
	}
	cm.pairs = slices.DeleteFunc(cm.pairs, func(p *CollisionPair) bool {
		return p.idA == id || p.idB == id
	})
}

// Compact drops pairs whose bodies are gone from the world or dead.
// It returns the number of pairs removed. It does nothing while locked.
func (cm *CollisionManager) Compact() int {
	if cm.locked {
		return 0
	}
	before := len(cm.pairs)
	cm.pairs = slices.DeleteFunc(cm.pairs, func(p *CollisionPair) bool {
		a, okA := cm.world.Body(p.a)
		b, okB := cm.world.Body(p.b)
		return !okA || !okB || a.state == Dead || b.state == Dead
	})
	return before - len(cm.pairs)
}

// Update tests every pair and resolves the ones in contact.
//
// Pairs with a stale handle, a body that is not alive, a rejecting filter or
// no geometric contact are skipped. Otherwise both bodies receive a contact
// force, unless the pair is a sensor, and the callback fires.
func (cm *CollisionManager) Update() {
	cm.locked = true
	for _, p := range cm.pairs {
		a, ok := cm.world.Body(p.a)
		if !ok {
			continue
		}
		b, ok := cm.world.Body(p.b)
		if !ok {
			continue
		}
		if a.state != Alive || b.state != Alive {
			continue
		}
		if a.collider == nil || b.collider == nil {
			continue
		}
		if p.filter != nil && !p.filter(a, b) {
			continue
		}
		if !a.collider.CheckContact(b.collider) {
			continue
		}
		if !p.sensor {
			fa := Collide(a, b, p.forceScale, cm.ContactDecay)
			fb := Collide(b, a, p.forceScale, cm.ContactDecay)
			a.AddForce(fa)
			b.AddForce(fb)
		}
		if p.cb != nil {
			p.cb()
		}
	}
	cm.locked = false
	cm.flush()
}

func (cm *CollisionManager) flush() {
	pending := cm.pending
	cm.pending = nil
	for _, op := range pending {
		if op.register {
			cm.Register(op.a, op.b, op.opts)
		} else {
			cm.UnregisterBody(op.a)
		}
	}
}

// Collide returns the contact force pushing body away from against.
//
// The magnitude scales with the relative mass only; relative velocity is
// ignored. Both bodies need a collider.
func Collide(body, against *Body, factor, decay float64) *ContactForce {
	massFactor := 2 * against.mass / (body.mass + against.mass)
	dir := unitOrZero(body.collider.Center().Sub(against.collider.Center()))
	return NewContactForce(dir, massFactor*factor, decay)
}
