package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// Locator resolves body handles into live bodies.
type Locator interface {
	Body(id BodyID) (*Body, bool)
}

// Force is a direction and a magnitude acting on the body that owns it.
//
// The variants are ConstantForce, PullForce, RepulsionForce and ContactForce.
type Force interface {
	Direction(l Locator) vec.Vec2
	Magnitude(l Locator) float64
}

// ConstantForce never changes. Gravity is one.
type ConstantForce struct {
	Dir vec.Vec2
	Mag float64
}

// NewConstantForce returns a force with a fixed direction and magnitude.
func NewConstantForce(direction vec.Vec2, magnitude float64) *ConstantForce {
	return &ConstantForce{Dir: direction, Mag: magnitude}
}

// Gravity returns a constant force pointing along g with |g| as magnitude.
func Gravity(g vec.Vec2) *ConstantForce {
	return &ConstantForce{Dir: unitOrZero(g), Mag: g.Mag()}
}

func (f *ConstantForce) Direction(Locator) vec.Vec2 { return f.Dir }
func (f *ConstantForce) Magnitude(Locator) float64  { return f.Mag }

func (f *ConstantForce) String() string {
	return fmt.Sprintf("Constant(%v, %v)", f.Dir, f.Mag)
}

// endpoints resolves from and to. ok is false when either handle is stale.
func endpoints(l Locator, from, to BodyID) (a, b vec.Vec2, ok bool) {
	if l == nil {
		return
	}
	fb, ok1 := l.Body(from)
	tb, ok2 := l.Body(to)
	if !ok1 || !ok2 {
		return
	}
	return fb.position, tb.position, true
}

// PullForce draws From towards To and grows stronger with distance.
type PullForce struct {
	From, To BodyID
	Strength float64
}

// NewPullForce returns a pull from one body towards another.
func NewPullForce(from, to BodyID, strength float64) *PullForce {
	return &PullForce{From: from, To: to, Strength: strength}
}

func (f *PullForce) Direction(l Locator) vec.Vec2 {
	a, b, ok := endpoints(l, f.From, f.To)
	if !ok {
		return vec.Vec2{}
	}
	return unitOrZero(b.Sub(a))
}

func (f *PullForce) Magnitude(l Locator) float64 {
	a, b, ok := endpoints(l, f.From, f.To)
	if !ok {
		return 0
	}
	return f.Strength + b.Sub(a).Mag()
}

// RepulsionMode selects how a repulsion falls off with distance.
type RepulsionMode uint8

const (
	// RepulsionAdditive uses strength - distance. It turns into an attraction
	// once the distance exceeds the strength.
	RepulsionAdditive RepulsionMode = iota
	// RepulsionMultiplicative uses strength / distance.
	RepulsionMultiplicative
)

// RepulsionForce pushes From away from To.
type RepulsionForce struct {
	From, To BodyID
	Strength float64
	Mode     RepulsionMode
}

// NewRepulsionForce returns an additive repulsion of one body from another.
func NewRepulsionForce(from, to BodyID, strength float64) *RepulsionForce {
	return &RepulsionForce{From: from, To: to, Strength: strength}
}

func (f *RepulsionForce) Direction(l Locator) vec.Vec2 {
	a, b, ok := endpoints(l, f.From, f.To)
	if !ok {
		return vec.Vec2{}
	}
	return unitOrZero(a.Sub(b))
}

func (f *RepulsionForce) Magnitude(l Locator) float64 {
	a, b, ok := endpoints(l, f.From, f.To)
	if !ok {
		return 0
	}
	d := a.Sub(b).Mag()
	switch f.Mode {
	case RepulsionMultiplicative:
		if d == 0 {
			return 0
		}
		return f.Strength / d
	default:
		return f.Strength - d
	}
}

// ContactForce is a collision impulse that decays to zero.
//
// Once inert it stays in its body's force list and contributes nothing.
type ContactForce struct {
	dir       vec.Vec2
	mag       float64
	DecayRate float64
}

// NewContactForce returns a contact force decaying at rate per time unit.
func NewContactForce(direction vec.Vec2, magnitude, rate float64) *ContactForce {
	return &ContactForce{dir: direction, mag: magnitude, DecayRate: rate}
}

func (f *ContactForce) Direction(Locator) vec.Vec2 { return f.dir }
func (f *ContactForce) Magnitude(Locator) float64  { return f.mag }

// Update decays the magnitude by one tick.
func (f *ContactForce) Update(dt float64) {
	if f.mag == 0 {
		return
	}
	f.mag = Damp(f.mag, 0, f.DecayRate, dt)
	if f.mag <= ContactEpsilon {
		f.mag = 0
	}
}

// Inert reports whether the force has fully decayed.
func (f *ContactForce) Inert() bool {
	return f.mag == 0
}

func (f *ContactForce) String() string {
	return fmt.Sprintf("Contact(%v, %v)", f.dir, f.mag)
}
