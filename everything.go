package bounce

import (
	"errors"
	"math"
)

const (
	// ContactEpsilon is the magnitude below which a decaying contact force snaps to zero.
	ContactEpsilon float64 = 1e-6

	// DefaultContactForceFactor scales the impulse injected by a registered pair.
	DefaultContactForceFactor float64 = 300

	// DefaultContactDecay is the exponential decay rate of injected contact forces.
	DefaultContactDecay float64 = 8

	twoPi = 2 * math.Pi
)

// BodyState is the lifecycle state of a body.
type BodyState uint8

const (
	Alive BodyState = iota
	Asleep
	Dead
)

func (s BodyState) String() string {
	switch s {
	case Alive:
		return "alive"
	case Asleep:
		return "asleep"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

var (
	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("bounce: degenerate vector")
	// ErrNoJoints is returned when a shape is built without joint positions.
	ErrNoJoints = errors.New("bounce: shape needs at least one joint")
	// ErrNonPositiveMass is returned when a shape is configured with mass <= 0.
	ErrNonPositiveMass = errors.New("bounce: mass must be positive")
	// ErrOpenLoop is returned when a closed shape has too few joints to form a cycle.
	ErrOpenLoop = errors.New("bounce: closed shape needs at least 3 joints")
)
