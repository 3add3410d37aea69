package bounce

// Stepper runs a World at a fixed time step from variable frame times.
type Stepper struct {
	World *World
	// Dt is the fixed step handed to World.Step.
	Dt float64
	// MaxSteps caps the steps taken by one Advance so a long stall does not
	// spiral. Zero means no cap.
	MaxSteps int

	acc float64
}

// NewStepper returns a stepper for w running at hz steps per time unit.
func NewStepper(w *World, hz float64) *Stepper {
	return &Stepper{World: w, Dt: 1 / hz, MaxSteps: 8}
}

// Advance accumulates frame time and runs the whole steps it covers.
// It returns the number of steps taken.
func (s *Stepper) Advance(frame float64) int {
	if frame <= 0 || s.Dt <= 0 {
		return 0
	}
	s.acc += frame
	n := 0
	for s.acc >= s.Dt {
		if s.MaxSteps > 0 && n == s.MaxSteps {
			s.acc = 0
			break
		}
		s.World.Step(s.Dt)
		s.acc -= s.Dt
		n++
	}
	return n
}

// Alpha returns how far the accumulator is into the next step, in [0, 1).
func (s *Stepper) Alpha() float64 {
	if s.Dt <= 0 {
		return 0
	}
	return s.acc / s.Dt
}
