package bounce_test

import (
	"testing"

	"github.com/setanarut/bounce"
	"github.com/setanarut/vec"
)

func twoBodies(a, b vec.Vec2) (*bounce.World, *bounce.Body, *bounce.Body) {
	w := bounce.NewWorld()
	ba := bounce.NewBody(1, a, vec.Vec2{})
	bb := bounce.NewBody(1, b, vec.Vec2{})
	w.AddBody(ba)
	w.AddBody(bb)
	return w, ba, bb
}

func TestPullRepulsionDirectionLaws(t *testing.T) {
	w, a, b := twoBodies(vec.Vec2{1, 2}, vec.Vec2{4, 6})
	toward := vec.Vec2{0.6, 0.8}
	away := vec.Vec2{-0.6, -0.8}

	for _, s := range []float64{0.5, 1, 5, 100} {
		pull := bounce.NewPullForce(a.ID(), b.ID(), s)
		if got := pull.Direction(w); !nearVec(got, toward) {
			t.Errorf("pull s=%v: got %v want %v", s, got, toward)
		}
		if got := pull.Magnitude(w); !near(got, s+5) {
			t.Errorf("pull s=%v magnitude: got %v want %v", s, got, s+5)
		}

		rep := bounce.NewRepulsionForce(a.ID(), b.ID(), s)
		if got := rep.Direction(w); !nearVec(got, away) {
			t.Errorf("repulsion s=%v: got %v want %v", s, got, away)
		}
		if got := rep.Magnitude(w); !near(got, s-5) {
			t.Errorf("repulsion s=%v magnitude: got %v want %v", s, got, s-5)
		}
	}
}

func TestAdditiveRepulsionFlipsToAttraction(t *testing.T) {
	_, a, b := twoBodies(vec.Vec2{0, 0}, vec.Vec2{30, 0})
	a.AddForce(bounce.NewRepulsionForce(a.ID(), b.ID(), 10))
	f := a.TotalForce()
	if f.X <= 0 {
		t.Errorf("expected a pull towards b past the strength distance, got %v", f)
	}
}

func TestMultiplicativeRepulsion(t *testing.T) {
	w, a, b := twoBodies(vec.Vec2{0, 0}, vec.Vec2{4, 0})
	rep := &bounce.RepulsionForce{From: a.ID(), To: b.ID(), Strength: 8, Mode: bounce.RepulsionMultiplicative}
	if got := rep.Magnitude(w); got != 2 {
		t.Errorf("got %v want 2", got)
	}

	w2, c, d := twoBodies(vec.Vec2{1, 1}, vec.Vec2{1, 1})
	rep = &bounce.RepulsionForce{From: c.ID(), To: d.ID(), Strength: 8, Mode: bounce.RepulsionMultiplicative}
	if got := rep.Magnitude(w2); got != 0 {
		t.Errorf("coincident bodies: got %v want 0", got)
	}
	c.AddForce(rep)
	if f := c.TotalForce(); f.X != 0 || f.Y != 0 {
		t.Errorf("coincident bodies: got %v want zero force", f)
	}
}

func TestForceOnStaleHandleIsInert(t *testing.T) {
	w, a, b := twoBodies(vec.Vec2{0, 0}, vec.Vec2{10, 0})
	pull := bounce.NewPullForce(a.ID(), b.ID(), 3)
	w.RemoveBody(b)
	if got := pull.Magnitude(w); got != 0 {
		t.Errorf("got %v want 0", got)
	}
	if got := pull.Direction(w); got != (vec.Vec2{}) {
		t.Errorf("got %v want zero", got)
	}
	if got := pull.Magnitude(nil); got != 0 {
		t.Errorf("nil locator: got %v want 0", got)
	}
}

func TestContactForceDecayConvergence(t *testing.T) {
	f := bounce.NewContactForce(vec.Vec2{0, -1}, 10, 1)
	prev := f.Magnitude(nil)
	ticks := 0
	for !f.Inert() {
		f.Update(0.1)
		ticks++
		m := f.Magnitude(nil)
		if m >= prev {
			t.Fatalf("tick %d: magnitude did not decrease (%v -> %v)", ticks, prev, m)
		}
		prev = m
		if ticks > 500 {
			t.Fatal("contact force never snapped to zero")
		}
	}
	if f.Magnitude(nil) != 0 {
		t.Errorf("got %v want exactly 0", f.Magnitude(nil))
	}
	// 10 * e^(-0.1 n) <= 1e-6 first holds at n = 162
	if ticks != 162 {
		t.Errorf("got %d ticks want 162", ticks)
	}
	f.Update(0.1)
	if f.Magnitude(nil) != 0 {
		t.Error("inert force came back to life")
	}
}

func TestGravity(t *testing.T) {
	g := bounce.Gravity(vec.Vec2{0, 9.8})
	if !nearVec(g.Direction(nil), vec.Vec2{0, 1}) {
		t.Errorf("got %v want (0, 1)", g.Direction(nil))
	}
	if !near(g.Magnitude(nil), 9.8) {
		t.Errorf("got %v want 9.8", g.Magnitude(nil))
	}
	if z := bounce.Gravity(vec.Vec2{}); z.Magnitude(nil) != 0 || z.Direction(nil) != (vec.Vec2{}) {
		t.Errorf("zero gravity: got %v", z)
	}
}
