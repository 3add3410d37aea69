package bounce_test

import (
	"errors"
	"math"
	"testing"

	"github.com/setanarut/bounce"
	"github.com/setanarut/vec"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func nearVec(a, b vec.Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestProperInterCrossing(t *testing.T) {
	p, ok := bounce.ProperInter(vec.Vec2{0, 0}, vec.Vec2{1, 1}, vec.Vec2{0.5, 1}, vec.Vec2{0.5, -1})
	if !ok {
		t.Fatal("expected segments to cross")
	}
	if !nearVec(p, vec.Vec2{0.5, 0.5}) {
		t.Errorf("got %v want (0.5, 0.5)", p)
	}

	_, ok = bounce.ProperInter(vec.Vec2{25, 526}, vec.Vec2{62, 424}, vec.Vec2{4, 454}, vec.Vec2{307, 462})
	if !ok {
		t.Error("expected trampoline chord to cross")
	}
}

func TestProperInterRejectsNonTransversal(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d vec.Vec2
	}{
		{"parallel", vec.Vec2{0, 0}, vec.Vec2{1, 0}, vec.Vec2{0, 1}, vec.Vec2{1, 1}},
		{"collinear overlap", vec.Vec2{0, 0}, vec.Vec2{2, 0}, vec.Vec2{1, 0}, vec.Vec2{3, 0}},
		{"touching endpoint", vec.Vec2{0, 0}, vec.Vec2{1, 1}, vec.Vec2{1, 1}, vec.Vec2{2, 0}},
		{"t junction", vec.Vec2{0, 0}, vec.Vec2{2, 0}, vec.Vec2{1, 0}, vec.Vec2{1, 5}},
		{"apart", vec.Vec2{0, 0}, vec.Vec2{1, 1}, vec.Vec2{5, 0}, vec.Vec2{6, -3}},
	}
	for _, tc := range cases {
		if _, ok := bounce.ProperInter(tc.a, tc.b, tc.c, tc.d); ok {
			t.Errorf("%s: expected no intersection", tc.name)
		}
	}
}

func TestSegPointDistance(t *testing.T) {
	a := vec.Vec2{0, 0}
	b := vec.Vec2{10, 0}
	cases := []struct {
		p    vec.Vec2
		want float64
	}{
		{vec.Vec2{5, 3}, 3},
		{vec.Vec2{5, -2}, 2},
		{vec.Vec2{-3, 4}, 5},
		{vec.Vec2{13, 4}, 5},
		{vec.Vec2{0, 7}, 7},
	}
	for _, tc := range cases {
		if got := bounce.SegPointDistance(a, b, tc.p); !near(got, tc.want) {
			t.Errorf("distance to %v: got %v want %v", tc.p, got, tc.want)
		}
	}
	// degenerate segment falls back to point distance
	if got := bounce.SegPointDistance(a, a, vec.Vec2{3, 4}); !near(got, 5) {
		t.Errorf("got %v want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	u, err := bounce.Normalize(vec.Vec2{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if !nearVec(u, vec.Vec2{0.6, 0.8}) {
		t.Errorf("got %v want (0.6, 0.8)", u)
	}

	u, err = bounce.Normalize(vec.Vec2{})
	if !errors.Is(err, bounce.ErrDegenerateVector) {
		t.Errorf("got %v want ErrDegenerateVector", err)
	}
	if math.IsNaN(u.X) || math.IsNaN(u.Y) {
		t.Error("degenerate normalize produced NaN")
	}
}

func TestRotate(t *testing.T) {
	if got := bounce.Rotate(vec.Vec2{1, 0}, math.Pi/2); !nearVec(got, vec.Vec2{0, 1}) {
		t.Errorf("got %v want (0, 1)", got)
	}
	if got := bounce.RotateAbout(vec.Vec2{2, 1}, vec.Vec2{1, 1}, math.Pi); !nearVec(got, vec.Vec2{0, 1}) {
		t.Errorf("got %v want (0, 1)", got)
	}
}

func TestOrient(t *testing.T) {
	o := vec.Vec2{}
	if bounce.Orient(o, vec.Vec2{1, 0}, vec.Vec2{0, 1}) <= 0 {
		t.Error("expected left turn")
	}
	if bounce.Orient(o, vec.Vec2{1, 0}, vec.Vec2{0, -1}) >= 0 {
		t.Error("expected right turn")
	}
	if bounce.Orient(o, vec.Vec2{1, 1}, vec.Vec2{2, 2}) != 0 {
		t.Error("expected collinear")
	}
}

func TestLerpDamp(t *testing.T) {
	if got := bounce.Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("got %v want 2.5", got)
	}
	if got := bounce.Damp(10, 0, 3, 0); got != 10 {
		t.Errorf("zero dt: got %v want 10", got)
	}
	want := 10 * math.Exp(-0.5)
	if got := bounce.Damp(10, 0, 5, 0.1); !near(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
	// two half steps equal one full step
	half := bounce.Damp(bounce.Damp(10, 0, 5, 0.05), 0, 5, 0.05)
	if !near(half, want) {
		t.Errorf("damp is not frame-rate independent: %v vs %v", half, want)
	}
	v := bounce.DampVec(vec.Vec2{10, -10}, vec.Vec2{}, 5, 0.1)
	if !nearVec(v, vec.Vec2{want, -want}) {
		t.Errorf("got %v", v)
	}
}
