package bounce

import (
	"math"

	"github.com/setanarut/vec"
)

// Normalize returns the unit vector of v.
//
// A zero-length vector has no direction; ErrDegenerateVector is returned
// together with the zero vector instead of a NaN vector.
func Normalize(v vec.Vec2) (vec.Vec2, error) {
	if v.X == 0 && v.Y == 0 {
		return vec.Vec2{}, ErrDegenerateVector
	}
	return v.Scale(1 / v.Mag()), nil
}

// unitOrZero is Normalize with the zero vector as the degenerate direction.
func unitOrZero(v vec.Vec2) vec.Vec2 {
	u, err := Normalize(v)
	if err != nil {
		return vec.Vec2{}
	}
	return u
}

// Rotate rotates v counter-clockwise by angle radians around the origin.
func Rotate(v vec.Vec2, angle float64) vec.Vec2 {
	return v.RotateComplex(vec.ForAngle(angle))
}

// RotateAbout rotates v by angle radians around pivot.
func RotateAbout(v, pivot vec.Vec2, angle float64) vec.Vec2 {
	return pivot.Add(Rotate(v.Sub(pivot), angle))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Damp moves current towards target with frame-rate independent exponential smoothing.
func Damp(current, target, rate, dt float64) float64 {
	return Lerp(current, target, 1-math.Exp(-rate*dt))
}

// DampVec is Damp applied to both components of a vector.
func DampVec(current, target vec.Vec2, rate, dt float64) vec.Vec2 {
	return current.Lerp(target, 1-math.Exp(-rate*dt))
}

// Orient returns the cross product of b-a and c-a.
//
// Positive for a left turn, negative for a right turn, zero when collinear.
func Orient(a, b, c vec.Vec2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// SegPointDistance returns the distance from p to the segment ab.
func SegPointDistance(a, b, p vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if ab.Dot(ap) > 0 && ab.Dot(p.Sub(b)) < 0 {
		return math.Abs(ab.Cross(ap)) / ab.Mag()
	}
	return math.Min(ap.Mag(), p.Sub(b).Mag())
}

// ProperInter returns the crossing point of segments ab and cd.
//
// Only strict transversal crossings count. Touching, collinear and parallel
// segments report false.
func ProperInter(a, b, c, d vec.Vec2) (vec.Vec2, bool) {
	oa := Orient(c, d, a)
	ob := Orient(c, d, b)
	oc := Orient(a, b, c)
	od := Orient(a, b, d)
	if oa*ob < 0 && oc*od < 0 {
		return a.Scale(ob).Sub(b.Scale(oa)).Scale(1 / (ob - oa)), true
	}
	return vec.Vec2{}, false
}
