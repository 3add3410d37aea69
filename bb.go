package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// BB is an axis-aligned bounding box. Min holds the smaller coordinates.
type BB struct {
	Min, Max vec.Vec2
}

// NewBB returns the box spanning [l, r] horizontally and [b, t] vertically.
func NewBB(l, b, r, t float64) BB {
	return BB{Min: vec.Vec2{X: l, Y: b}, Max: vec.Vec2{X: r, Y: t}}
}

// PointBB returns the empty box at p.
func PointBB(p vec.Vec2) BB {
	return BB{Min: p, Max: p}
}

// CircleBB returns the box around a circle.
func CircleBB(center vec.Vec2, r float64) BB {
	half := vec.Vec2{X: r, Y: r}
	return BB{Min: center.Sub(half), Max: center.Add(half)}
}

// SegmentBB returns the box around the segment ab.
func SegmentBB(a, b vec.Vec2) BB {
	return PointBB(a).Expand(b)
}

func (bb BB) String() string {
	return fmt.Sprintf("[%v %v]", bb.Min, bb.Max)
}

// Intersects reports whether the boxes overlap. Touching edges count.
func (bb BB) Intersects(o BB) bool {
	return bb.Min.X <= o.Max.X && o.Min.X <= bb.Max.X &&
		bb.Min.Y <= o.Max.Y && o.Min.Y <= bb.Max.Y
}

// Contains reports whether o lies inside bb.
func (bb BB) Contains(o BB) bool {
	return bb.ContainsVect(o.Min) && bb.ContainsVect(o.Max)
}

// ContainsVect reports whether v lies inside bb or on its edge.
func (bb BB) ContainsVect(v vec.Vec2) bool {
	return bb.Min.X <= v.X && v.X <= bb.Max.X && bb.Min.Y <= v.Y && v.Y <= bb.Max.Y
}

// Merge returns the smallest box holding both.
func (bb BB) Merge(o BB) BB {
	return bb.Expand(o.Min).Expand(o.Max)
}

// Expand grows bb to hold v.
func (bb BB) Expand(v vec.Vec2) BB {
	return BB{
		Min: vec.Vec2{X: min(bb.Min.X, v.X), Y: min(bb.Min.Y, v.Y)},
		Max: vec.Vec2{X: max(bb.Max.X, v.X), Y: max(bb.Max.Y, v.Y)},
	}
}

// Grow pads every side by d.
func (bb BB) Grow(d float64) BB {
	pad := vec.Vec2{X: d, Y: d}
	return BB{Min: bb.Min.Sub(pad), Max: bb.Max.Add(pad)}
}

func (bb BB) Center() vec.Vec2 {
	return bb.Min.Lerp(bb.Max, 0.5)
}

func (bb BB) Size() vec.Vec2 {
	return bb.Max.Sub(bb.Min)
}
