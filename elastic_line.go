package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// LineConfig configures an ElasticLine.
type LineConfig struct {
	ShapeConfig
	// Joints is the number of joints including both pinned ends. At least 2.
	Joints int
	// LockX and LockY toggle the axis locks of every joint at construction.
	LockX, LockY bool
}

// DefaultLineConfig returns DefaultShapeConfig with 10 joints and no locks.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		ShapeConfig: DefaultShapeConfig(),
		Joints:      10,
	}
}

// ElasticLine is an open elastic shape pinned at both ends, like a trampoline.
//
// Every span between two consecutive joints carries a segment collider on
// its first joint. The segments follow the joints after each update.
type ElasticLine struct {
	*ElasticShape
	spans []*Segment
}

// NewElasticLine stretches cfg.Joints evenly spaced joints from a to b.
//
// The spans are the colliders of a line; cfg.Closed and cfg.JointRadius are ignored.
func NewElasticLine(w *World, a, b vec.Vec2, cfg LineConfig) (*ElasticLine, error) {
	if cfg.Joints < 2 {
		return nil, fmt.Errorf("bounce: elastic line needs at least 2 joints, got %d", cfg.Joints)
	}
	positions := make([]vec.Vec2, cfg.Joints)
	for i := range cfg.Joints {
		positions[i] = a.Lerp(b, float64(i)/float64(cfg.Joints-1))
	}

	sc := cfg.ShapeConfig
	sc.Closed = false
	sc.JointRadius = 0
	shape, err := NewElasticShape(w, positions, sc)
	if err != nil {
		return nil, err
	}

	line := &ElasticLine{ElasticShape: shape}
	shape.owner = line

	for _, j := range shape.joints {
		if cfg.LockX {
			j.ToggleX()
		}
		if cfg.LockY {
			j.ToggleY()
		}
	}
	for _, end := range []*Joint{shape.joints[0], shape.joints[len(shape.joints)-1]} {
		end.fixed = true
		end.ClearForces()
	}

	for i := 0; i < len(shape.joints)-1; i++ {
		j := shape.joints[i]
		j.Name = "span"
		c := NewSegmentCollider(j.Body, j.position, shape.joints[i+1].position)
		line.spans = append(line.spans, c.Class.(*Segment))
	}
	return line, nil
}

// Update integrates the joints and re-aims the span segments.
func (line *ElasticLine) Update(dt float64) {
	line.ElasticShape.Update(dt)
	line.refreshSpans()
}

func (line *ElasticLine) refreshSpans() {
	for i, seg := range line.spans {
		seg.SetEndpoints(line.joints[i].position, line.joints[i+1].position)
	}
}

// Spans returns the segment colliders between consecutive joints.
func (line *ElasticLine) Spans() []*Segment {
	return line.spans
}

// Ends returns the two pinned joints.
func (line *ElasticLine) Ends() (*Joint, *Joint) {
	return line.joints[0], line.joints[len(line.joints)-1]
}
