package bounce

import (
	"fmt"

	"github.com/setanarut/vec"
)

// ShapeConfig holds the parameters shared by every joint of an ElasticShape.
type ShapeConfig struct {
	// Mass of each joint.
	Mass float64
	// Damping is the friction coefficient of each joint.
	Damping float64
	// JointsAttraction is the strength of the pull between neighbours.
	JointsAttraction float64
	// JointsRepulsion is the strength of the repulsion between neighbours.
	JointsRepulsion float64
	// Closed links the last joint back to the first.
	Closed bool
	// JointRadius attaches a circle collider of this radius to every joint when positive.
	JointRadius float64
	// RepulsionMode of the neighbour repulsions.
	RepulsionMode RepulsionMode
}

// DefaultShapeConfig returns mass 0.05, damping 20, attraction 100, repulsion 100, open.
func DefaultShapeConfig() ShapeConfig {
	return ShapeConfig{
		Mass:             0.05,
		Damping:          20,
		JointsAttraction: 100,
		JointsRepulsion:  100,
	}
}

// Joint is a body acting as one vertex of an elastic shape.
type Joint struct {
	*Body
	neighbors []*Joint
}

// Neighbors returns the joints linked to j.
func (j *Joint) Neighbors() []*Joint {
	return j.neighbors
}

// addNeighbor links j and other with a pull and a repulsion on each side.
func (j *Joint) addNeighbor(other *Joint, cfg ShapeConfig) {
	j.neighbors = append(j.neighbors, other)
	other.neighbors = append(other.neighbors, j)

	j.AddForce(NewPullForce(j.id, other.id, cfg.JointsAttraction))
	j.AddForce(&RepulsionForce{From: j.id, To: other.id, Strength: cfg.JointsRepulsion, Mode: cfg.RepulsionMode})
	other.AddForce(NewPullForce(other.id, j.id, cfg.JointsAttraction))
	other.AddForce(&RepulsionForce{From: other.id, To: j.id, Strength: cfg.JointsRepulsion, Mode: cfg.RepulsionMode})
}

// ElasticShape is a chain or loop of joints held together by neighbour forces.
type ElasticShape struct {
	UserData any

	world  *World
	joints []*Joint
	links  [][2]int
	closed bool
	owner  updater
}

// NewElasticShape builds one joint per position inside w and links
// consecutive joints. A closed shape also links the last joint to the first.
//
// It returns ErrNoJoints without positions, ErrNonPositiveMass for
// cfg.Mass <= 0 and ErrOpenLoop for a closed shape of fewer than 3 joints,
// since two joints cannot form a cycle without linking the same pair twice.
// Nothing is added to w on error.
func NewElasticShape(w *World, positions []vec.Vec2, cfg ShapeConfig) (*ElasticShape, error) {
	if len(positions) == 0 {
		return nil, ErrNoJoints
	}
	if cfg.Mass <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNonPositiveMass, cfg.Mass)
	}
	if cfg.Closed && len(positions) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrOpenLoop, len(positions))
	}

	s := &ElasticShape{
		world:  w,
		joints: make([]*Joint, 0, len(positions)),
		closed: cfg.Closed,
	}
	s.owner = s
	for _, p := range positions {
		j := &Joint{Body: NewBody(cfg.Mass, p, vec.Vec2{})}
		j.Name = "joint"
		j.SetFriction(cfg.Damping)
		j.shape = s
		w.AddBody(j.Body)
		if cfg.JointRadius > 0 {
			NewCircleCollider(j.Body, cfg.JointRadius)
		}
		s.joints = append(s.joints, j)
	}

	for i := 1; i < len(s.joints); i++ {
		s.link(i-1, i, cfg)
	}
	if cfg.Closed {
		s.link(len(s.joints)-1, 0, cfg)
	}

	w.shapes = append(w.shapes, s)
	return s, nil
}

func (s *ElasticShape) link(i, k int, cfg ShapeConfig) {
	s.joints[i].addNeighbor(s.joints[k], cfg)
	s.links = append(s.links, [2]int{i, k})
}

// Update integrates every joint in list order.
//
// Each joint evaluates its forces inside its own update, so joints later in
// the list see the already integrated positions of earlier ones.
func (s *ElasticShape) Update(dt float64) {
	for _, j := range s.joints {
		j.Update(dt)
	}
}

// Joints returns the joints in chain order.
func (s *ElasticShape) Joints() []*Joint {
	return s.joints
}

// Links returns the index pairs of linked joints.
func (s *ElasticShape) Links() [][2]int {
	return s.links
}

// Closed reports whether the shape forms a loop.
func (s *ElasticShape) Closed() bool {
	return s.closed
}

// Kill marks every joint dead. Collision pairs of the joints stay registered
// until the owner unregisters them or removes the shape from the world.
func (s *ElasticShape) Kill() {
	for _, j := range s.joints {
		j.Kill()
	}
}

// Alive reports whether any joint is still alive.
func (s *ElasticShape) Alive() bool {
	for _, j := range s.joints {
		if j.state != Dead {
			return true
		}
	}
	return false
}

// BB returns the bounding box of the joint positions.
func (s *ElasticShape) BB() BB {
	p := s.joints[0].position
	bb := PointBB(p)
	for _, j := range s.joints[1:] {
		bb = bb.Expand(j.position)
	}
	return bb
}
