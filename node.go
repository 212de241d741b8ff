package astar

import (
	"errors"
	"iter"
	"math"
)

// ErrStateMismatch is returned by a Map asked to score a state variant it does not handle.
var ErrStateMismatch = errors.New("astar: mismatched state types")

const noParent = -1

// State is anything the engine can search over: a waypoint, a world-state snapshot, ...
type State interface {
	// EqualState reports whether other represents the same state.
	// It is the only identity test used for open and closed set membership.
	EqualState(other State) bool
	// SatisfiedBy reports whether other satisfies this state when it is used as a goal.
	SatisfiedBy(other State) bool
	// Clone returns a copy sharing no mutable data with the receiver.
	Clone() State
}

// Map binds the engine to a domain.
type Map interface {
	// Heuristic estimates the remaining cost from node.State to node.Goal.
	Heuristic(node *Node) (float64, error)
	// Neighbors lazily yields the successors of node. Each successor carries
	// its own edge cost and goal, and a heuristic computed through the Map.
	Neighbors(node *Node) iter.Seq2[*Node, error]
}

// Node pairs a state with the goal being pursued from it.
// The goal is part of the node identity since a Map may change it per branch.
type Node struct {
	State     State
	Goal      State
	Cost      float64
	Heuristic float64
	GScore    float64

	id           int
	parent       int
	indexInQueue int
}

// NewNode builds a node reached at the given edge cost and scores it with m.
// GScore stays at +Inf until the engine relaxes the node.
func NewNode(state, goal State, cost float64, m Map) (*Node, error) {
	node := &Node{
		State:        state,
		Goal:         goal,
		Cost:         cost,
		GScore:       math.Inf(1),
		id:           noParent,
		parent:       noParent,
		indexInQueue: -1,
	}
	heuristic, err := m.Heuristic(node)
	if err != nil {
		return nil, err
	}
	node.Heuristic = heuristic
	return node, nil
}

// FScore is always GScore + Heuristic.
func (node *Node) FScore() float64 { return node.GScore + node.Heuristic }

// Equivalent reports whether both nodes hold equal states pursuing equal goals.
func (node *Node) Equivalent(other *Node) bool {
	return node.State.EqualState(other.State) && node.Goal.EqualState(other.Goal)
}
