// Package nav searches weighted waypoint graphs with the astar engine.
package nav

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/pdrpinto/astar"
)

// Tolerance is the distance under which two waypoints are the same place.
const Tolerance = 0.03

// Point is a position on the plane.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance between two points.
func (point Point) Distance(other Point) float64 {
	return math.Hypot(point.X-other.X, point.Y-other.Y)
}

// Edge is a directed, weighted link to another waypoint.
type Edge struct {
	To     *Waypoint
	Weight float64
}

// Waypoint is a graph node at a position and implements astar.State.
type Waypoint struct {
	Name     string
	Position Point
	Edges    []Edge
}

// NewWaypoint creates an unconnected waypoint.
func NewWaypoint(name string, x, y float64) *Waypoint {
	return &Waypoint{Name: name, Position: Point{X: x, Y: y}}
}

// Connect adds a directed edge from waypoint to to.
func (waypoint *Waypoint) Connect(to *Waypoint, weight float64) {
	waypoint.Edges = append(waypoint.Edges, Edge{To: to, Weight: weight})
}

// EqualState reports whether other is a waypoint within Tolerance.
func (waypoint *Waypoint) EqualState(other astar.State) bool {
	otherWaypoint, ok := other.(*Waypoint)
	return ok && waypoint.Position.Distance(otherWaypoint.Position) < Tolerance
}

// SatisfiedBy is EqualState: reaching the goal means standing close enough to it.
func (waypoint *Waypoint) SatisfiedBy(other astar.State) bool {
	return waypoint.EqualState(other)
}

// Clone copies the waypoint and its edge list; edge targets stay shared graph nodes.
func (waypoint *Waypoint) Clone() astar.State {
	return &Waypoint{Name: waypoint.Name, Position: waypoint.Position, Edges: slices.Clone(waypoint.Edges)}
}

func (waypoint *Waypoint) String() string {
	if waypoint.Name == "" {
		return fmt.Sprintf("(%g, %g)", waypoint.Position.X, waypoint.Position.Y)
	}
	return fmt.Sprintf("%s(%g, %g)", waypoint.Name, waypoint.Position.X, waypoint.Position.Y)
}

// Mesh is the astar.Map over waypoints with a straight-line heuristic.
type Mesh struct {
	Waypoints []*Waypoint
}

// Add creates a waypoint and registers it with the mesh.
func (mesh *Mesh) Add(name string, x, y float64) *Waypoint {
	waypoint := NewWaypoint(name, x, y)
	mesh.Waypoints = append(mesh.Waypoints, waypoint)
	return waypoint
}

// Find returns the waypoint with the given name, or nil.
func (mesh *Mesh) Find(name string) *Waypoint {
	for _, waypoint := range mesh.Waypoints {
		if waypoint.Name == name {
			return waypoint
		}
	}
	return nil
}

func waypoints(node *astar.Node) (current, goal *Waypoint, err error) {
	current, ok := node.State.(*Waypoint)
	if !ok {
		return nil, nil, fmt.Errorf("%w: state is %T, want *nav.Waypoint", astar.ErrStateMismatch, node.State)
	}
	goal, ok = node.Goal.(*Waypoint)
	if !ok {
		return nil, nil, fmt.Errorf("%w: goal is %T, want *nav.Waypoint", astar.ErrStateMismatch, node.Goal)
	}
	return current, goal, nil
}

// Heuristic returns the straight-line distance to the goal.
func (mesh *Mesh) Heuristic(node *astar.Node) (float64, error) {
	current, goal, err := waypoints(node)
	if err != nil {
		return 0, err
	}
	return current.Position.Distance(goal.Position), nil
}

// Neighbors yields one node per outgoing edge, all pursuing the same goal.
func (mesh *Mesh) Neighbors(node *astar.Node) iter.Seq2[*astar.Node, error] {
	return func(yield func(*astar.Node, error) bool) {
		current, _, err := waypoints(node)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, edge := range current.Edges {
			neighbor, err := astar.NewNode(edge.To, node.Goal, edge.Weight, mesh)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(neighbor, nil) {
				return
			}
		}
	}
}

// Route is a found path through the mesh.
type Route struct {
	Waypoints []*Waypoint
	Cost      float64
	Found     bool
}

// Route searches for the cheapest path from start to goal.
func (mesh *Mesh) Route(start, goal *Waypoint, options ...astar.Option) (Route, error) {
	result, err := astar.FindSolution(start, goal, mesh, options...)
	if err != nil {
		return Route{}, err
	}
	route := Route{Cost: result.TotalCost, Found: result.Found}
	for _, state := range result.Path {
		route.Waypoints = append(route.Waypoints, state.(*Waypoint))
	}
	return route, nil
}
