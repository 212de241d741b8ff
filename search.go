package astar

import (
	"container/heap"
	"errors"

	"github.com/pdrpinto/astar/internal"
)

// ErrBudgetExhausted is returned when a search hits its expansion limit before finishing.
var ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

// search holds the per-call state shared by Engine and Stepper.
// Nodes live in an arena; back-pointers are arena indices.
type search struct {
	graph         Map
	maxExpansions int

	nodes     []*Node
	openSet   PriorityQueue
	closedSet []int

	current  int
	expanded int
	done     bool
	found    bool
}

func (s *search) reset(start, goal State, graph Map) error {
	clear(s.nodes)
	s.nodes = s.nodes[:0]
	clear(s.openSet)
	s.openSet = s.openSet[:0]
	s.closedSet = s.closedSet[:0]
	s.graph = graph
	s.current = noParent
	s.expanded = 0
	s.done = false
	s.found = false

	startNode, err := NewNode(start, goal, 0, graph)
	if err != nil {
		s.done = true
		return err
	}
	startNode.GScore = 0
	s.insert(startNode)
	return nil
}

func (s *search) insert(node *Node) {
	node.id = len(s.nodes)
	s.nodes = append(s.nodes, node)
	heap.Push(&s.openSet, node)
}

func (s *search) isClosed(node *Node) bool {
	for _, id := range s.closedSet {
		if s.nodes[id].Equivalent(node) {
			return true
		}
	}
	return false
}

// step pops the best frontier node and either finishes on it or expands it.
func (s *search) step() error {
	if s.done {
		return nil
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return nil
	}

	currentNode := heap.Pop(&s.openSet).(*Node)
	s.current = currentNode.id

	// Goal check
	if currentNode.Goal.SatisfiedBy(currentNode.State) {
		s.done = true
		s.found = true
		return nil
	}
	if s.maxExpansions > 0 && s.expanded >= s.maxExpansions {
		s.done = true
		return ErrBudgetExhausted
	}

	s.closedSet = append(s.closedSet, currentNode.id)
	s.expanded++

	for neighbor, err := range s.graph.Neighbors(currentNode) {
		if err != nil {
			s.done = true
			return err
		}
		if s.isClosed(neighbor) {
			continue
		}
		tentativeG := currentNode.GScore + neighbor.Cost
		existing := s.openSet.find(neighbor)
		if existing == nil {
			neighbor.GScore = tentativeG
			neighbor.parent = currentNode.id
			s.insert(neighbor)
			continue
		}
		if tentativeG >= existing.GScore {
			continue
		}
		existing.parent = currentNode.id
		existing.GScore = tentativeG
		heap.Fix(&s.openSet, existing.indexInQueue)
	}
	return nil
}

func (s *search) path() []State {
	if !s.found {
		return nil
	}
	ids := internal.ReconstructPath(func(id int) int { return s.nodes[id].parent }, s.current)
	path := make([]State, len(ids))
	for i, id := range ids {
		path[i] = s.nodes[id].State
	}
	return path
}

func (s *search) result() Result {
	result := Result{
		ExpandedNodes: s.expanded,
		Found:         s.found,
	}
	if s.found {
		result.Path = s.path()
		result.TotalCost = s.nodes[s.current].GScore
	}
	return result
}
