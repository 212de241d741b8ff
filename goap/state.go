package goap

import "github.com/pdrpinto/astar"

// PlanningState is a world-state snapshot plus the action that produced it.
// LastAction is nil for the initial state.
type PlanningState struct {
	World      *WorldState
	LastAction *Action
}

// NewPlanningState wraps a copy of world.
func NewPlanningState(world *WorldState) *PlanningState {
	return &PlanningState{World: world.Clone()}
}

// EqualState reports whether other is a PlanningState with exactly the same tokens.
func (state *PlanningState) EqualState(other astar.State) bool {
	otherState, ok := other.(*PlanningState)
	return ok && state.World.Equal(otherState.World)
}

// SatisfiedBy reports whether other holds every token this state requires.
func (state *PlanningState) SatisfiedBy(other astar.State) bool {
	otherState, ok := other.(*PlanningState)
	return ok && state.World.SatisfiedBy(otherState.World)
}

func (state *PlanningState) Clone() astar.State { return state.clone() }

func (state *PlanningState) clone() *PlanningState {
	return &PlanningState{World: state.World.Clone(), LastAction: state.LastAction}
}

func (state *PlanningState) String() string {
	if state.LastAction == nil {
		return state.World.String()
	}
	return state.LastAction.name + " " + state.World.String()
}
