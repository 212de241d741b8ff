package goap

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/astar"
)

var (
	// ErrPreconditionUnmet is returned by Plan.Validate when a step cannot run.
	ErrPreconditionUnmet = errors.New("goap: action precondition unmet")
	// ErrGoalUnmet is returned by Plan.Validate when the plan ends short of the goal.
	ErrGoalUnmet = errors.New("goap: goal unmet after plan")
)

// Plan is a sequence of actions in execution order.
// Found is false when no sequence of actions reaches the goal.
type Plan struct {
	Actions       []*Action
	Cost          float64
	ExpandedNodes int
	Found         bool
}

// Plan searches for the actions turning start into a state satisfying goal.
func (planner *Planner) Plan(start, goal *WorldState) (Plan, error) {
	options := append([]astar.Option{astar.WithLogger(planner.logger)}, planner.engineOptions...)
	result, err := astar.NewEngine(options...).FindSolution(NewPlanningState(start), NewPlanningState(goal), planner)
	if err != nil {
		return Plan{}, err
	}
	plan := PlanFromResult(result)
	planner.logger.Debug("plan finished", "found", plan.Found, "actions", plan.Names(), "cost", plan.Cost)
	return plan, nil
}

// PlanFromResult converts a planning search result into execution order.
// The search regresses from the goal, so the last action found runs first.
func PlanFromResult(result astar.Result) Plan {
	plan := Plan{
		Cost:          result.TotalCost,
		ExpandedNodes: result.ExpandedNodes,
		Found:         result.Found,
	}
	for i := len(result.Path) - 1; i >= 0; i-- {
		state, ok := result.Path[i].(*PlanningState)
		if !ok || state.LastAction == nil {
			continue
		}
		plan.Actions = append(plan.Actions, state.LastAction)
	}
	return plan
}

// Names returns the action names in execution order.
func (plan Plan) Names() []string {
	names := make([]string, len(plan.Actions))
	for i, action := range plan.Actions {
		names[i] = action.name
	}
	return names
}

// Validate replays the plan forward from start, checking every precondition
// and that the final state satisfies goal.
func (plan Plan) Validate(start, goal *WorldState) error {
	world := start.Clone()
	for i, action := range plan.Actions {
		if !action.preconditions.SatisfiedBy(world) {
			return fmt.Errorf("%w: step %d %q needs %s, world is %s",
				ErrPreconditionUnmet, i, action.name, &action.preconditions, world)
		}
		world.Apply(&action.effects)
	}
	if !goal.SatisfiedBy(world) {
		return fmt.Errorf("%w: want %s, world is %s", ErrGoalUnmet, goal, world)
	}
	return nil
}
