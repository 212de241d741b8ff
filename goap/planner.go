package goap

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/pdrpinto/astar"
)

// Planner is the astar.Map for action planning. Starting from the current
// world state it picks actions that produce unsatisfied goal tokens, applies
// their effects to the state and adds their preconditions to the goal.
type Planner struct {
	actions       []*Action
	effectActions map[Token][]*Action

	logger        *slog.Logger
	engineOptions []astar.Option
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used by the planner and its searches.
func WithLogger(logger *slog.Logger) Option {
	return func(planner *Planner) { planner.logger = logger }
}

// WithEngineOptions passes options to the engine used by Plan.
func WithEngineOptions(options ...astar.Option) Option {
	return func(planner *Planner) {
		planner.engineOptions = append(planner.engineOptions, options...)
	}
}

// NewPlanner returns a Planner with no actions.
func NewPlanner(options ...Option) *Planner {
	planner := &Planner{effectActions: make(map[Token][]*Action)}
	for _, option := range options {
		option(planner)
	}
	if planner.logger == nil {
		planner.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return planner
}

// AddAction indexes action under every token of its effects.
func (planner *Planner) AddAction(action *Action) {
	planner.actions = append(planner.actions, action)
	for _, token := range action.effects.Tokens() {
		planner.effectActions[token] = append(planner.effectActions[token], action)
	}
}

// Actions returns the registered actions in insertion order.
func (planner *Planner) Actions() []*Action {
	return append([]*Action(nil), planner.actions...)
}

// ActionsFor returns the actions whose effects include token.
func (planner *Planner) ActionsFor(token Token) []*Action {
	return append([]*Action(nil), planner.effectActions[token]...)
}

func planningStates(node *astar.Node) (current, goal *PlanningState, err error) {
	current, ok := node.State.(*PlanningState)
	if !ok {
		return nil, nil, fmt.Errorf("%w: state is %T, want *goap.PlanningState", astar.ErrStateMismatch, node.State)
	}
	goal, ok = node.Goal.(*PlanningState)
	if !ok {
		return nil, nil, fmt.Errorf("%w: goal is %T, want *goap.PlanningState", astar.ErrStateMismatch, node.Goal)
	}
	return current, goal, nil
}

// Heuristic returns the token difference between the node's state and goal.
func (planner *Planner) Heuristic(node *astar.Node) (float64, error) {
	current, goal, err := planningStates(node)
	if err != nil {
		return 0, err
	}
	return current.World.DifferenceFrom(goal.World), nil
}

// Neighbors yields one node per unsatisfied goal token and action producing it.
// A token no action produces contributes nothing.
func (planner *Planner) Neighbors(node *astar.Node) iter.Seq2[*astar.Node, error] {
	return func(yield func(*astar.Node, error) bool) {
		current, goal, err := planningStates(node)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, token := range unsatisfied(current.World, goal.World) {
			candidates := planner.effectActions[token]
			if len(candidates) == 0 {
				planner.logger.Debug("no action produces token", "token", token.String())
				continue
			}
			for _, action := range candidates {
				next := current.clone()
				next.LastAction = action
				next.World.Apply(&action.effects)

				regressed := goal.clone()
				regressed.World.Apply(&action.preconditions)

				neighbor, err := astar.NewNode(next, regressed, action.cost, planner)
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
}

// unsatisfied lists the goal tokens current lacks or holds with another value.
func unsatisfied(current, goal *WorldState) []Token {
	var tokens []Token
	for _, token := range goal.Tokens() {
		if value, ok := current.Value(token.Name); !ok || value != token.Value {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
