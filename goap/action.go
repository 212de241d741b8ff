package goap

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeCost is returned when an action is built with a cost below zero.
var ErrNegativeCost = errors.New("goap: action cost must not be negative")

// Action is an operator with preconditions and effects. It is immutable once built.
type Action struct {
	name          string
	preconditions WorldState
	effects       WorldState
	cost          float64
}

// NewAction copies preconditions and effects into a new Action.
func NewAction(name string, preconditions, effects []Token, cost float64) (*Action, error) {
	if cost < 0 || math.IsNaN(cost) {
		return nil, fmt.Errorf("%w: %q costs %v", ErrNegativeCost, name, cost)
	}
	action := &Action{name: name, cost: cost}
	for _, token := range preconditions {
		action.preconditions.Set(token)
	}
	for _, token := range effects {
		action.effects.Set(token)
	}
	return action, nil
}

func (action *Action) Name() string   { return action.name }
func (action *Action) Cost() float64  { return action.cost }
func (action *Action) String() string { return action.name }

// Preconditions returns a copy of the state the action requires.
func (action *Action) Preconditions() *WorldState { return action.preconditions.Clone() }

// Effects returns a copy of the state the action establishes.
func (action *Action) Effects() *WorldState { return action.effects.Clone() }
