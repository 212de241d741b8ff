// Package goap implements Goal-Oriented Action Planning on top of the astar engine.
//
// World states are sets of named boolean tokens. Actions carry preconditions,
// effects and a cost; a Planner indexes them by effect and acts as the
// astar.Map. Each expansion applies an action's effects to the current state
// and regresses the goal by adding the action's preconditions to it, so a
// branch finishes once its state satisfies its own, grown, goal.
//
// The heuristic is WorldState.DifferenceFrom, a token count. It ignores action
// costs and is not admissible: the plans returned are valid but not always the
// cheapest ones.
package goap
