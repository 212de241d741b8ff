// Package astar provides a generic A* search engine decoupled from any domain.
//
// The engine only talks to a domain through two contracts:
//
//   - State: identity, goal satisfaction and cloning.
//   - Map: heuristic estimates and lazy neighbor expansion.
//
// Each search node carries its own goal, which lets a Map rewrite the goal
// per branch. The goap package uses this to regress action preconditions
// backwards through a plan; the nav package searches plain waypoint graphs.
//
// It exposes two main entry points:
//
//   - Engine.FindSolution: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
package astar
