package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const campfireYAML = `
actions:
  - name: chop_wood
    cost: 10
    effects: {has_wood: true}
  - name: build_fire
    cost: 10
    preconditions: {has_wood: true}
    effects: {has_fire: true}
start: {}
goal: {has_fire: true}
`

func TestDecodePlanning(t *testing.T) {
	problem, err := DecodePlanning(strings.NewReader(campfireYAML))
	require.NoError(t, err)
	require.Len(t, problem.Actions, 2)
	assert.Equal(t, "build_fire", problem.Actions[1].Name)
	assert.Equal(t, map[string]bool{"has_wood": true}, problem.Actions[1].Preconditions)

	planner, start, goal, err := problem.Build()
	require.NoError(t, err)
	assert.Zero(t, start.Len())

	plan, err := planner.Plan(start, goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"chop_wood", "build_fire"}, plan.Names())
	assert.Equal(t, 20.0, plan.Cost)
}

func TestDecodePlanning_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "no actions", yaml: "goal: {a: true}\n"},
		{name: "no goal", yaml: "actions:\n  - {name: x, cost: 1, effects: {a: true}}\n"},
		{name: "negative cost", yaml: "actions:\n  - {name: x, cost: -1, effects: {a: true}}\ngoal: {a: true}\n"},
		{name: "unnamed action", yaml: "actions:\n  - {cost: 1, effects: {a: true}}\ngoal: {a: true}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePlanning(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecodePlanning_ActionWithoutEffects(t *testing.T) {
	problem, err := DecodePlanning(strings.NewReader("actions:\n  - {name: wait, cost: 1}\ngoal: {a: true}\n"))
	require.NoError(t, err)

	planner, start, goal, err := problem.Build()
	require.NoError(t, err)
	require.Len(t, planner.Actions(), 1)
	assert.Zero(t, planner.Actions()[0].Effects().Len())

	plan, err := planner.Plan(start, goal)
	require.NoError(t, err)
	assert.False(t, plan.Found)
}

func TestDecodePlanning_UnknownField(t *testing.T) {
	_, err := DecodePlanning(strings.NewReader("actions: []\ngoals: {a: true}\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

const crossroadsYAML = `
waypoints:
  - {name: a, x: 0, y: 0}
  - {name: b, x: 2, y: 2}
  - {name: g, x: 3, y: 0}
  - {name: f, x: 6, y: 4}
edges:
  - {from: a, to: b, weight: 3}
  - {from: b, to: g, weight: 3}
  - {from: g, to: f, weight: 5}
start: a
goal: f
`

func TestLoadNavigation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crossroads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(crossroadsYAML), 0o644))

	problem, err := LoadNavigation(path)
	require.NoError(t, err)
	mesh, start, goal, err := problem.Build()
	require.NoError(t, err)
	assert.Len(t, mesh.Waypoints, 4)
	assert.Equal(t, "a", start.Name)
	assert.Equal(t, "f", goal.Name)

	route, err := mesh.Route(start, goal)
	require.NoError(t, err)
	require.True(t, route.Found)
	assert.Equal(t, 11.0, route.Cost)
}

func TestNavigationBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		problem Navigation
		want    error
	}{
		{
			name: "duplicate waypoint",
			problem: Navigation{
				Waypoints: []Waypoint{{Name: "a"}, {Name: "a", X: 1}},
				Start:     "a",
				Goal:      "a",
			},
			want: ErrDuplicateWaypoint,
		},
		{
			name: "edge to nowhere",
			problem: Navigation{
				Waypoints: []Waypoint{{Name: "a"}},
				Edges:     []Edge{{From: "a", To: "b", Weight: 1}},
				Start:     "a",
				Goal:      "a",
			},
			want: ErrUnknownWaypoint,
		},
		{
			name: "unknown goal",
			problem: Navigation{
				Waypoints: []Waypoint{{Name: "a"}},
				Start:     "a",
				Goal:      "z",
			},
			want: ErrUnknownWaypoint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := tt.problem.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadPlanning_MissingFile(t *testing.T) {
	_, err := LoadPlanning(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPlanning_ExampleFile(t *testing.T) {
	problem, err := LoadPlanning(filepath.Join("..", "..", "examples", "campfire.yaml"))
	require.NoError(t, err)
	planner, start, goal, err := problem.Build()
	require.NoError(t, err)

	plan, err := planner.Plan(start, goal)
	require.NoError(t, err)
	assert.Equal(t, 40.0, plan.Cost)
	assert.NoError(t, plan.Validate(start, goal))

	start.SetToken("has_money", true)
	plan, err = planner.Plan(start, goal)
	require.NoError(t, err)
	assert.Equal(t, []string{"buy_crisps"}, plan.Names())
}
