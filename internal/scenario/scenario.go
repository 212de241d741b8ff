// Package scenario loads planning and navigation problems from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/astar/goap"
	"github.com/pdrpinto/astar/nav"
)

var (
	// ErrInvalid wraps every structural validation failure.
	ErrInvalid = errors.New("scenario: invalid")
	// ErrUnknownWaypoint is returned when an edge or endpoint names a missing waypoint.
	ErrUnknownWaypoint = errors.New("scenario: unknown waypoint")
	// ErrDuplicateWaypoint is returned when two waypoints share a name.
	ErrDuplicateWaypoint = errors.New("scenario: duplicate waypoint")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Action describes one planning operator.
type Action struct {
	Name          string          `yaml:"name" validate:"required"`
	Cost          float64         `yaml:"cost" validate:"gte=0"`
	Preconditions map[string]bool `yaml:"preconditions"`
	Effects       map[string]bool `yaml:"effects"`
}

// Planning is an action set with start and goal world states.
type Planning struct {
	Actions []Action        `yaml:"actions" validate:"required,min=1,dive"`
	Start   map[string]bool `yaml:"start"`
	Goal    map[string]bool `yaml:"goal" validate:"required,min=1"`
}

// Waypoint is a named position.
type Waypoint struct {
	Name string  `yaml:"name" validate:"required"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Edge is a directed weighted link between two named waypoints.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// Navigation is a waypoint graph with start and goal waypoint names.
type Navigation struct {
	Waypoints []Waypoint `yaml:"waypoints" validate:"required,min=1,dive"`
	Edges     []Edge     `yaml:"edges" validate:"dive"`
	Start     string     `yaml:"start" validate:"required"`
	Goal      string     `yaml:"goal" validate:"required"`
}

func decode(r io.Reader, out any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func load(path string, out any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open scenario: %w", err)
	}
	defer file.Close()
	return decode(file, out)
}

// DecodePlanning reads and validates a planning scenario.
func DecodePlanning(r io.Reader) (*Planning, error) {
	var planning Planning
	if err := decode(r, &planning); err != nil {
		return nil, err
	}
	return &planning, nil
}

// LoadPlanning reads a planning scenario from path.
func LoadPlanning(path string) (*Planning, error) {
	var planning Planning
	if err := load(path, &planning); err != nil {
		return nil, err
	}
	return &planning, nil
}

// DecodeNavigation reads and validates a navigation scenario.
func DecodeNavigation(r io.Reader) (*Navigation, error) {
	var navigation Navigation
	if err := decode(r, &navigation); err != nil {
		return nil, err
	}
	return &navigation, nil
}

// LoadNavigation reads a navigation scenario from path.
func LoadNavigation(path string) (*Navigation, error) {
	var navigation Navigation
	if err := load(path, &navigation); err != nil {
		return nil, err
	}
	return &navigation, nil
}

func tokens(values map[string]bool) []goap.Token {
	result := make([]goap.Token, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		result = append(result, goap.Token{Name: name, Value: values[name]})
	}
	return result
}

// Build registers the actions with a new planner and returns it with the
// start and goal world states.
func (planning *Planning) Build(options ...goap.Option) (*goap.Planner, *goap.WorldState, *goap.WorldState, error) {
	planner := goap.NewPlanner(options...)
	for _, spec := range planning.Actions {
		action, err := goap.NewAction(spec.Name, tokens(spec.Preconditions), tokens(spec.Effects), spec.Cost)
		if err != nil {
			return nil, nil, nil, err
		}
		planner.AddAction(action)
	}
	return planner, goap.NewWorldState(tokens(planning.Start)...), goap.NewWorldState(tokens(planning.Goal)...), nil
}

// Build creates the mesh and resolves the start and goal waypoints.
func (navigation *Navigation) Build() (*nav.Mesh, *nav.Waypoint, *nav.Waypoint, error) {
	mesh := &nav.Mesh{}
	for _, spec := range navigation.Waypoints {
		if mesh.Find(spec.Name) != nil {
			return nil, nil, nil, fmt.Errorf("%w: %q", ErrDuplicateWaypoint, spec.Name)
		}
		mesh.Add(spec.Name, spec.X, spec.Y)
	}
	lookup := func(name string) (*nav.Waypoint, error) {
		waypoint := mesh.Find(name)
		if waypoint == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWaypoint, name)
		}
		return waypoint, nil
	}
	for _, edge := range navigation.Edges {
		from, err := lookup(edge.From)
		if err != nil {
			return nil, nil, nil, err
		}
		to, err := lookup(edge.To)
		if err != nil {
			return nil, nil, nil, err
		}
		from.Connect(to, edge.Weight)
	}
	start, err := lookup(navigation.Start)
	if err != nil {
		return nil, nil, nil, err
	}
	goal, err := lookup(navigation.Goal)
	if err != nil {
		return nil, nil, nil, err
	}
	return mesh, start, goal, nil
}
