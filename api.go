package astar

import (
	"io"
	"log/slog"
)

// Result contains the outcome of a search.
// Found is false when the frontier was exhausted; that is not an error.
// A found Path of length one means the start already satisfied the goal.
type Result struct {
	Path          []State
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Logger *slog.Logger
	// MaxExpansions caps the number of expanded nodes. Zero means no limit.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the structured logger used for search diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithMaxExpansions limits how many nodes a search may expand before it gives up
// with ErrBudgetExhausted.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return searchOptions
}

// Engine runs A* searches. Its open and closed sets are reset on every call,
// so an Engine can be reused for unrelated searches, but not concurrently.
type Engine struct {
	options Options
	search  search
}

// NewEngine creates an Engine.
func NewEngine(options ...Option) *Engine {
	return &Engine{options: applyOptions(options)}
}

// FindSolution searches from start until it reaches a node whose goal is
// satisfied by its state, and returns the states along the way, start first.
// Errors reported by the Map abort the search.
func (engine *Engine) FindSolution(start, goal State, graph Map) (Result, error) {
	logger := engine.options.Logger
	s := &engine.search
	s.maxExpansions = engine.options.MaxExpansions
	if err := s.reset(start, goal, graph); err != nil {
		return Result{}, err
	}

	logger.Debug("search started", "start", start, "goal", goal)
	for !s.done {
		if err := s.step(); err != nil {
			logger.Debug("search aborted", "expanded", s.expanded, "err", err)
			return s.result(), err
		}
	}

	result := s.result()
	logger.Debug("search finished",
		"found", result.Found,
		"expanded", result.ExpandedNodes,
		"cost", result.TotalCost,
	)
	return result, nil
}

// FindSolution runs a single search on a fresh Engine.
func FindSolution(start, goal State, graph Map, options ...Option) (Result, error) {
	return NewEngine(options...).FindSolution(start, goal, graph)
}
