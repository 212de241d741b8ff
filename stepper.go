package astar

import "log/slog"

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current     State
	OpenCount   int
	ClosedCount int
	Done        bool
	Found       bool
	Path        []State
	StepIndex   int
}

// Stepper drives a search one node at a time, so callers can impose their
// own time budget or render progress between steps.
type Stepper struct {
	logger    *slog.Logger
	search    search
	stepCount int
}

// NewStepper prepares a search from start towards goal over graph.
func NewStepper(start, goal State, graph Map, options ...Option) (*Stepper, error) {
	opts := applyOptions(options)
	s := &Stepper{logger: opts.Logger}
	s.search.maxExpansions = opts.MaxExpansions
	if err := s.search.reset(start, goal, graph); err != nil {
		return nil, err
	}
	return s, nil
}

// Step advances the search by one node and returns a snapshot.
// Once the search is done further calls return the final snapshot.
func (s *Stepper) Step() (StepSnapshot, error) {
	if !s.search.done {
		s.stepCount++
		if err := s.search.step(); err != nil {
			s.logger.Debug("step failed", "step", s.stepCount, "err", err)
			return s.snapshot(), err
		}
	}
	return s.snapshot(), nil
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.search.done }

// Result returns the outcome so far; it is final once Done reports true.
func (s *Stepper) Result() Result { return s.search.result() }

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		OpenCount:   s.search.openSet.Len(),
		ClosedCount: len(s.search.closedSet),
		Done:        s.search.done,
		Found:       s.search.found,
		Path:        s.search.path(),
		StepIndex:   s.stepCount,
	}
	if s.search.current != noParent {
		snapshot.Current = s.search.nodes[s.search.current].State
	}
	return snapshot
}
