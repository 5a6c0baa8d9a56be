package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Sarronnn/Algorithms-Date-Constraint/internal/solver"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

// Solution is returned by the Solver when the engine executed
// successfully. A successful execution can still end in an error when
// no schedule satisfies the constraints.
type Solution struct {
	err   error
	dates []time.Time
	stats csp.Stats
}

// Error returns the resolution error in case the problem is unsat.
// On successful resolution, it will return nil.
func (s *Solution) Error() error {
	return s.err
}

// Dates returns the scheduled date for each meeting, indexed by
// meeting. It is nil when the problem was unsatisfiable.
func (s *Solution) Dates() []time.Time {
	return s.dates
}

// Stats returns counters describing the work the engine performed to
// reach (or rule out) the schedule.
func (s *Solution) Stats() csp.Stats {
	return s.stats
}

type Option func(s *DateSolver)

// WithTracer registers a tracer that receives every search dead end.
func WithTracer(t csp.Tracer) Option {
	return func(s *DateSolver) {
		s.tracer = t
	}
}

// WithoutNodeConsistency disables the unary filtering stage.
func WithoutNodeConsistency() Option {
	return func(s *DateSolver) {
		s.skipNode = true
	}
}

// WithoutArcConsistency disables the AC-3 filtering stage.
func WithoutArcConsistency() Option {
	return func(s *DateSolver) {
		s.skipArc = true
	}
}

// DateSolver assigns calendar dates to meetings so that every date
// falls inside the schedule's range and every constraint holds.
type DateSolver struct {
	tracer   csp.Tracer
	skipNode bool
	skipArc  bool
}

func NewDateSolver(options ...Option) *DateSolver {
	s := &DateSolver{}
	for _, applyOption := range options {
		applyOption(s)
	}
	return s
}

// Solve schedules the given number of meetings inside the inclusive
// range bounded by rangeStart and rangeEnd. An unsatisfiable problem
// is reported through the Solution's Error; invalid input (an unknown
// constraint type, an operator outside the supported set, a meeting
// index outside the schedule) fails the solve itself.
func (d *DateSolver) Solve(ctx context.Context, meetings int, rangeStart, rangeEnd time.Time, constraints []csp.Constraint) (*Solution, error) {
	options := []solver.Option{
		solver.WithProblem(meetings, rangeStart, rangeEnd, constraints),
	}
	if d.tracer != nil {
		options = append(options, solver.WithTracer(d.tracer))
	}
	if d.skipNode {
		options = append(options, solver.WithoutNodeConsistency())
	}
	if d.skipArc {
		options = append(options, solver.WithoutArcConsistency())
	}

	engine, err := solver.NewSolver(options...)
	if err != nil {
		return nil, err
	}

	dates, err := engine.Solve(ctx)
	if err != nil && !errors.As(err, &csp.NotSatisfiable{}) {
		return nil, err
	}

	solution := &Solution{dates: dates, stats: engine.Stats()}
	if err != nil {
		unsatError := csp.NotSatisfiable{}
		errors.As(err, &unsatError)
		solution.err = unsatError
	}
	return solution, nil
}
