package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

var ErrIncomplete = errors.New("cancelled before a solution could be found")

type Solver interface {
	Solve(context.Context) ([]time.Time, error)
	Stats() csp.Stats
}

type solver struct {
	problem    *problem
	domains    []*csp.Domain
	rangeStart time.Time
	rangeEnd   time.Time
	tracer     csp.Tracer
	skipNode   bool
	skipArc    bool
	stats      csp.Stats
}

// Solve filters the meeting domains and then searches them for the
// first consistent assignment, one date per meeting in index order.
// An unsatisfiable problem returns a csp.NotSatisfiable error; a
// cancelled Context returns ErrIncomplete.
func (s *solver) Solve(ctx context.Context) ([]time.Time, error) {
	if !s.skipNode {
		s.stats.NodePruned = nodeConsistency(s.domains, s.problem.unary)
	}
	if !s.skipArc {
		s.stats.ArcPruned, s.stats.Revisions = arcConsistency(s.domains, s.problem.binary)
	}

	// A starved meeting can be reported with the constraints that
	// touch it. Search exhaustion below cannot, so it reports the
	// bare error.
	for meeting, domain := range s.domains {
		if domain.Empty() {
			return nil, csp.NotSatisfiable(s.problem.touching(meeting))
		}
	}

	sr := search{domains: s.domains, problem: s.problem, tracer: s.tracer}
	result, found, err := sr.Do(ctx)
	s.stats.Steps, s.stats.Backtracks = sr.steps, sr.backtracks
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, csp.NotSatisfiable{}
	}

	schedule := make([]time.Time, len(result))
	copy(schedule, result)
	return schedule, nil
}

func (s *solver) Stats() csp.Stats {
	return s.stats
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

// WithProblem sets the schedule to solve: the number of meetings, the
// inclusive date range their domains start from, and the constraints
// between them.
func WithProblem(meetings int, rangeStart, rangeEnd time.Time, constraints []csp.Constraint) Option {
	return func(s *solver) error {
		if meetings < 0 {
			return fmt.Errorf("schedule size %d is negative", meetings)
		}
		p, err := newProblem(meetings, constraints)
		if err != nil {
			return err
		}
		s.problem = p
		s.rangeStart, s.rangeEnd = rangeStart, rangeEnd
		return nil
	}
}

// WithDomains supplies pre-built domains instead of deriving them
// from the problem's date range, one per meeting.
func WithDomains(domains []*csp.Domain) Option {
	return func(s *solver) error {
		s.domains = domains
		return nil
	}
}

func WithTracer(t csp.Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

// WithoutNodeConsistency skips the unary filtering stage. The search
// alone still finds the same solutions, only slower.
func WithoutNodeConsistency() Option {
	return func(s *solver) error {
		s.skipNode = true
		return nil
	}
}

// WithoutArcConsistency skips the AC-3 filtering stage.
func WithoutArcConsistency() Option {
	return func(s *solver) error {
		s.skipArc = true
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.problem == nil {
			s.problem = &problem{}
		}
		return nil
	},
	func(s *solver) error {
		if s.domains == nil {
			s.domains = csp.NewDomains(s.problem.meetings, s.rangeStart, s.rangeEnd)
		}
		return nil
	},
	func(s *solver) error {
		if len(s.domains) != s.problem.meetings {
			return fmt.Errorf("%d domains supplied for a schedule of %d meetings", len(s.domains), s.problem.meetings)
		}
		return nil
	},
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
