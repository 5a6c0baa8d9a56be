package solver

import (
	"context"
	"time"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

// search walks the meetings in increasing index order, trying each
// remaining domain date for the next unassigned meeting. A single
// assignment buffer is shared across the recursion: a candidate is
// appended before descending and truncated away after, so the buffer
// always holds exactly the assigned prefix.
type search struct {
	domains    []*csp.Domain
	problem    *problem
	tracer     csp.Tracer
	assignment []time.Time
	steps      int
	backtracks int
}

// Do returns the first complete consistent assignment and whether one
// was found. The context is checked at every node; cancellation
// surfaces as ErrIncomplete.
func (s *search) Do(ctx context.Context) ([]time.Time, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, ErrIncomplete
	}
	if len(s.assignment) == len(s.domains) {
		if s.consistent() {
			return s.assignment, true, nil
		}
		return nil, false, nil
	}

	meeting := len(s.assignment)
	for _, candidate := range s.domains[meeting].Dates() {
		s.steps++
		s.assignment = append(s.assignment, candidate)
		if s.consistent() {
			result, found, err := s.Do(ctx)
			if err != nil {
				return nil, false, err
			}
			if found {
				return result, true, nil
			}
		}
		s.assignment = s.assignment[:len(s.assignment)-1]
	}

	s.backtracks++
	s.tracer.Trace(position{assigned: s.assignment, meeting: meeting})
	return nil, false, nil
}

// consistent reports whether every constraint whose meetings are all
// assigned holds. Constraints reaching past the assigned prefix are
// not decidable yet and pass.
func (s *search) consistent() bool {
	n := len(s.assignment)
	for _, c := range s.problem.unary {
		if c.Meeting < n && !c.SatisfiedBy(s.assignment[c.Meeting]) {
			return false
		}
	}
	for _, c := range s.problem.binary {
		if c.Left < n && c.Right < n && !c.SatisfiedBy(s.assignment[c.Left], s.assignment[c.Right]) {
			return false
		}
	}
	return true
}

// position is the search state handed to tracers when a meeting runs
// out of candidates.
type position struct {
	assigned []time.Time
	meeting  int
}

func (p position) Assigned() []time.Time {
	return p.assigned
}

func (p position) Meeting() int {
	return p.meeting
}
