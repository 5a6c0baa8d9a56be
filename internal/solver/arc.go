package solver

import (
	"time"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
)

// arc is a directed view of a binary constraint. The tail is the
// meeting under revision and the constraint is oriented so that its
// left meeting is the tail. arcs are comparable and key the pending
// set, so re-adding an arc already awaiting revision is a no-op.
type arc struct {
	tail       int
	head       int
	constraint constraint.BinaryConstraint
}

// arcConsistency runs AC-3 over the binary constraints: arcs are
// revised until every remaining tail date has a supporting head date
// for every arc. It returns the number of dates removed and the
// number of revisions performed. Emptied domains are left for the
// caller to report.
func arcConsistency(domains []*csp.Domain, binary []constraint.BinaryConstraint) (int, int) {
	pending := make(map[arc]struct{}, 2*len(binary))
	for _, c := range binary {
		pending[arc{tail: c.Left, head: c.Right, constraint: c}] = struct{}{}
		pending[arc{tail: c.Right, head: c.Left, constraint: c.Reverse()}] = struct{}{}
	}

	removed, revisions := 0, 0
	for len(pending) > 0 {
		var next arc
		for next = range pending {
			break
		}
		delete(pending, next)

		revisions++
		dropped := revise(domains, next)
		if dropped == 0 {
			continue
		}
		removed += dropped

		// The shrunk tail may have been the support for dates of
		// its neighbors: every constraint touching it contributes
		// the arc from its other endpoint back into the tail.
		for _, c := range binary {
			if c.Left == next.tail {
				pending[arc{tail: c.Right, head: c.Left, constraint: c.Reverse()}] = struct{}{}
			}
			if c.Right == next.tail {
				pending[arc{tail: c.Left, head: c.Right, constraint: c}] = struct{}{}
			}
		}
	}
	return removed, revisions
}

// revise drops every tail date with no support in the head's domain
// and returns the number dropped. The head snapshot is taken first,
// so an arc from a meeting to itself revises against the dates held
// before the revision started.
func revise(domains []*csp.Domain, a arc) int {
	support := domains[a.head].Dates()
	return domains[a.tail].Retain(func(tail time.Time) bool {
		for _, head := range support {
			if a.constraint.SatisfiedBy(tail, head) {
				return true
			}
		}
		return false
	})
}
