package solver

import (
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
)

// nodeConsistency filters each constrained meeting's domain down to
// the dates satisfying its unary constraints, and returns the number
// of dates removed. Constraints on the same meeting compound, and a
// second pass removes nothing. Emptied domains are left for the
// caller to report.
func nodeConsistency(domains []*csp.Domain, unary []constraint.UnaryConstraint) int {
	removed := 0
	for _, c := range unary {
		removed += domains[c.Meeting].Retain(c.SatisfiedBy)
	}
	return removed
}
