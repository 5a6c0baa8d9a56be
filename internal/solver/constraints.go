package solver

import (
	"fmt"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
)

// OutOfRangeError reports a constraint referencing a meeting index
// outside the schedule.
type OutOfRangeError struct {
	Constraint csp.Constraint
	Meeting    int
	Meetings   int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("constraint %s references meeting %d in a schedule of %d meetings", e.Constraint, e.Meeting, e.Meetings)
}

// UnknownConstraintError reports a constraint implementation the
// engine cannot evaluate.
type UnknownConstraintError struct {
	Constraint csp.Constraint
}

func (e UnknownConstraintError) Error() string {
	return fmt.Sprintf("unsupported constraint type %T", e.Constraint)
}

// problem is the validated, split form of a constraint set. The
// engine dispatches on arity throughout, so the split happens once,
// up front.
type problem struct {
	meetings int
	unary    []constraint.UnaryConstraint
	binary   []constraint.BinaryConstraint
}

// newProblem splits constraints by arity and validates every meeting
// index and operator against the schedule size.
func newProblem(meetings int, constraints []csp.Constraint) (*problem, error) {
	p := &problem{meetings: meetings}
	for _, c := range constraints {
		switch c := c.(type) {
		case constraint.UnaryConstraint:
			if err := p.validate(c, c.Op, c.Meeting); err != nil {
				return nil, err
			}
			p.unary = append(p.unary, c)
		case constraint.BinaryConstraint:
			if err := p.validate(c, c.Op, c.Left, c.Right); err != nil {
				return nil, err
			}
			p.binary = append(p.binary, c)
		default:
			return nil, UnknownConstraintError{Constraint: c}
		}
	}
	return p, nil
}

func (p *problem) validate(c csp.Constraint, op csp.Operator, meetings ...int) error {
	if !op.Valid() {
		return fmt.Errorf("constraint %s: unknown operator %q", c, op)
	}
	for _, m := range meetings {
		if m < 0 || m >= p.meetings {
			return OutOfRangeError{Constraint: c, Meeting: m, Meetings: p.meetings}
		}
	}
	return nil
}

// touching returns every constraint referencing the given meeting,
// unary constraints first.
func (p *problem) touching(meeting int) []csp.Constraint {
	var out []csp.Constraint
	for _, c := range p.unary {
		if c.Meeting == meeting {
			out = append(out, c)
		}
	}
	for _, c := range p.binary {
		if c.Left == meeting || c.Right == meeting {
			out = append(out, c)
		}
	}
	return out
}
