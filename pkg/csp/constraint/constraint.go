package constraint

import (
	"fmt"
	"time"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

// UnaryConstraint relates the date of a single meeting to a fixed
// calendar date.
type UnaryConstraint struct {
	Meeting int
	Op      csp.Operator
	Date    time.Time
}

func (c UnaryConstraint) Arity() int {
	return 1
}

// SatisfiedBy reports whether assigning date to the constrained
// meeting satisfies the constraint.
func (c UnaryConstraint) SatisfiedBy(date time.Time) bool {
	return c.Op.Holds(date, c.Date)
}

func (c UnaryConstraint) String() string {
	return fmt.Sprintf("(%d %s %s)", c.Meeting, c.Op, c.Date.Format(csp.DateFormat))
}

// Unary returns a Constraint that restricts a single meeting against
// a fixed date. The date is normalized to midnight UTC.
func Unary(meeting int, op csp.Operator, date time.Time) UnaryConstraint {
	return UnaryConstraint{Meeting: meeting, Op: op, Date: csp.Day(date)}
}

// BinaryConstraint relates the dates of two meetings. Left and Right
// may name the same meeting.
type BinaryConstraint struct {
	Left  int
	Op    csp.Operator
	Right int
}

func (c BinaryConstraint) Arity() int {
	return 2
}

// SatisfiedBy reports whether assigning left to the constraint's left
// meeting and right to its right meeting satisfies the constraint.
func (c BinaryConstraint) SatisfiedBy(left, right time.Time) bool {
	return c.Op.Holds(left, right)
}

// Reverse returns the constraint with its meetings swapped and its
// operator reversed. A reversed constraint is satisfied by exactly
// the assignments that satisfy the original.
func (c BinaryConstraint) Reverse() BinaryConstraint {
	return BinaryConstraint{Left: c.Right, Op: c.Op.Reversed(), Right: c.Left}
}

func (c BinaryConstraint) String() string {
	return fmt.Sprintf("(%d %s %d)", c.Left, c.Op, c.Right)
}

// Binary returns a Constraint that relates the dates of two meetings.
func Binary(left int, op csp.Operator, right int) BinaryConstraint {
	return BinaryConstraint{Left: left, Op: op, Right: right}
}
