package csp

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the layout used to render and parse calendar dates.
const DateFormat = "2006-01-02"

// Date returns the calendar date for the given year, month and day,
// normalized to midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Day truncates an instant to its calendar date, normalized to
// midnight UTC. Dates produced by Day are comparable with ==.
func Day(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Operator relates two calendar dates.
type Operator string

const (
	OpEqual      Operator = "=="
	OpNotEqual   Operator = "!="
	OpBefore     Operator = "<"
	OpAfter      Operator = ">"
	OpOnOrBefore Operator = "<="
	OpOnOrAfter  Operator = ">="
)

// ParseOperator converts s into an Operator, rejecting anything
// outside the supported set.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OpEqual, OpNotEqual, OpBefore, OpAfter, OpOnOrBefore, OpOnOrAfter:
		return op, nil
	}
	return "", fmt.Errorf("unknown operator %q", s)
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	_, err := ParseOperator(string(op))
	return err == nil
}

// Holds reports whether left and right stand in the receiver's
// relation. Both instants are truncated to their calendar dates
// first. Unknown operators hold for no pair of dates.
func (op Operator) Holds(left, right time.Time) bool {
	l, r := Day(left), Day(right)
	switch op {
	case OpEqual:
		return l.Equal(r)
	case OpNotEqual:
		return !l.Equal(r)
	case OpBefore:
		return l.Before(r)
	case OpAfter:
		return l.After(r)
	case OpOnOrBefore:
		return !l.After(r)
	case OpOnOrAfter:
		return !l.Before(r)
	}
	return false
}

// Reversed returns the operator that holds for (right, left) exactly
// when the receiver holds for (left, right).
func (op Operator) Reversed() Operator {
	switch op {
	case OpBefore:
		return OpAfter
	case OpAfter:
		return OpBefore
	case OpOnOrBefore:
		return OpOnOrAfter
	case OpOnOrAfter:
		return OpOnOrBefore
	}
	return op
}

// Constraint implementations limit the dates that one or two meetings
// can be assigned in a solution.
type Constraint interface {
	// Arity returns the number of meetings the constraint ranges
	// over: 1 for meeting-to-date constraints, 2 for
	// meeting-to-meeting constraints.
	Arity() int
	// String returns a human-readable rendering of the constraint.
	String() string
}

// NotSatisfiable is an error composed of a set of constraints that is
// sufficient to make a solution impossible.
type NotSatisfiable []Constraint

func (e NotSatisfiable) Error() string {
	const msg = "constraints not satisfiable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}

// Stats counts the work performed by a single solve run.
type Stats struct {
	NodePruned int
	ArcPruned  int
	Revisions  int
	Steps      int
	Backtracks int
}
