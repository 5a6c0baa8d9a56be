package satcheck

import (
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
	unknown       = 0
)

// Checker decides the satisfiability of a scheduling problem by
// encoding it as CNF for the gini SAT solver. It shares no code with
// the CSP engine, which makes it a useful second opinion on the
// engine's verdicts.
type Checker struct {
	g    *gini.Gini
	days []time.Time
	lits [][]z.Lit
}

// New encodes a problem. Each (meeting, day) pair becomes a literal;
// every meeting takes exactly one day, and each constraint blocks the
// cells or cell pairs that violate it.
func New(meetings int, rangeStart, rangeEnd time.Time, constraints []csp.Constraint) (*Checker, error) {
	if meetings < 0 {
		return nil, fmt.Errorf("schedule size %d is negative", meetings)
	}
	c := &Checker{
		g:    gini.New(),
		days: csp.NewDomain(rangeStart, rangeEnd).Dates(),
	}

	c.lits = make([][]z.Lit, meetings)
	for m := range c.lits {
		c.lits[m] = make([]z.Lit, len(c.days))
		for d := range c.lits[m] {
			c.lits[m][d] = c.g.Lit()
		}
	}

	for m := range c.lits {
		for _, lit := range c.lits[m] {
			c.g.Add(lit)
		}
		c.g.Add(z.LitNull)
		for i := 0; i < len(c.lits[m]); i++ {
			for j := i + 1; j < len(c.lits[m]); j++ {
				c.g.Add(c.lits[m][i].Not())
				c.g.Add(c.lits[m][j].Not())
				c.g.Add(z.LitNull)
			}
		}
	}

	for _, cn := range constraints {
		switch cn := cn.(type) {
		case constraint.UnaryConstraint:
			if cn.Meeting < 0 || cn.Meeting >= meetings {
				return nil, fmt.Errorf("constraint %s references meeting %d in a schedule of %d meetings", cn, cn.Meeting, meetings)
			}
			for d, day := range c.days {
				if !cn.SatisfiedBy(day) {
					c.g.Add(c.lits[cn.Meeting][d].Not())
					c.g.Add(z.LitNull)
				}
			}
		case constraint.BinaryConstraint:
			for _, m := range []int{cn.Left, cn.Right} {
				if m < 0 || m >= meetings {
					return nil, fmt.Errorf("constraint %s references meeting %d in a schedule of %d meetings", cn, m, meetings)
				}
			}
			for dl, left := range c.days {
				for dr, right := range c.days {
					if !cn.SatisfiedBy(left, right) {
						c.g.Add(c.lits[cn.Left][dl].Not())
						c.g.Add(c.lits[cn.Right][dr].Not())
						c.g.Add(z.LitNull)
					}
				}
			}
		default:
			return nil, fmt.Errorf("unsupported constraint type %T", cn)
		}
	}
	return c, nil
}

// Satisfiable reports whether some schedule satisfies every
// constraint.
func (c *Checker) Satisfiable() bool {
	return c.g.Solve() == satisfiable
}

// Dates returns the schedule found by the last successful Satisfiable
// call, one date per meeting.
func (c *Checker) Dates() []time.Time {
	dates := make([]time.Time, len(c.lits))
	for m := range c.lits {
		for d, lit := range c.lits[m] {
			if c.g.Value(lit) {
				dates[m] = c.days[d]
				break
			}
		}
	}
	return dates
}
