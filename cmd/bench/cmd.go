package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Sarronnn/Algorithms-Date-Constraint/internal/satcheck"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/constraint"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/solver"
)

func NewBenchCommand() *cobra.Command {
	var (
		meetings    int
		days        int
		constraints int
		runs        int
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Times the CSP engine against a SAT encoding on random problems",
		Long: `Generates random scheduling problems, solves each with both the CSP
engine and a CNF encoding handed to a SAT solver, and reports timings.
The two verdicts must agree on every problem.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(meetings, days, constraints, runs, seed)
		},
	}
	cmd.Flags().IntVar(&meetings, "meetings", 8, "meetings per problem")
	cmd.Flags().IntVar(&days, "days", 14, "days in the scheduling range")
	cmd.Flags().IntVar(&constraints, "constraints", 12, "constraints per problem")
	cmd.Flags().IntVar(&runs, "runs", 20, "number of random problems")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

type result struct {
	satisfiable bool
	csp         time.Duration
	sat         time.Duration
}

func run(meetings, days, constraints, runs int, seed int64) error {
	if meetings < 1 || days < 1 || runs < 1 {
		return fmt.Errorf("meetings, days and runs must all be positive")
	}

	r := rand.New(rand.NewSource(seed))
	rangeStart := csp.Date(2026, time.September, 1)
	rangeEnd := rangeStart.AddDate(0, 0, days-1)

	results := make([]result, 0, runs)
	for i := 0; i < runs; i++ {
		cs := randomConstraints(r, meetings, rangeStart, rangeEnd, constraints)

		begin := time.Now()
		solution, err := solver.NewDateSolver().Solve(context.Background(), meetings, rangeStart, rangeEnd, cs)
		if err != nil {
			return err
		}
		cspElapsed := time.Since(begin)

		begin = time.Now()
		checker, err := satcheck.New(meetings, rangeStart, rangeEnd, cs)
		if err != nil {
			return err
		}
		satisfiable := checker.Satisfiable()
		satElapsed := time.Since(begin)

		if satisfiable != (solution.Error() == nil) {
			return fmt.Errorf("verdicts disagree on problem %d (seed %d): csp=%t sat=%t", i, seed, solution.Error() == nil, satisfiable)
		}

		results = append(results, result{satisfiable: satisfiable, csp: cspElapsed, sat: satElapsed})
		log.Debug().
			Int("problem", i).
			Bool("satisfiable", satisfiable).
			Dur("csp", cspElapsed).
			Dur("sat", satElapsed).
			Msg("problem solved")
	}

	satCount := lo.CountBy(results, func(r result) bool { return r.satisfiable })
	cspTotal := lo.SumBy(results, func(r result) time.Duration { return r.csp })
	satTotal := lo.SumBy(results, func(r result) time.Duration { return r.sat })

	fmt.Printf("problems: %d (satisfiable %d, unsatisfiable %d)\n", len(results), satCount, len(results)-satCount)
	fmt.Printf("csp engine: total %s, mean %s\n", cspTotal, cspTotal/time.Duration(len(results)))
	fmt.Printf("sat check:  total %s, mean %s\n", satTotal, satTotal/time.Duration(len(results)))
	return nil
}

// randomConstraints draws a mix of meeting-to-meeting and
// meeting-to-date constraints. Self-referential and contradictory
// draws are kept: unsatisfiable problems are part of the workload.
func randomConstraints(r *rand.Rand, meetings int, rangeStart, rangeEnd time.Time, n int) []csp.Constraint {
	operators := []csp.Operator{csp.OpEqual, csp.OpNotEqual, csp.OpBefore, csp.OpAfter, csp.OpOnOrBefore, csp.OpOnOrAfter}
	days := csp.NewDomain(rangeStart, rangeEnd).Dates()

	cs := make([]csp.Constraint, 0, n)
	for len(cs) < n {
		op := operators[r.Intn(len(operators))]
		if r.Intn(4) == 0 {
			cs = append(cs, constraint.Unary(r.Intn(meetings), op, days[r.Intn(len(days))]))
			continue
		}
		cs = append(cs, constraint.Binary(r.Intn(meetings), op, r.Intn(meetings)))
	}
	return cs
}
