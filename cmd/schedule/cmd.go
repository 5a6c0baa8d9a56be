package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Sarronnn/Algorithms-Date-Constraint/internal/solver"
	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
	cspsolver "github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp/solver"
)

func NewScheduleCommand() *cobra.Command {
	var trace bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "schedule <path>",
		Short: "Solves a meeting scheduling problem given as a JSON or YAML file",
		Long: `Solves a meeting scheduling problem given as a JSON or YAML file. For instance:

meetings: 3
range_start: "2026-09-01"
range_end: "2026-09-14"
constraints:
  - {left: 0, op: "<", right: 1}
  - {left: 1, op: "<", right: 2}
  - {left: 2, op: "!=", date: "2026-09-03"}

Meetings are indexed from zero. A constraint with a right meeting
relates two meetings; a constraint with a date pins one meeting
against a fixed day.
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0], trace, timeout)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log search dead ends to stderr")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abandon the search after this duration")
	return cmd
}

func solve(path string, trace bool, timeout time.Duration) error {
	problem, err := ReadProblem(path)
	if err != nil {
		return err
	}

	var options []cspsolver.Option
	if trace {
		options = append(options, cspsolver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	begin := time.Now()
	solution, err := cspsolver.NewDateSolver(options...).Solve(ctx, problem.Meetings, problem.RangeStart, problem.RangeEnd, problem.Constraints)
	if err != nil {
		return err
	}

	stats := solution.Stats()
	log.Debug().
		Dur("elapsed", time.Since(begin)).
		Int("node_pruned", stats.NodePruned).
		Int("arc_pruned", stats.ArcPruned).
		Int("revisions", stats.Revisions).
		Int("steps", stats.Steps).
		Int("backtracks", stats.Backtracks).
		Msg("solver finished")

	if err := solution.Error(); err != nil {
		fmt.Printf("no solution found: %s\n", err)
		return nil
	}

	fmt.Println("solution found:")
	for meeting, date := range solution.Dates() {
		fmt.Printf("meeting %d: %s\n", meeting, date.Format(csp.DateFormat))
	}
	return nil
}
