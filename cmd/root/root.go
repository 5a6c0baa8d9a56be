package root

import (
	"github.com/spf13/cobra"

	"github.com/Sarronnn/Algorithms-Date-Constraint/cmd/bench"

	"github.com/Sarronnn/Algorithms-Date-Constraint/cmd/schedule"

	"github.com/Sarronnn/Algorithms-Date-Constraint/internal/logging"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "datecsp",
		Short: "Datecsp is a constraint solver for calendar scheduling",
		Long: `A constraint satisfaction solver that assigns calendar dates to meetings.
For more information visit https://github.com/Sarronnn/Algorithms-Date-Constraint`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// add sub-commands
	rootCmd.AddCommand(schedule.NewScheduleCommand())
	rootCmd.AddCommand(bench.NewBenchCommand())

	return rootCmd
}
