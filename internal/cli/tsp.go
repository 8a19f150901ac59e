package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maxwelljohn/topic-sort/optimize"
	"github.com/maxwelljohn/topic-sort/order"
	"github.com/maxwelljohn/topic-sort/tsplib"
)

// newTSPCmd builds the `tsp` subcommand: solve a TSPLIB instance.
func newTSPCmd() *cobra.Command {
	var (
		genetic    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "tsp <file.tsp>",
		Short: "Solve a TSPLIB EUC_2D instance and print the tour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			inst, err := tsplib.ParseInstance(f)
			if err != nil {
				return err
			}
			logger.Debug("instance parsed", "name", inst.Name, "dimension", inst.Dimension)

			problem, err := inst.Problem()
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			var soln *order.Solution
			if genetic {
				opts, cerr := loadGeneticOptions(configPath)
				if cerr != nil {
					return cerr
				}
				soln, err = optimize.Genetic(problem, order.Cycle, opts)
			} else {
				soln, err = optimize.Greedy(problem, order.Cycle)
			}
			if err != nil {
				return err
			}

			cost, err := soln.Cost()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("toured %d nodes", soln.Dimension()))

			return printTour(cmd, soln, cost)
		},
	}

	cmd.Flags().BoolVarP(&genetic, "genetic", "g", false, "use the genetic optimizer instead of greedy")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with [genetic] optimizer parameters")

	return cmd
}

// printTour writes the tour cost and the 1-indexed node sequence (TSPLIB
// convention) to the command's stdout.
func printTour(cmd *cobra.Command, soln *order.Solution, cost int64) error {
	walk, err := soln.Traversal()
	if err != nil {
		return err
	}

	nodes := make([]string, len(walk))
	for i, v := range walk {
		nodes[i] = fmt.Sprintf("%d", v+1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "cost: %d\ntour: %s\n", cost, strings.Join(nodes, " "))

	return nil
}
