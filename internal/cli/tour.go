package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxwelljohn/topic-sort/tsplib"
)

// newTourCmd builds the `tour` subcommand: evaluate an existing tour file
// against its instance. The tour is replayed through the engine, so any
// structural defect (revisit, premature subtour, wrong length) surfaces as
// an error rather than a bogus cost.
func newTourCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tour <file.tsp> <file.tour>",
		Short: "Evaluate a TSPLIB tour file against its instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			inst, err := parseInstanceFile(args[0])
			if err != nil {
				return err
			}

			tf, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer tf.Close()

			tour, err := tsplib.ParseTour(tf)
			if err != nil {
				return err
			}

			problem, err := inst.Problem()
			if err != nil {
				return err
			}

			soln, err := tour.Replay(problem)
			if err != nil {
				return err
			}
			cost, err := soln.Cost()
			if err != nil {
				return err
			}

			if !tour.Closed {
				// No -1 terminator: the loop never closed, so report the
				// open chain instead of a tour.
				logger.Warn("tour file has no -1 terminator; evaluating the open path")
				fmt.Fprintf(cmd.OutOrStdout(), "cost: %d (open)\n", cost)

				return nil
			}
			if err = soln.EnsureComplete(); err != nil {
				return err
			}

			return printTour(cmd, soln, cost)
		},
	}
}

// parseInstanceFile opens and parses a .tsp file.
func parseInstanceFile(path string) (*tsplib.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := tsplib.ParseInstance(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return inst, nil
}
