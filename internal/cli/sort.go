package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxwelljohn/topic-sort/optimize"
	"github.com/maxwelljohn/topic-sort/order"
	"github.com/maxwelljohn/topic-sort/topictext"
)

// newSortCmd builds the `sort` subcommand: topic-sort text passages.
func newSortCmd() *cobra.Command {
	var (
		slow       bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort blank-line-separated text passages by topical similarity",
		Long:  `sort reads passages separated by blank lines (from a file, or stdin when the argument is "-" or absent), scores every pair by TF-IDF n-gram similarity, and prints the passages reordered so that related ones sit together. The default solver is greedy; --slow runs the genetic optimizer instead.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			corpus, err := topictext.NewCorpus(in)
			if err != nil {
				return err
			}
			logger.Debug("corpus loaded", "passages", len(corpus.Passages()))

			prog := newProgress(logger)
			var soln *order.Solution
			if slow {
				opts, cerr := loadGeneticOptions(configPath)
				if cerr != nil {
					return cerr
				}
				soln, err = optimize.Genetic(corpus.Problem(), order.Path, opts)
			} else {
				soln, err = optimize.Greedy(corpus.Problem(), order.Path)
			}
			if err != nil {
				return err
			}

			cost, err := soln.Cost()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("ordered %d passages, cost %d", soln.Dimension(), cost))

			out, err := corpus.Render(soln)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&slow, "slow", "s", false, "sort slowly & carefully with the genetic optimizer (quick & dirty greedy is the default)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with [genetic] optimizer parameters")

	return cmd
}

// openInput resolves the optional file argument: absent or "-" means
// stdin. The returned closer is a no-op for stdin.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
