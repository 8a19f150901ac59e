package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the topicsort CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose (-v) switches
// to debug. The logger rides the command context (see loggerFromContext).
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "topicsort",
		Short:        "Order items by cost: passages by topic, or cities into a tour",
		Long:         `topicsort finds cost-minimizing orderings: text passages arranged by topical similarity (an open path) or TSPLIB city sets arranged into a closed tour. Both run on the same incremental edge-by-edge engine.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newTSPCmd())
	root.AddCommand(newTourCmd())

	return root.Execute()
}
