package main

import (
	"os"

	"github.com/spf13/cobra"

	dashlog "campaign-dash/internal/log"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose bool
	quiet   bool
	dataset string
	psql    string
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state from leaking between invocations.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "dashctl",
		Short: "Query and export the campaign performance table",
		Long: `dashctl filters, sorts and paginates campaign records the same way the
dashboard table does, and exports the filtered table as CSV or PDF.

Records come from the built-in reference table unless --dataset names a
JSON or YAML file or --psql points at a PostgreSQL database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			dashlog.Setup(os.Stderr, opts.verbose, opts.quiet)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-essential output")
	root.PersistentFlags().StringVar(&opts.dataset, "dataset", "", "read campaigns from a JSON or YAML file")
	root.PersistentFlags().StringVar(&opts.psql, "psql", "", "read campaigns from this PostgreSQL URL")

	root.AddCommand(newQueryCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newSeedCmd(opts))
	return root
}
