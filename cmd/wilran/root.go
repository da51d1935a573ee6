package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	var o overrides

	root := &cobra.Command{
		Use:   "wilran",
		Short: "Roll randomized encounters and resolve their moves",
		Long: `wilran turns a creature catalog into combat-ready encounter records and
resolves their moves against the text of each move description.

The roster is kept in Redis when REDIS_URL is set. Without it, use the
session command to keep records around between actions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			o.seedSet = cmd.Flags().Changed("seed")
			return a.bootstrap(cmd.Context(), o)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().StringVar(&o.dataDir, "data-dir", "", "Directory holding the catalog JSON files (default $WILRAN_DATA_DIR or ./data)")
	root.PersistentFlags().Uint64Var(&o.seed, "seed", 0, "Seed for reproducible rolls (default $WILRAN_SEED)")

	root.AddCommand(
		newAreasCmd(a),
		newGenerateCmd(a),
		newRosterCmd(a),
		newSessionCmd(a),
	)
	return root
}
