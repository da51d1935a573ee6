package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRosterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Work with the records on the roster",
		Long: `Records are addressed by ID or by their position in "roster list".

Without REDIS_URL the roster only lives as long as one command, so these
commands are mostly useful with Redis. See "wilran session" for in-memory play.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the records on the roster",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.listRoster(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "show <record>",
			Short: "Print a record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.showRecord(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:     "use <record> <move>",
			Short:   "Spend one PP and resolve a move",
			Example: "  wilran roster use 1 thunder punch",
			Args:    cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.useMove(cmd.Context(), args[0], joinArgs(args[1:]))
			},
		},
		&cobra.Command{
			Use:   "hp <record> <=X|+X|-X|X>",
			Short: "Set, heal or damage current HP",
			Example: `  wilran roster hp 1 +5
  wilran roster hp 1 -- -7`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.adjustHP(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "reset-pp <record>",
			Short: "Restore every move to full PP",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.resetPP(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:     "check <record> <ability|save|skill> <option>",
			Short:   "Roll an ability check, saving throw or skill check",
			Example: "  wilran roster check 1 skill animal handling",
			Args:    cobra.MinimumNArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.rollCheck(cmd.Context(), args[0], args[1], joinArgs(args[2:]))
			},
		},
		newScoresCmd(a),
		&cobra.Command{
			Use:   "remove <record>",
			Short: "Remove a record from the roster",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.remove(cmd.Context(), args[0])
			},
		},
	)
	return cmd
}

func newScoresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scores <record> <sheet-file|->",
		Short: "Replace ability scores from a sheet",
		Long: `Reads "STR: 16 (+3)" lines, one per ability, from a file or from stdin
when the file is "-". Unreadable or missing scores become 10.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				sheet []byte
				err   error
			)
			if args[1] == "-" {
				sheet, err = io.ReadAll(a.in)
			} else {
				sheet, err = os.ReadFile(args[1])
			}
			if err != nil {
				return fmt.Errorf("failed to read sheet: %w", err)
			}
			return a.setScores(cmd.Context(), args[0], string(sheet))
		},
	}
}
