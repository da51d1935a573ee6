package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wilran/internal/battlelog"
)

func newGenerateCmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "generate <area>",
		Short: "Generate a random encounter in an area",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			area := strings.Join(args, " ")

			if save {
				// the battle log prints the record when it joins the roster
				_, err := a.provider.RosterService.Add(cmd.Context(), area)
				return err
			}

			enc, err := a.provider.EncounterService.GenerateInArea(cmd.Context(), area)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, battlelog.FormatRecord(enc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Add the encounter to the roster")
	return cmd
}
