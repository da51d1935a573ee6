package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const sessionHelp = `Commands:
  add [area]                      generate a record and add it to the roster
  areas                           list areas
  list                            list the roster
  show <n>                        print a record
  use <n> <move>                  spend one PP and resolve a move
  hp <n> <=X|+X|-X|X>             set, heal or damage HP
  reset <n>                       restore every move to full PP
  check <n> <ability|save|skill> <option>
  remove <n>                      remove a record
  help                            show this help
  quit                            leave the session`

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session [area]",
		Short: "Start an interactive session",
		Long: `Reads one command per line from stdin. The optional area is used by
"add" when it is given no area of its own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSession(cmd.Context(), joinArgs(args))
		},
	}
}

func (a *app) runSession(ctx context.Context, defaultArea string) error {
	fmt.Fprintln(a.out, "Type 'help' for commands, 'quit' to leave.")

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		quit, err := a.dispatch(ctx, fields, defaultArea)
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}

	fmt.Fprintln(a.out)
	return scanner.Err()
}

func (a *app) dispatch(ctx context.Context, fields []string, defaultArea string) (bool, error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s needs %d argument(s), see 'help'", cmd, n)
		}
		return nil
	}

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(a.out, sessionHelp)
		return false, nil
	case "areas":
		for _, name := range a.provider.Catalog.AreaNames() {
			fmt.Fprintln(a.out, name)
		}
		return false, nil
	case "add":
		area := joinArgs(args)
		if area == "" {
			area = defaultArea
		}
		if area == "" {
			return false, fmt.Errorf("add needs an area")
		}
		_, err := a.provider.RosterService.Add(ctx, area)
		return false, err
	case "list":
		return false, a.listRoster(ctx)
	case "show":
		if err := need(1); err != nil {
			return false, err
		}
		return false, a.showRecord(ctx, args[0])
	case "use":
		if err := need(2); err != nil {
			return false, err
		}
		return false, a.useMove(ctx, args[0], joinArgs(args[1:]))
	case "hp":
		if err := need(2); err != nil {
			return false, err
		}
		return false, a.adjustHP(ctx, args[0], args[1])
	case "reset", "reset-pp":
		if err := need(1); err != nil {
			return false, err
		}
		return false, a.resetPP(ctx, args[0])
	case "check":
		if err := need(3); err != nil {
			return false, err
		}
		return false, a.rollCheck(ctx, args[0], args[1], joinArgs(args[2:]))
	case "remove":
		if err := need(1); err != nil {
			return false, err
		}
		return false, a.remove(ctx, args[0])
	default:
		return false, fmt.Errorf("unknown command %q, see 'help'", cmd)
	}
}
