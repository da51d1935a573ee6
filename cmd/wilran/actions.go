package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wilran/internal/battlelog"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/KirkDiggler/wilran/internal/services/combat"
)

// resolveID accepts a record ID or its 1-based position in the roster list
func (a *app) resolveID(ctx context.Context, ref string) (string, error) {
	pos, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}

	records, err := a.provider.RosterService.List(ctx)
	if err != nil {
		return "", err
	}
	if pos < 1 || pos > len(records) {
		// IDs are hex, so an all-digit ID is possible
		return ref, nil
	}
	return records[pos-1].ID, nil
}

func (a *app) listRoster(ctx context.Context) error {
	records, err := a.provider.RosterService.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "The roster is empty")
		return nil
	}

	for i, enc := range records {
		shiny := ""
		if enc.Shiny {
			shiny = " ✨"
		}
		fmt.Fprintf(a.out, "%d. %s%s Lv. %d  HP %d/%d  [%s]\n", i+1, enc.Name, shiny, enc.Level, enc.CurrentHP, enc.MaxHP, enc.ID)
	}
	return nil
}

func (a *app) showRecord(ctx context.Context, ref string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	enc, err := a.provider.RosterService.Get(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, battlelog.FormatRecord(enc))
	return nil
}

func (a *app) useMove(ctx context.Context, ref, move string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	_, err = a.provider.RosterService.UseMove(ctx, id, move)
	return err
}

func (a *app) adjustHP(ctx context.Context, ref, input string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	_, err = a.provider.RosterService.AdjustHP(ctx, id, input)
	return err
}

func (a *app) resetPP(ctx context.Context, ref string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	_, err = a.provider.RosterService.ResetPP(ctx, id)
	return err
}

func (a *app) rollCheck(ctx context.Context, ref, kind, option string) error {
	checkType, err := combat.ParseCheckType(kind)
	if err != nil {
		return err
	}
	if option == "" {
		return dnderr.InvalidArgument("Please select both roll type and specific roll!")
	}

	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	_, err = a.provider.RosterService.RollCheck(ctx, id, &combat.CheckInput{Type: checkType, Option: option})
	return err
}

func (a *app) setScores(ctx context.Context, ref, sheet string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	enc, err := a.provider.RosterService.SetAbilityScores(ctx, id, sheet)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, battlelog.FormatRecord(enc))
	return nil
}

func (a *app) remove(ctx context.Context, ref string) error {
	id, err := a.resolveID(ctx, ref)
	if err != nil {
		return err
	}
	return a.provider.RosterService.Remove(ctx, id)
}

// joinArgs rebuilds a multi-word argument such as "Animal Handling"
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
