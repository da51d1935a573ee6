// Package battlelog renders move, check and HP results as battle log text and
// delivers it to one or more sinks.
package battlelog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/wilran/internal/entities/attack"
	"github.com/KirkDiggler/wilran/internal/events"
)

// Literal markers that external log viewers match on
const (
	MarkerCriticalHit    = "CRITICAL HIT!"
	MarkerCriticalDamage = "CRITICAL!"
	MarkerSaveDC         = "Saving Throw DC:"
	MarkerDamageOnHit    = "Damage on hit:"
	MarkerDamageOnSave   = "Damage on failed save:"

	seeDescription = "See move description"
	breakdownLead  = "  └ "
)

// FormatCheck renders the attack / save line of a result, e.g.
// "17 [d20: 12 + 3 STR + 2 prof]" or
// "Saving Throw DC: 13 (DEX) [8 + 3 STR + 2 prof]".
func FormatCheck(r *attack.Result) string {
	switch r.Kind {
	case attack.KindReferenceNotFound, attack.KindError:
		return r.Message
	case attack.KindSave:
		return fmt.Sprintf("%s %d%s [%s]", MarkerSaveDC, r.Check.SaveDC, saveTypeSuffix(r.Check), saveBreakdown(r.Check))
	case attack.KindAttack, attack.KindAttackAndSave:
		line := fmt.Sprintf("%d [%s]", r.Check.Total, attackBreakdown(r.Check))
		if r.Check.IsCrit {
			line += " " + MarkerCriticalHit
		}
		if r.Kind == attack.KindAttackAndSave {
			line += fmt.Sprintf(" | Save DC: %d%s", r.Check.SaveDC, saveTypeSuffix(r.Check))
		}
		return line
	default:
		return seeDescription
	}
}

// FormatDamage renders the damage line of a result, e.g.
// "Damage on hit: 15 fire [CRITICAL! 1d6: 4 + 1d6: 5 + 3 STR + 3 STAB]".
// ok is false when the result carries no damage.
func FormatDamage(r *attack.Result) (string, bool) {
	if r.Damage == nil {
		return "", false
	}

	marker := MarkerDamageOnHit
	if r.Damage.OnFailedSave {
		marker = MarkerDamageOnSave
	}
	return fmt.Sprintf("%s %d %s [%s]", marker, r.Damage.Total, r.Damage.Type, damageBreakdown(r.Damage, true)), true
}

// FormatMessage renders the Roll20-style block for a move use
func FormatMessage(r *attack.Result) string {
	lines := []string{fmt.Sprintf("%s uses %s!", r.UserName, r.MoveName), ""}

	switch r.Kind {
	case attack.KindError:
		lines = append(lines, "Error: "+r.Message)
		return strings.Join(lines, "\n")
	case attack.KindSave:
		lines = append(lines,
			fmt.Sprintf("Spell Save DC: %d%s", r.Check.SaveDC, saveTypeSuffix(r.Check)),
			breakdownLead+saveBreakdown(r.Check))
	case attack.KindAttack, attack.KindAttackAndSave:
		head := fmt.Sprintf("Attack Roll: %d", r.Check.Total)
		if r.Check.IsCrit {
			head += " (" + MarkerCriticalHit + ")"
		}
		lines = append(lines, head, breakdownLead+attackBreakdown(r.Check))
	default:
		lines = append(lines, "Result: "+FormatCheck(r))
	}

	if r.Damage != nil {
		head := fmt.Sprintf("Damage: %d %s", r.Damage.Total, r.Damage.Type)
		if r.Damage.IsCrit {
			head += " (" + MarkerCriticalDamage + ")"
		}
		lines = append(lines, head, breakdownLead+damageBreakdown(r.Damage, false))
	}

	return strings.Join(lines, "\n")
}

// FormatCheckRoll renders an ability check, saving throw or skill check
func FormatCheckRoll(c *attack.CheckResult) string {
	prof := ""
	if c.Proficient {
		prof = fmt.Sprintf(" + %d prof", c.Proficiency)
	}

	msg := fmt.Sprintf("%s makes a %s %s:\nResult: %d [d20: %d + %d %s%s]",
		c.UserName, c.Option, strings.ToLower(string(c.Type)), c.Total, c.D20, c.Modifier, c.Ability.Short(), prof)

	switch {
	case c.IsNatural20():
		msg += "\nNATURAL 20!"
	case c.IsNatural1():
		msg += "\nNATURAL 1!"
	}
	return msg
}

// FormatHPChange renders the outcome of an HP adjustment
func FormatHPChange(e *events.HPChangedEvent) string {
	name := e.GetActor().Name

	switch e.Change {
	case events.HPChangeHeal:
		if e.Applied > 0 {
			return fmt.Sprintf("%s heals %d HP (%d → %d/%d)", name, e.Applied, e.OldHP, e.NewHP, e.MaxHP)
		}
		return fmt.Sprintf("%s is already at full health (%d/%d)", name, e.NewHP, e.MaxHP)
	case events.HPChangeDamage:
		if e.Applied > 0 {
			msg := fmt.Sprintf("%s takes %d damage (%d → %d/%d)", name, e.Applied, e.OldHP, e.NewHP, e.MaxHP)
			if e.NewHP == 0 {
				msg += " and is knocked out!"
			}
			return msg
		}
		return fmt.Sprintf("%s is already at 0 HP", name)
	default:
		if e.Applied == 0 {
			return fmt.Sprintf("%s HP remains %d/%d", name, e.NewHP, e.MaxHP)
		}
		sign := ""
		if e.Applied > 0 {
			sign = "+"
		}
		return fmt.Sprintf("%s HP set to %d/%d (%s%d)", name, e.NewHP, e.MaxHP, sign, e.Applied)
	}
}

// FormatPPReset renders a PP restore
func FormatPPReset(e *events.PPResetEvent) string {
	return fmt.Sprintf("%s's moves are restored to full PP", e.GetActor().Name)
}

// FormatRosterChange renders a record joining or leaving the roster
func FormatRosterChange(e *events.RosterChangedEvent) string {
	enc := e.GetActor()
	if e.Action == events.RosterActionRemoved {
		return fmt.Sprintf("%s leaves the battle", enc.Name)
	}

	msg := fmt.Sprintf("%s joins the battle (Lv. %d)", enc.Name, enc.Level)
	if enc.Shiny {
		msg += " ✨"
	}
	return msg
}

func saveTypeSuffix(c *attack.Check) string {
	if c.SaveType == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", c.SaveType.Short())
}

func attackBreakdown(c *attack.Check) string {
	return fmt.Sprintf("d20: %d + %d %s + %d prof", c.D20, c.Modifier, c.AbilityLabel(), c.Proficiency)
}

func saveBreakdown(c *attack.Check) string {
	return fmt.Sprintf("8 + %d %s + %d prof", c.Modifier, c.AbilityLabel(), c.Proficiency)
}

// damageBreakdown joins the additive terms. withCritMarker prefixes
// "CRITICAL! " on critical damage; the Roll20 block carries the marker in
// its heading instead.
func damageBreakdown(d *attack.Damage, withCritMarker bool) string {
	parts := make([]string, 0, len(d.Terms))
	for _, term := range d.Terms {
		switch term.Kind {
		case attack.TermDice:
			parts = append(parts, fmt.Sprintf("%s: %d", term.Label, term.Value))
		default:
			parts = append(parts, fmt.Sprintf("%d %s", term.Value, term.Label))
		}
	}

	out := strings.Join(parts, " + ")
	if withCritMarker && d.IsCrit {
		out = MarkerCriticalDamage + " " + out
	}
	return out
}
