package attack

import (
	"fmt"

	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/entities"
)

// Kind classifies what a move use produced
type Kind string

const (
	KindAttack            Kind = "attack"
	KindSave              Kind = "save"
	KindAttackAndSave     Kind = "attack_and_save"
	KindDescriptionOnly   Kind = "description_only"
	KindReferenceNotFound Kind = "reference_not_found"
	KindError             Kind = "error"
)

// Result is the structured outcome of one move use. The battle log renders
// text from it; nothing downstream re-reads rendered text.
type Result struct {
	Kind     Kind
	UserName string
	MoveName string
	Check    *Check
	Damage   *Damage
	// Message explains a KindReferenceNotFound or KindError result
	Message string
}

func (r *Result) String() string {
	if r.Damage == nil {
		return fmt.Sprintf("%s uses %s: %s", r.UserName, r.MoveName, r.Kind)
	}
	return fmt.Sprintf("%s uses %s: %s, damage: %d %s", r.UserName, r.MoveName, r.Kind, r.Damage.Total, r.Damage.Type)
}

// HasAttack reports whether the result carries a to-hit roll
func (r *Result) HasAttack() bool {
	return r.Kind == KindAttack || r.Kind == KindAttackAndSave
}

// HasSave reports whether the result carries a save DC
func (r *Result) HasSave() bool {
	return r.Kind == KindSave || r.Kind == KindAttackAndSave
}

// Check is the attack roll and/or save DC half of a result
type Check struct {
	// Rolled is false when the move has power abilities but no attack
	// phrase; the d20 then contributes 0.
	Rolled      bool
	D20         int
	Total       int
	Modifier    int
	Ability     entities.Attribute
	Proficiency int
	IsCrit      bool
	SaveDC      int
	SaveType    entities.Attribute
}

// AbilityLabel is the upper-case ability used, or "N/A"
func (c *Check) AbilityLabel() string {
	if c.Ability == "" {
		return "N/A"
	}
	return c.Ability.Short()
}

// TermKind names one additive part of a damage total
type TermKind string

const (
	TermDice     TermKind = "dice"
	TermModifier TermKind = "modifier"
	TermSTAB     TermKind = "stab"
)

// Term is one additive part of a damage total
type Term struct {
	Kind  TermKind
	Label string
	Value int
}

// Damage is the damage half of a result
type Damage struct {
	Total        int
	Type         string
	Dice         string
	IsCrit       bool
	OnFailedSave bool
	Terms        []Term
}

// DamageRoll holds the dice results behind a damage total
type DamageRoll struct {
	Dice string
	Base *dice.RollResult
	Crit *dice.RollResult
}

// Sum adds the base roll and, on a critical hit, the second roll
func (d *DamageRoll) Sum() int {
	total := d.Base.Total
	if d.Crit != nil {
		total += d.Crit.Total
	}
	return total
}

// RollDamage rolls expr once, and a second independent time when crit is set.
// Any flat bonus in expr is part of each roll.
func RollDamage(r dice.Roller, expr string, crit bool) (*DamageRoll, error) {
	base, err := dice.RollString(r, expr)
	if err != nil {
		return nil, err
	}

	out := &DamageRoll{Dice: expr, Base: base}
	if crit {
		out.Crit, err = dice.RollString(r, expr)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CheckType is one of the three d20 checks a record can make outside of
// move use
type CheckType string

const (
	CheckAbility     CheckType = "Ability Check"
	CheckSavingThrow CheckType = "Saving Throw"
	CheckSkill       CheckType = "Skill Check"
)

// CheckResult is a rolled ability check, saving throw or skill check
type CheckResult struct {
	UserName    string
	Type        CheckType
	Option      string
	Ability     entities.Attribute
	D20         int
	Modifier    int
	Proficient  bool
	Proficiency int
	Total       int
}

// IsNatural20 reports a natural 20 on the d20
func (c *CheckResult) IsNatural20() bool { return c.D20 == 20 }

// IsNatural1 reports a natural 1 on the d20
func (c *CheckResult) IsNatural1() bool { return c.D20 == 1 }
