// Package movetext pulls damage formulas, level scaling and roll kinds out
// of free-text move descriptions.
package movetext

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wilran/internal/entities"
)

// Formula is the damage a description promises
type Formula struct {
	Dice       string
	DamageType string
	// ModifierBearing is set when the text carries the MOVE placeholder,
	// meaning the power modifier is added to the damage.
	ModifierBearing bool
}

type matcher struct {
	name            string
	pattern         *regexp.Regexp
	modifierBearing bool
}

// damageMatchers are tried top to bottom and the first match wins. Every
// modifier-bearing matcher sits above every flat matcher, so text that fits
// both is read as modifier-bearing. Reordering this list changes outcomes.
var damageMatchers = []matcher{
	{
		name:            "dice plus bonus plus move",
		pattern:         regexp.MustCompile(`(?i)(\d+d\d+(?:\s*\+\s*\d+)?)\s*\+?\s*move\s+(\w+)\s+damage`),
		modifierBearing: true,
	},
	{
		name:            "dice plus move",
		pattern:         regexp.MustCompile(`(?i)(\d+d\d+)\s*\+?\s*move\s+(\w+)\s+damage`),
		modifierBearing: true,
	},
	{
		name:            "takes dice plus move",
		pattern:         regexp.MustCompile(`(?i)takes\s+(\d+d\d+(?:\s*\+\s*\d+)?)\s*\+?\s*move\s+(\w+)\s+damage`),
		modifierBearing: true,
	},
	{
		name:            "deals dice plus move",
		pattern:         regexp.MustCompile(`(?i)deals?\s+(\d+d\d+(?:\s*\+\s*\d+)?)\s*\+?\s*move\s+(\w+)\s+damage`),
		modifierBearing: true,
	},
	{
		name:    "doing flat",
		pattern: regexp.MustCompile(`(?i)doing\s+(\d+d\d+)\s+(\w+)\s+damage`),
	},
	{
		name:    "takes flat",
		pattern: regexp.MustCompile(`(?i)takes\s+(\d+d\d+)\s+(\w+)\s+damage`),
	},
	{
		name:    "deals flat",
		pattern: regexp.MustCompile(`(?i)deals?\s+(\d+d\d+)\s+(\w+)\s+damage`),
	},
	{
		name:    "bare flat",
		pattern: regexp.MustCompile(`(?i)(\d+d\d+)\s+(\w+)\s+damage`),
	},
}

var (
	modifierPlaceholder = regexp.MustCompile(`(?i)\+?\s*move\s+\w+\s+damage`)
	scalingPattern      = regexp.MustCompile(`(?i)(\d+d\d+) at level (\d+)`)
	attackPhrases       = []string{"make a melee attack", "make a ranged attack", "make an attack"}
)

// saveMatchers are checked in this fixed order; the first hit names the save
var saveMatchers = []struct {
	attr    entities.Attribute
	pattern *regexp.Regexp
}{
	{entities.AttributeStrength, regexp.MustCompile(`(?i)\b(str|strength)\s+save`)},
	{entities.AttributeDexterity, regexp.MustCompile(`(?i)\b(dex|dexterity)\s+save`)},
	{entities.AttributeConstitution, regexp.MustCompile(`(?i)\b(con|constitution)\s+save`)},
	{entities.AttributeIntelligence, regexp.MustCompile(`(?i)\b(int|intelligence)\s+save`)},
	{entities.AttributeWisdom, regexp.MustCompile(`(?i)\b(wis|wisdom)\s+save`)},
	{entities.AttributeCharisma, regexp.MustCompile(`(?i)\b(cha|charisma)\s+save`)},
}

// Normalize lower-cases fragments and joins them, each followed by a space
func Normalize(fragments []string) string {
	var sb strings.Builder
	for _, f := range fragments {
		sb.WriteString(strings.ToLower(f))
		sb.WriteString(" ")
	}
	return sb.String()
}

// ExtractDamageFormula returns the first formula found in text. ok is false
// for status moves, which is not an error.
func ExtractDamageFormula(text string) (Formula, bool) {
	for _, m := range damageMatchers {
		groups := m.pattern.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		return Formula{
			Dice:            strings.TrimSpace(groups[1]),
			DamageType:      strings.ToLower(strings.TrimSpace(groups[2])),
			ModifierBearing: m.modifierBearing || HasModifierPlaceholder(text),
		}, true
	}
	return Formula{}, false
}

// HasModifierPlaceholder reports whether text adds the power modifier to
// damage anywhere ("+ MOVE fire damage").
func HasModifierPlaceholder(text string) bool {
	return modifierPlaceholder.MatchString(text)
}

type scaling struct {
	level int
	dice  string
}

// ScaledDice returns the dice of the highest "<dice> at level <N>" entry in
// clause whose level is at or below level.
func ScaledDice(clause string, level int) (string, bool) {
	if clause == "" {
		return "", false
	}

	var steps []scaling
	for _, m := range scalingPattern.FindAllStringSubmatch(clause, -1) {
		lvl, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		steps = append(steps, scaling{level: lvl, dice: m[1]})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].level > steps[j].level
	})

	for _, s := range steps {
		if level >= s.level {
			return s.dice, true
		}
	}
	return "", false
}

// HasAttackRoll reports whether text asks for an attack roll
func HasAttackRoll(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range attackPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// HasSave reports whether text mentions a saving throw
func HasSave(text string) bool {
	return strings.Contains(strings.ToLower(text), "save")
}

// SaveAbility names the save the target makes, if the text says which
func SaveAbility(text string) (entities.Attribute, bool) {
	if !HasSave(text) {
		return "", false
	}
	for _, s := range saveMatchers {
		if s.pattern.MatchString(text) {
			return s.attr, true
		}
	}
	return "", false
}

// Analysis is everything the combat resolver needs from a move's text
type Analysis struct {
	Text        string
	Formula     Formula
	HasDamage   bool
	Dice        string
	Scaled      bool
	AttackRoll  bool
	Save        bool
	SaveAbility entities.Attribute
}

// Analyze reads move's description and scaling clause for a user at level
func Analyze(move *entities.Move, level int) *Analysis {
	text := Normalize(move.Description)

	a := &Analysis{
		Text:       text,
		AttackRoll: HasAttackRoll(text),
		Save:       HasSave(text),
	}
	a.SaveAbility, _ = SaveAbility(text)

	a.Formula, a.HasDamage = ExtractDamageFormula(text)
	if !a.HasDamage {
		return a
	}

	a.Dice = a.Formula.Dice
	if scaled, ok := ScaledDice(move.HigherLevels, level); ok {
		a.Dice = scaled
		a.Scaled = true
	}
	return a
}
