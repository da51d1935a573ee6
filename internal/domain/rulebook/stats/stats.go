// Package stats derives ability scores, HP and proficiency for generated
// encounters.
package stats

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// MaxScore is the ASI cap
const MaxScore = 20

// DefaultScore is used for any attribute missing from a sheet
const DefaultScore = 10

// ASIBreakpoints are the levels that grant ability score improvements
var ASIBreakpoints = []int{4, 8, 12, 16}

var hitDieBonus = map[string]int{
	"d4":  3,
	"d6":  4,
	"d8":  5,
	"d10": 6,
	"d12": 7,
	"d20": 11,
}

// AbilityModifier is floor((score-10)/2), rounding toward negative infinity
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyBonus returns the bonus for level
func ProficiencyBonus(level int) int {
	switch {
	case level <= 4:
		return 2
	case level <= 8:
		return 3
	case level <= 12:
		return 4
	case level <= 16:
		return 5
	default:
		return 6
	}
}

// PointsPerBreakpoint is 4 for single-stage lines, 3 for two stages, else 2.
// An explicit stage of 0 lands in the else branch.
func PointsPerBreakpoint(maxStage int) int {
	switch maxStage {
	case 1:
		return 4
	case 2:
		return 3
	default:
		return 2
	}
}

// EligibleBreakpoints returns the breakpoints above minLevel and at or
// below level
func EligibleBreakpoints(minLevel, level int) []int {
	var out []int
	for _, bp := range ASIBreakpoints {
		if bp > minLevel && bp <= level {
			out = append(out, bp)
		}
	}
	return out
}

// ApplyASI distributes the species' improvement points one at a time among
// scores below MaxScore. It returns the new scores and how many points were
// applied, which is less than the budget only when every score is capped.
func ApplyASI(r dice.Roller, species *entities.Species, scores entities.AbilityScores, level int) (entities.AbilityScores, int, error) {
	modified := scores.Clone()
	budget := PointsPerBreakpoint(species.MaxStage()) * len(EligibleBreakpoints(species.MinLevel, level))

	applied := 0
	for ; applied < budget; applied++ {
		var uncapped []entities.Attribute
		for _, attr := range modified.Keys() {
			if modified[attr] < MaxScore {
				uncapped = append(uncapped, attr)
			}
		}
		if len(uncapped) == 0 {
			break
		}

		attr, err := dice.Pick(r, uncapped)
		if err != nil {
			return nil, applied, dnderr.Wrap(err, "failed to pick ASI target")
		}
		modified[attr]++
	}

	return modified, applied, nil
}

// HitDieBonus returns the fixed per-level HP bonus for a hit die
func HitDieBonus(hitDie string) (int, error) {
	bonus, ok := hitDieBonus[strings.ToLower(strings.TrimSpace(hitDie))]
	if !ok {
		return 0, dnderr.InvalidArgumentf("unknown hit die %q", hitDie)
	}
	return bonus, nil
}

// DerivedHP is base HP plus, for every level above the species minimum,
// the hit-die bonus and the constitution modifier of scores.
func DerivedHP(species *entities.Species, scores entities.AbilityScores, level int) (int, error) {
	bonus, err := HitDieBonus(species.HitDice)
	if err != nil {
		return 0, dnderr.Wrapf(err, "failed to derive HP for %s", species.Name)
	}

	levels := level - species.MinLevel
	if levels < 0 {
		levels = 0
	}

	conMod := AbilityModifier(scores.Get(entities.AttributeConstitution))
	return species.HP + levels*(bonus+conMod), nil
}

// FormatSheet renders scores as "STR: 16 (+3)" lines in sheet order
func FormatSheet(scores entities.AbilityScores) string {
	lines := make([]string, 0, len(scores))
	for _, attr := range scores.Keys() {
		v := scores[attr]
		lines = append(lines, fmt.Sprintf("%s: %d (%s)", attr.Short(), v, entities.FormatModifier(AbilityModifier(v))))
	}
	return strings.Join(lines, "\n")
}

var scoreValuePattern = regexp.MustCompile(`-?\d+`)

// ParseAbilityScores reads a sheet in the FormatSheet layout. Lines that do
// not name an attribute are skipped. An unreadable value, or an attribute
// that never appears, becomes DefaultScore.
func ParseAbilityScores(text string) entities.AbilityScores {
	scores := make(entities.AbilityScores, len(entities.Attributes))

	for _, line := range strings.Split(text, "\n") {
		label, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		attr, ok := entities.ParseAttribute(label)
		if !ok {
			continue
		}

		raw := scoreValuePattern.FindString(value)
		score, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Stats: unreadable %s score %q, defaulting to %d", attr.Short(), strings.TrimSpace(value), DefaultScore)
			score = DefaultScore
		}
		scores[attr] = score
	}

	for _, attr := range entities.Attributes {
		if _, ok := scores[attr]; !ok {
			log.Printf("Stats: %s missing from sheet, defaulting to %d", attr.Short(), DefaultScore)
			scores[attr] = DefaultScore
		}
	}

	return scores
}
