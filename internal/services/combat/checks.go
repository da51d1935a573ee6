package combat

import (
	"context"
	"strings"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/entities"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// Skills lists every skill in display order
var Skills = []string{
	"Acrobatics", "Animal Handling", "Arcana", "Athletics", "Deception",
	"History", "Insight", "Intimidation", "Investigation", "Medicine",
	"Nature", "Perception", "Performance", "Persuasion", "Religion",
	"Sleight of Hand", "Stealth", "Survival",
}

var skillAbilities = map[string]entities.Attribute{
	"Athletics":       entities.AttributeStrength,
	"Acrobatics":      entities.AttributeDexterity,
	"Sleight of Hand": entities.AttributeDexterity,
	"Stealth":         entities.AttributeDexterity,
	"Arcana":          entities.AttributeIntelligence,
	"History":         entities.AttributeIntelligence,
	"Investigation":   entities.AttributeIntelligence,
	"Nature":          entities.AttributeIntelligence,
	"Religion":        entities.AttributeIntelligence,
	"Animal Handling": entities.AttributeWisdom,
	"Insight":         entities.AttributeWisdom,
	"Medicine":        entities.AttributeWisdom,
	"Perception":      entities.AttributeWisdom,
	"Survival":        entities.AttributeWisdom,
	"Deception":       entities.AttributeCharisma,
	"Intimidation":    entities.AttributeCharisma,
	"Performance":     entities.AttributeCharisma,
	"Persuasion":      entities.AttributeCharisma,
}

// SkillAbility returns the canonical skill name and its governing ability
func SkillAbility(skill string) (string, entities.Attribute, error) {
	want := strings.ReplaceAll(strings.ToLower(skill), " ", "")
	for _, name := range Skills {
		if strings.ReplaceAll(strings.ToLower(name), " ", "") == want {
			return name, skillAbilities[name], nil
		}
	}
	return "", "", dnderr.InvalidArgumentf("unknown skill %q", skill)
}

// ParseCheckType accepts "ability", "save", "skill" and the full labels
func ParseCheckType(s string) (attack.CheckType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ability", "ability check", "check":
		return attack.CheckAbility, nil
	case "save", "saving throw", "saving-throw":
		return attack.CheckSavingThrow, nil
	case "skill", "skill check":
		return attack.CheckSkill, nil
	default:
		return "", dnderr.InvalidArgumentf("unknown roll type %q", s)
	}
}

// RollCheck rolls a d20 check for enc
func (s *service) RollCheck(ctx context.Context, enc *entities.Encounter, input *CheckInput) (*attack.CheckResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	result := &attack.CheckResult{
		UserName:    enc.Name,
		Type:        input.Type,
		Proficiency: enc.ProficiencyBonus,
	}

	switch input.Type {
	case attack.CheckAbility, attack.CheckSavingThrow:
		attr, ok := entities.ParseAttribute(input.Option)
		if !ok {
			return nil, dnderr.InvalidArgumentf("unknown ability %q", input.Option)
		}
		result.Ability = attr
		result.Option = attr.Name()
		result.Proficient = input.Type == attack.CheckSavingThrow && enc.IsProficientSave(attr)
	case attack.CheckSkill:
		name, attr, err := SkillAbility(input.Option)
		if err != nil {
			return nil, err
		}
		result.Ability = attr
		result.Option = name
		result.Proficient = enc.IsProficientSkill(name)
	default:
		return nil, dnderr.InvalidArgumentf("unknown roll type %q", input.Type)
	}

	d20, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll check")
	}

	result.D20 = d20.RawTotal
	result.Modifier = stats.AbilityModifier(enc.AbilityScores.Get(result.Ability))
	result.Total = result.D20 + result.Modifier
	if result.Proficient {
		result.Total += result.Proficiency
	}

	return result, nil
}
