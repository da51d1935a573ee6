package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"
	"log"
	"math"

	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/domain/rulebook/movetext"
	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/entities"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// MoveCatalog resolves move definitions by key
type MoveCatalog interface {
	Move(key string) (*entities.Move, error)
}

// Service resolves move uses and d20 checks for roster records
type Service interface {
	// ResolveAttack rolls one use of moveKey by enc. It never returns an
	// error: unknown moves and internal failures come back as result kinds.
	// PP is not touched.
	ResolveAttack(ctx context.Context, enc *entities.Encounter, moveKey string) *attack.Result

	// RollCheck rolls an ability check, saving throw or skill check
	RollCheck(ctx context.Context, enc *entities.Encounter, input *CheckInput) (*attack.CheckResult, error)
}

// CheckInput selects the check to roll
type CheckInput struct {
	Type   attack.CheckType
	Option string
}

type service struct {
	moves  MoveCatalog
	roller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Moves  MoveCatalog
	Roller dice.Roller
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Moves == nil {
		panic("move catalog is required")
	}

	svc := &service{
		moves:  cfg.Moves,
		roller: cfg.Roller,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}

	return svc
}

// ResolveAttack resolves one use of a move
func (s *service) ResolveAttack(ctx context.Context, enc *entities.Encounter, moveKey string) *attack.Result {
	result := &attack.Result{
		UserName: enc.Name,
		MoveName: moveKey,
	}
	if slot := enc.FindMove(moveKey); slot != nil {
		result.MoveName = slot.Name
	}

	move, err := s.moves.Move(entities.MoveKey(moveKey))
	if err != nil {
		result.Kind = attack.KindReferenceNotFound
		result.Message = "Move not found"
		return result
	}

	if err := s.resolve(enc, move, result); err != nil {
		log.Printf("Combat: failed to resolve %s for %s: %v", move.ID, enc.Name, err)
		result.Kind = attack.KindError
		result.Check = nil
		result.Damage = nil
		result.Message = err.Error()
	}

	return result
}

func (s *service) resolve(enc *entities.Encounter, move *entities.Move, result *attack.Result) error {
	ability, mod := bestPowerAbility(enc.AbilityScores, move.Power)
	analysis := movetext.Analyze(move, enc.Level)

	hasPower := len(move.Power) > 0
	hasAttack := hasPower && analysis.AttackRoll
	hasSave := analysis.Save

	switch {
	case hasAttack && hasSave:
		result.Kind = attack.KindAttackAndSave
	case hasSave:
		result.Kind = attack.KindSave
	case hasPower:
		result.Kind = attack.KindAttack
	default:
		// Nothing to roll; the description speaks for itself
		result.Kind = attack.KindDescriptionOnly
		return nil
	}

	check := &attack.Check{
		Modifier:    mod,
		Ability:     ability,
		Proficiency: enc.ProficiencyBonus,
	}

	if hasAttack {
		d20, err := s.roller.Roll(1, 20, 0)
		if err != nil {
			return dnderr.Wrap(err, "failed to roll attack")
		}
		check.Rolled = true
		check.D20 = d20.RawTotal
		check.IsCrit = d20.IsCrit
	}

	if result.HasAttack() {
		check.Total = check.D20 + mod + enc.ProficiencyBonus
	}
	if result.HasSave() {
		check.SaveDC = 8 + mod + enc.ProficiencyBonus
		check.SaveType = analysis.SaveAbility
	}
	result.Check = check

	if !analysis.HasDamage {
		return nil
	}

	// A flat bonus inside the dice ("1d10 + 2") is added on each crit roll
	roll, err := attack.RollDamage(s.roller, analysis.Dice, check.IsCrit)
	if err != nil {
		return dnderr.Wrapf(err, "failed to roll damage %q", analysis.Dice)
	}

	result.Damage = buildDamage(enc, move, analysis, roll, check, result.Kind == attack.KindSave)
	return nil
}

func buildDamage(enc *entities.Encounter, move *entities.Move, analysis *movetext.Analysis, roll *attack.DamageRoll, check *attack.Check, onFailedSave bool) *attack.Damage {
	dmg := &attack.Damage{
		Type:         analysis.Formula.DamageType,
		Dice:         roll.Dice,
		IsCrit:       roll.Crit != nil,
		OnFailedSave: onFailedSave,
	}

	dmg.Terms = append(dmg.Terms, attack.Term{Kind: attack.TermDice, Label: roll.Dice, Value: roll.Base.Total})
	if roll.Crit != nil {
		dmg.Terms = append(dmg.Terms, attack.Term{Kind: attack.TermDice, Label: roll.Dice, Value: roll.Crit.Total})
	}
	total := roll.Sum()

	if analysis.Formula.ModifierBearing {
		dmg.Terms = append(dmg.Terms, attack.Term{Kind: attack.TermModifier, Label: check.AbilityLabel(), Value: check.Modifier})
		total += check.Modifier
	}

	if move.Type != "" && enc.HasType(move.Type) {
		// A zero or negative STAB still counts toward the total, it is just not shown
		if check.Modifier > 0 {
			dmg.Terms = append(dmg.Terms, attack.Term{Kind: attack.TermSTAB, Label: "STAB", Value: check.Modifier})
		}
		total += check.Modifier
	}

	dmg.Total = total
	return dmg
}

// bestPowerAbility returns the candidate with the highest modifier; the
// first listed wins ties. No candidates means modifier 0 and no ability.
func bestPowerAbility(scores entities.AbilityScores, power entities.PowerAbilities) (entities.Attribute, int) {
	var chosen entities.Attribute
	best := math.MinInt
	for _, attr := range power {
		mod := stats.AbilityModifier(scores.Get(attr))
		if mod > best {
			best = mod
			chosen = attr
		}
	}
	if chosen == "" {
		return "", 0
	}
	return chosen, best
}
