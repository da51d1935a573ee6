// Package encounter generates randomized, combat-ready records from an
// area's spawn list.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=mockencounter -source=service.go

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/wilran/internal/catalog"
	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/domain/rulebook/typechart"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/KirkDiggler/wilran/internal/uuid"
)

const (
	// ShinyChance is the n of the 1-in-n shiny roll
	ShinyChance = 100
	// HeldItemChance is the n of the 1-in-n held item roll
	HeldItemChance = 4
	// MaxMoves is how many moves a record knows
	MaxMoves = 4
	// XPPerLevelSR scales XP: level × SR × XPPerLevelSR
	XPPerLevelSR = 200

	none = "None"
)

// Catalog is the reference data the generator reads
type Catalog interface {
	Species(name string) (*entities.Species, error)
	Move(key string) (*entities.Move, error)
	Ability(id string) (*entities.Ability, error)
	HeldItems() []string
	TypeChart() *typechart.Chart
	Area(name string) (*entities.Area, error)
}

// Service generates encounter records
type Service interface {
	// Generate rolls one record from area's spawn list
	Generate(ctx context.Context, area *entities.Area) (*entities.Encounter, error)

	// GenerateInArea looks the area up by name and generates from it
	GenerateInArea(ctx context.Context, areaName string) (*entities.Encounter, error)
}

type service struct {
	catalog       Catalog
	roller        dice.Roller
	uuidGenerator uuid.Generator
	now           func() time.Time
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog       Catalog
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	Now           func() time.Time
}

// NewService creates a new encounter service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		catalog:       cfg.Catalog,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		now:           cfg.Now,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewShortGenerator()
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	return svc
}

// GenerateInArea looks the area up by name and generates from it
func (s *service) GenerateInArea(ctx context.Context, areaName string) (*entities.Encounter, error) {
	area, err := s.catalog.Area(areaName)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, area)
}

// Generate rolls one record. Randomness is drawn in a fixed order: entry,
// level, shiny, held item, gender, nature, ASI, moves, ability.
func (s *service) Generate(_ context.Context, area *entities.Area) (*entities.Encounter, error) {
	if area == nil || len(area.Species) == 0 {
		return nil, dnderr.InvalidArgument("area has no species entries")
	}

	entry, err := dice.Pick(s.roller, area.Species)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to pick area entry")
	}

	level, err := dice.Between(s.roller, entry.MinLevel, entry.MaxLevel)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to roll level for %s", entry.Name)
	}

	species, err := s.catalog.Species(entry.Name)
	if err != nil {
		return nil, dnderr.Wrapf(err, "area %s lists an unknown species", area.Name)
	}

	enc := &entities.Encounter{
		ID:               s.uuidGenerator.New(),
		Name:             strings.ToUpper(entry.Name),
		SpeciesName:      species.Name,
		Level:            level,
		SR:               species.SR,
		XP:               int(XPPerLevelSR * float64(level) * species.SR),
		ProficiencyBonus: stats.ProficiencyBonus(level),
		Types:            append([]string(nil), species.Types...),
		Size:             species.Size,
		AC:               species.AC,
		Speed:            entities.FormatMeasures(species.Speed),
		Senses:           entities.FormatMeasures(species.Senses),
		Skills:           append([]string(nil), species.Skills...),
		SavingThrows:     append([]string(nil), species.SavingThrows...),
		CreatedAt:        s.now().UTC(),
	}

	if enc.Shiny, err = dice.OneIn(s.roller, ShinyChance); err != nil {
		return nil, dnderr.Wrap(err, "failed to roll shiny")
	}
	enc.ImageURL = species.Media.Main
	if enc.Shiny {
		enc.ImageURL = species.Media.MainShiny
	}

	if enc.HeldItem, err = s.rollHeldItem(); err != nil {
		return nil, err
	}

	if enc.Gender, err = s.rollGender(species); err != nil {
		return nil, err
	}

	profile, err := s.catalog.TypeChart().Profile(species.Types)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to resolve types for %s", species.Name)
	}
	enc.Vulnerabilities = profile.Vulnerabilities
	enc.Resistances = profile.Resistances
	enc.Immunities = profile.Immunities

	if err := s.rollStats(enc, species); err != nil {
		return nil, err
	}

	if enc.Moves, err = s.rollMoves(species, level); err != nil {
		return nil, err
	}

	if err := s.rollAbilities(enc, species); err != nil {
		return nil, err
	}

	log.Printf("Encounter: generated %s (%s) Lv. %d in %s, shiny=%t", enc.Name, enc.ID, enc.Level, area.Name, enc.Shiny)
	return enc, nil
}

func (s *service) rollHeldItem() (string, error) {
	hit, err := dice.OneIn(s.roller, HeldItemChance)
	if err != nil {
		return "", dnderr.Wrap(err, "failed to roll held item")
	}

	items := s.catalog.HeldItems()
	if !hit || len(items) == 0 {
		return none, nil
	}

	item, err := dice.Pick(s.roller, items)
	if err != nil {
		return "", dnderr.Wrap(err, "failed to pick held item")
	}
	return item, nil
}

func (s *service) rollGender(species *entities.Species) (string, error) {
	female, male, genderless, err := species.GenderRatio()
	if err != nil {
		return "", dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to read gender ratio")
	}
	if genderless {
		return "Genderless", nil
	}

	idx, err := dice.Weighted(s.roller, []int{female, male})
	if err != nil {
		return "", dnderr.Wrap(err, "failed to roll gender")
	}
	if idx == 0 {
		return "Female", nil
	}
	return "Male", nil
}

// rollStats applies nature then ASI to the species scores and derives HP
// from the final constitution
func (s *service) rollStats(enc *entities.Encounter, species *entities.Species) error {
	_, natured, natureText, err := stats.ApplyNature(s.roller, species.Attributes)
	if err != nil {
		return err
	}
	enc.Nature = natureText

	scores, _, err := stats.ApplyASI(s.roller, species, natured, enc.Level)
	if err != nil {
		return err
	}
	enc.AbilityScores = scores

	hp, err := stats.DerivedHP(species, scores, enc.Level)
	if err != nil {
		return err
	}
	enc.MaxHP = hp
	enc.CurrentHP = hp
	return nil
}

func (s *service) rollMoves(species *entities.Species, level int) ([]*entities.MoveSlot, error) {
	pool := species.Moves.Available(level)
	if len(pool) == 0 {
		return []*entities.MoveSlot{{Name: none}}, nil
	}

	chosen, err := dice.Sample(s.roller, pool, MaxMoves)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to sample moves")
	}

	slots := make([]*entities.MoveSlot, 0, len(chosen))
	for _, key := range chosen {
		slot := &entities.MoveSlot{Key: key, Name: catalog.MoveName(key)}
		move, err := s.catalog.Move(key)
		if err != nil {
			log.Printf("Encounter: move %s of %s is not in the catalog, PP set to 0", key, species.Name)
		} else {
			slot.Name = move.Name
			slot.MaxPP = move.PP
		}
		slot.PP = slot.MaxPP
		slots = append(slots, slot)
	}
	return slots, nil
}

func (s *service) rollAbilities(enc *entities.Encounter, species *entities.Species) error {
	if normal := species.NormalAbilities(); len(normal) > 0 {
		id, err := dice.Pick(s.roller, normal)
		if err != nil {
			return dnderr.Wrap(err, "failed to pick ability")
		}
		enc.Ability = s.abilityInfo(id)
	}

	for _, id := range species.HiddenAbilities() {
		enc.HiddenAbilities = append(enc.HiddenAbilities, s.abilityInfo(id))
	}
	return nil
}

// abilityInfo resolves id, falling back to the bare id for abilities the
// catalog does not describe
func (s *service) abilityInfo(id string) *entities.AbilityInfo {
	a, err := s.catalog.Ability(id)
	if err != nil {
		return &entities.AbilityInfo{ID: id, Name: id}
	}
	return &entities.AbilityInfo{ID: a.ID, Name: a.Name, Description: a.Description}
}
