package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wilran/internal/catalog"
	"github.com/KirkDiggler/wilran/internal/domain/rulebook/typechart"
	"github.com/KirkDiggler/wilran/internal/entities"
)

// TestTypeMatrix is a small square chart: fire, grass, normal, ghost, water.
// Ghost ignores normal attacks.
func TestTypeMatrix() typechart.Matrix {
	return typechart.Matrix{
		"fire":   {"fire": 0.5, "grass": 0.5, "normal": 1, "ghost": 1, "water": 2},
		"grass":  {"fire": 2, "grass": 0.5, "normal": 1, "ghost": 1, "water": 0.5},
		"normal": {"fire": 1, "grass": 1, "normal": 1, "ghost": 0, "water": 1},
		"ghost":  {"fire": 1, "grass": 1, "normal": 0, "ghost": 2, "water": 1},
		"water":  {"fire": 0.5, "grass": 2, "normal": 1, "ghost": 1, "water": 0.5},
	}
}

// CreateTestSpecies creates a single-type fire species
func CreateTestSpecies(name string) *entities.Species {
	return &entities.Species{
		Name:     name,
		Types:    []string{"fire"},
		Size:     "small",
		AC:       13,
		HP:       12,
		HitDice:  "d8",
		MinLevel: 1,
		Attributes: entities.AbilityScores{
			entities.AttributeStrength:     12,
			entities.AttributeDexterity:    14,
			entities.AttributeConstitution: 12,
			entities.AttributeIntelligence: 10,
			entities.AttributeWisdom:       11,
			entities.AttributeCharisma:     9,
		},
		Skills:       []string{"perception"},
		SavingThrows: []string{"dex"},
		Moves: entities.MovePool{
			Start:  []string{"ember", "tackle"},
			Level2: []string{"growl"},
			Level6: []string{"smokescreen"},
		},
		Abilities: []entities.SpeciesAbility{
			{ID: "blaze"},
			{ID: "solar-power", Hidden: true},
		},
		SR:     1,
		Gender: "1:7",
		Media: entities.Media{
			Main:      "https://img.example/" + name + ".png",
			MainShiny: "https://img.example/" + name + "-shiny.png",
		},
		Speed:  []entities.Measure{{Type: "walk", Value: 30}},
		Senses: []entities.Measure{{Text: "Darkvision 60ft"}},
	}
}

// CreateTestMoves creates an attack, a save, a status and a flat move
func CreateTestMoves() []*entities.Move {
	return []*entities.Move{
		{
			ID:          "ember",
			Type:        "fire",
			Power:       entities.PowerAbilities{entities.AttributeStrength, entities.AttributeDexterity},
			PP:          10,
			Description: []string{"Make a ranged attack.", "On a hit, the target takes 1d6 + MOVE fire damage."},
		},
		{
			ID:          "tackle",
			Type:        "normal",
			Power:       entities.PowerAbilities{entities.AttributeStrength},
			PP:          15,
			Description: []string{"Make a melee attack. On a hit, the target takes 1d6 + MOVE normal damage."},
		},
		{
			ID:          "growl",
			Type:        "normal",
			PP:          20,
			Description: []string{"Each creature that can hear you has its attack lowered."},
		},
		{
			ID:          "smokescreen",
			Type:        "normal",
			Power:       entities.PowerAbilities{entities.AttributeDexterity},
			PP:          10,
			Description: []string{"Creatures in the cloud must make a con save or be blinded."},
		},
	}
}

// CreateTestAbilities creates the abilities CreateTestSpecies references
func CreateTestAbilities() []*entities.Ability {
	return []*entities.Ability{
		{ID: "blaze", Name: "Blaze", Description: "Fire moves hit harder when hurt."},
		{ID: "solar-power", Name: "Solar Power", Description: "Stronger in sunlight."},
	}
}

// CreateTestCatalog builds a catalog with one species, its moves and
// abilities, two held items and one area
func CreateTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(
		[]*entities.Species{CreateTestSpecies("Charmander")},
		CreateTestMoves(),
		CreateTestAbilities(),
		[]string{"Oran Berry", "Charcoal"},
		TestTypeMatrix(),
		[]*entities.Area{{
			Name:    "Volcano",
			Species: []entities.AreaEntry{{Name: "Charmander", MinLevel: 3, MaxLevel: 6}},
		}},
	)
	require.NoError(t, err)
	return c
}

// CreateTestEncounter creates a level 5 record with two moves
func CreateTestEncounter(id, name string) *entities.Encounter {
	return &entities.Encounter{
		ID:               id,
		Name:             name,
		SpeciesName:      name,
		Level:            5,
		SR:               1,
		XP:               1000,
		ProficiencyBonus: 3,
		Gender:           "Male",
		Types:            []string{"fire"},
		Size:             "small",
		Nature:           "Hardy",
		AC:               13,
		CurrentHP:        24,
		MaxHP:            24,
		AbilityScores: entities.AbilityScores{
			entities.AttributeStrength:     16,
			entities.AttributeDexterity:    14,
			entities.AttributeConstitution: 12,
			entities.AttributeIntelligence: 10,
			entities.AttributeWisdom:       11,
			entities.AttributeCharisma:     9,
		},
		Skills:       []string{"perception"},
		SavingThrows: []string{"dex"},
		Moves: []*entities.MoveSlot{
			{Key: "ember", Name: "Ember", PP: 2, MaxPP: 2},
			{Key: "growl", Name: "Growl", PP: 1, MaxPP: 1},
		},
		HeldItem:  "None",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}
