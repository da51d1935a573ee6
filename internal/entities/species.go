package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Species is an immutable creature template from the species catalog
type Species struct {
	Name         string           `json:"name"`
	Types        []string         `json:"type"`
	Size         string           `json:"size"`
	AC           int              `json:"ac"`
	HP           int              `json:"hp"`
	HitDice      string           `json:"hitDice"`
	MinLevel     int              `json:"minLevel"`
	Evolution    *Evolution       `json:"evolution,omitempty"`
	Attributes   AbilityScores    `json:"attributes"`
	Skills       []string         `json:"skills"`
	SavingThrows []string         `json:"savingThrows"`
	Moves        MovePool         `json:"moves"`
	Abilities    []SpeciesAbility `json:"abilities"`
	SR           float64          `json:"sr"`
	Gender       string           `json:"gender"`
	Media        Media            `json:"media"`
	Speed        []Measure        `json:"speed"`
	Senses       []Measure        `json:"senses"`
	Description  string           `json:"description,omitempty"`
}

// Evolution carries the evolution line length used for ASI pacing. A nil
// MaxStage means the key was absent, which differs from an explicit 0.
type Evolution struct {
	MaxStage *int `json:"maxStage,omitempty"`
}

// MaxStage returns the evolution line length, 1 when the template has none.
// An explicit value is returned as is, 0 included.
func (s *Species) MaxStage() int {
	if s.Evolution == nil || s.Evolution.MaxStage == nil {
		return 1
	}
	return *s.Evolution.MaxStage
}

// SpeciesAbility references an abilities catalog entry
type SpeciesAbility struct {
	ID     string `json:"id"`
	Hidden bool   `json:"hidden"`
}

// Media holds image references
type Media struct {
	Main      string `json:"main"`
	MainShiny string `json:"mainShiny"`
}

// MovePool groups move keys by the level at which they unlock
type MovePool struct {
	Start   []string `json:"start"`
	Level2  []string `json:"level2"`
	Level6  []string `json:"level6"`
	Level10 []string `json:"level10"`
	Level14 []string `json:"level14"`
	Level18 []string `json:"level18"`
}

// Available returns the starting moves plus every bucket whose threshold is
// at or below level, in unlock order.
func (p MovePool) Available(level int) []string {
	buckets := []struct {
		threshold int
		moves     []string
	}{
		{2, p.Level2},
		{6, p.Level6},
		{10, p.Level10},
		{14, p.Level14},
		{18, p.Level18},
	}

	out := make([]string, 0, len(p.Start))
	out = append(out, p.Start...)
	for _, b := range buckets {
		if level >= b.threshold {
			out = append(out, b.moves...)
		}
	}
	return out
}

// NormalAbilities returns the ids of the non-hidden abilities
func (s *Species) NormalAbilities() []string {
	var ids []string
	for _, a := range s.Abilities {
		if !a.Hidden {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// HiddenAbilities returns the ids of the hidden abilities
func (s *Species) HiddenAbilities() []string {
	var ids []string
	for _, a := range s.Abilities {
		if a.Hidden {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// GenderRatio parses the "F:M" ratio. genderless is true for "genderless"
// and for an empty or 0:0 ratio.
func (s *Species) GenderRatio() (female, male int, genderless bool, err error) {
	g := strings.TrimSpace(s.Gender)
	if g == "" || strings.EqualFold(g, "genderless") {
		return 0, 0, true, nil
	}

	parts := strings.Split(g, ":")
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("invalid gender ratio %q", s.Gender)
	}

	female, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid gender ratio %q: %w", s.Gender, err)
	}
	male, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false, fmt.Errorf("invalid gender ratio %q: %w", s.Gender, err)
	}

	return female, male, female+male == 0, nil
}
