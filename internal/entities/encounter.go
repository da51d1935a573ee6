package entities

import (
	"strings"
	"time"
)

// Encounter is one randomized, combat-ready creature on the roster. It is
// created by the encounter generator and afterwards only changes through its
// PP and HP methods.
type Encounter struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	SpeciesName      string         `json:"species_name"`
	Shiny            bool           `json:"shiny"`
	Level            int            `json:"level"`
	SR               float64        `json:"sr"`
	XP               int            `json:"xp"`
	ProficiencyBonus int            `json:"proficiency_bonus"`
	Gender           string         `json:"gender"`
	Types            []string       `json:"types"`
	Size             string         `json:"size"`
	Nature           string         `json:"nature"`
	AC               int            `json:"ac"`
	CurrentHP        int            `json:"current_hp"`
	MaxHP            int            `json:"max_hp"`
	Speed            string         `json:"speed"`
	Senses           string         `json:"senses"`
	AbilityScores    AbilityScores  `json:"ability_scores"`
	Skills           []string       `json:"skills"`
	SavingThrows     []string       `json:"saving_throws"`
	Vulnerabilities  []string       `json:"vulnerabilities"`
	Resistances      []string       `json:"resistances"`
	Immunities       []string       `json:"immunities"`
	Moves            []*MoveSlot    `json:"moves"`
	Ability          *AbilityInfo   `json:"ability"`
	HiddenAbilities  []*AbilityInfo `json:"hidden_abilities"`
	HeldItem         string         `json:"held_item"`
	ImageURL         string         `json:"image_url"`
	CreatedAt        time.Time      `json:"created_at"`
}

// MoveSlot is a chosen move with its own PP counter
type MoveSlot struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	PP    int    `json:"pp"`
	MaxPP int    `json:"max_pp"`
}

// AbilityInfo is a resolved ability shown on the record
type AbilityInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Clone returns a deep copy, so PP and HP changes on the copy do not leak
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}

	out := *e
	out.Types = cloneStrings(e.Types)
	out.Skills = cloneStrings(e.Skills)
	out.SavingThrows = cloneStrings(e.SavingThrows)
	out.Vulnerabilities = cloneStrings(e.Vulnerabilities)
	out.Resistances = cloneStrings(e.Resistances)
	out.Immunities = cloneStrings(e.Immunities)
	if e.AbilityScores != nil {
		out.AbilityScores = e.AbilityScores.Clone()
	}

	if e.Moves != nil {
		out.Moves = make([]*MoveSlot, len(e.Moves))
		for i, slot := range e.Moves {
			s := *slot
			out.Moves[i] = &s
		}
	}
	if e.Ability != nil {
		a := *e.Ability
		out.Ability = &a
	}
	if e.HiddenAbilities != nil {
		out.HiddenAbilities = make([]*AbilityInfo, len(e.HiddenAbilities))
		for i, h := range e.HiddenAbilities {
			c := *h
			out.HiddenAbilities[i] = &c
		}
	}
	return &out
}

// HasType reports whether the record carries type t (case-insensitive)
func (e *Encounter) HasType(t string) bool {
	for _, own := range e.Types {
		if strings.EqualFold(strings.TrimSpace(own), strings.TrimSpace(t)) {
			return true
		}
	}
	return false
}

// FindMove looks a slot up by move key or display name
func (e *Encounter) FindMove(keyOrName string) *MoveSlot {
	want := MoveKey(keyOrName)
	for _, slot := range e.Moves {
		if slot.Key == want {
			return slot
		}
	}
	return nil
}

// SpendPP decrements the slot's PP. It returns false, leaving PP untouched,
// when the move is unknown or already at 0.
func (e *Encounter) SpendPP(keyOrName string) bool {
	slot := e.FindMove(keyOrName)
	if slot == nil || slot.PP <= 0 {
		return false
	}
	slot.PP--
	return true
}

// ResetPP restores every slot to its full PP
func (e *Encounter) ResetPP() {
	for _, slot := range e.Moves {
		slot.PP = slot.MaxPP
	}
}

// SetHP sets current HP clamped to [0, max] and returns the applied change
func (e *Encounter) SetHP(hp int) int {
	old := e.CurrentHP
	e.CurrentHP = clamp(hp, 0, e.MaxHP)
	return e.CurrentHP - old
}

// Heal raises current HP up to max and returns the amount actually healed
func (e *Encounter) Heal(amount int) int {
	return e.SetHP(e.CurrentHP + amount)
}

// TakeDamage lowers current HP down to 0 and returns the damage actually taken
func (e *Encounter) TakeDamage(amount int) int {
	return -e.SetHP(e.CurrentHP - amount)
}

// IsKnockedOut reports whether current HP is 0
func (e *Encounter) IsKnockedOut() bool {
	return e.CurrentHP == 0
}

// IsProficientSave reports whether attr is listed among the saving throws
func (e *Encounter) IsProficientSave(attr Attribute) bool {
	for _, s := range e.SavingThrows {
		if parsed, ok := ParseAttribute(s); ok && parsed == attr {
			return true
		}
	}
	return false
}

// IsProficientSkill reports whether skill is listed, ignoring case and spaces
func (e *Encounter) IsProficientSkill(skill string) bool {
	want := compactKey(skill)
	for _, s := range e.Skills {
		if compactKey(s) == want {
			return true
		}
	}
	return false
}

// MoveKey converts a display name ("Thunder Punch") to a catalog key
// ("thunder-punch")
func MoveKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func compactKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
