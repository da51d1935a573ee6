package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Attribute is one of the six ability score keys used in the catalog ("str").
type Attribute string

const (
	AttributeStrength     Attribute = "str"
	AttributeDexterity    Attribute = "dex"
	AttributeConstitution Attribute = "con"
	AttributeIntelligence Attribute = "int"
	AttributeWisdom       Attribute = "wis"
	AttributeCharisma     Attribute = "cha"
)

// Attributes lists every attribute in sheet order
var Attributes = []Attribute{
	AttributeStrength,
	AttributeDexterity,
	AttributeConstitution,
	AttributeIntelligence,
	AttributeWisdom,
	AttributeCharisma,
}

// Short is the upper-case abbreviation used in roll breakdowns ("STR")
func (a Attribute) Short() string {
	return strings.ToUpper(string(a))
}

// Title is the capitalized abbreviation used in nature text ("Str")
func (a Attribute) Title() string {
	s := string(a)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Name is the full attribute name ("Strength")
func (a Attribute) Name() string {
	switch a {
	case AttributeStrength:
		return "Strength"
	case AttributeDexterity:
		return "Dexterity"
	case AttributeConstitution:
		return "Constitution"
	case AttributeIntelligence:
		return "Intelligence"
	case AttributeWisdom:
		return "Wisdom"
	case AttributeCharisma:
		return "Charisma"
	default:
		return string(a)
	}
}

// ParseAttribute accepts "str", "STR", "strength" and similar spellings
func ParseAttribute(s string) (Attribute, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) >= 3 {
		key = key[:3]
	}
	for _, attr := range Attributes {
		if string(attr) == key {
			return attr, true
		}
	}
	return "", false
}

// AbilityScores maps each attribute to its score
type AbilityScores map[Attribute]int

// UnmarshalJSON accepts any attribute spelling ParseAttribute understands as
// a key
func (s *AbilityScores) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(AbilityScores, len(raw))
	for k, v := range raw {
		attr, ok := ParseAttribute(k)
		if !ok {
			return fmt.Errorf("unknown attribute %q", k)
		}
		out[attr] = v
	}
	*s = out
	return nil
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Get returns the score for attr, or 10 when the sheet does not carry it
func (s AbilityScores) Get(attr Attribute) int {
	if v, ok := s[attr]; ok {
		return v
	}
	return 10
}

// Keys returns the attributes present, in sheet order
func (s AbilityScores) Keys() []Attribute {
	keys := make([]Attribute, 0, len(s))
	for _, attr := range Attributes {
		if _, ok := s[attr]; ok {
			keys = append(keys, attr)
		}
	}
	return keys
}

// Sum totals every score on the sheet
func (s AbilityScores) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// FormatModifier renders a modifier with an explicit sign ("+3", "-1", "+0")
func FormatModifier(mod int) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}
