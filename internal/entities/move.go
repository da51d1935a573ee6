package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Move is an immutable move definition from the move catalog
type Move struct {
	ID           string         `json:"id"`
	Name         string         `json:"name,omitempty"`
	Type         string         `json:"type"`
	Power        PowerAbilities `json:"power"`
	PP           int            `json:"pp"`
	Description  []string       `json:"description"`
	HigherLevels string         `json:"higherLevels,omitempty"`
	Time         string         `json:"time,omitempty"`
	Duration     string         `json:"duration,omitempty"`
	Range        string         `json:"range,omitempty"`
}

// PowerAbilities lists the attributes a move may use for its roll. The
// catalog writes "none" for status moves, which decodes to an empty list.
type PowerAbilities []Attribute

// UnmarshalJSON implements custom JSON unmarshaling for PowerAbilities
func (p *PowerAbilities) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = nil
		return nil
	}

	var sentinel string
	if err := json.Unmarshal(data, &sentinel); err == nil {
		if strings.EqualFold(sentinel, "none") || sentinel == "" {
			*p = nil
			return nil
		}
		attr, ok := ParseAttribute(sentinel)
		if !ok {
			return fmt.Errorf("unknown power ability %q", sentinel)
		}
		*p = PowerAbilities{attr}
		return nil
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("power must be \"none\" or a list of abilities: %w", err)
	}

	out := make(PowerAbilities, 0, len(raw))
	for _, r := range raw {
		attr, ok := ParseAttribute(r)
		if !ok {
			return fmt.Errorf("unknown power ability %q", r)
		}
		out = append(out, attr)
	}
	*p = out
	return nil
}

// MarshalJSON writes "none" for an empty list so catalogs round-trip
func (p PowerAbilities) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return json.Marshal("none")
	}
	return json.Marshal([]Attribute(p))
}
