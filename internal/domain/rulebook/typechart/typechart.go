// Package typechart resolves defensive type effectiveness from a data-driven
// attack × defense matrix.
package typechart

import (
	"sort"
	"strings"

	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// ImmunitiesNone is reported when a defender has no immunities
const ImmunitiesNone = "None"

// Matrix is the raw chart as stored in typechart.json: defense type ->
// attack type -> multiplier.
type Matrix map[string]map[string]float64

// Chart is an immutable, validated type chart
type Chart struct {
	types  []string
	matrix Matrix
}

// Profile is the full defensive picture for one set of types
type Profile struct {
	Multipliers     map[string]float64
	Vulnerabilities []string
	Resistances     []string
	Immunities      []string
}

// New validates matrix and builds a chart. Every defense row must carry a
// multiplier for every type in the chart and multipliers may not be negative.
func New(matrix Matrix) (*Chart, error) {
	if len(matrix) == 0 {
		return nil, dnderr.InvalidArgument("type chart is empty")
	}

	normalized := make(Matrix, len(matrix))
	types := make([]string, 0, len(matrix))
	for defense, row := range matrix {
		key := normalize(defense)
		if _, dup := normalized[key]; dup {
			return nil, dnderr.InvalidArgumentf("type %q appears twice in the chart", defense)
		}
		normalizedRow := make(map[string]float64, len(row))
		for attack, mult := range row {
			if mult < 0 {
				return nil, dnderr.InvalidArgumentf("negative multiplier %v for %s against %s", mult, attack, defense)
			}
			normalizedRow[normalize(attack)] = mult
		}
		normalized[key] = normalizedRow
		types = append(types, key)
	}
	sort.Strings(types)

	for _, defense := range types {
		row := normalized[defense]
		if len(row) != len(types) {
			return nil, dnderr.InvalidArgumentf("type chart row %q has %d entries, want %d", defense, len(row), len(types))
		}
		for _, attack := range types {
			if _, ok := row[attack]; !ok {
				return nil, dnderr.InvalidArgumentf("type chart row %q is missing attack type %q", defense, attack)
			}
		}
	}

	return &Chart{types: types, matrix: normalized}, nil
}

// Types returns every type label in the chart, sorted
func (c *Chart) Types() []string {
	out := make([]string, len(c.types))
	copy(out, c.types)
	return out
}

// Has reports whether t is a known type label
func (c *Chart) Has(t string) bool {
	_, ok := c.matrix[normalize(t)]
	return ok
}

// Multiplier returns the single-type lookup for attack against defense
func (c *Chart) Multiplier(attack, defense string) (float64, error) {
	row, ok := c.matrix[normalize(defense)]
	if !ok {
		return 0, dnderr.InvalidTypef("unknown type %q", defense)
	}
	mult, ok := row[normalize(attack)]
	if !ok {
		return 0, dnderr.InvalidTypef("unknown type %q", attack)
	}
	return mult, nil
}

// DefensiveMultipliers returns, for every attacking type, the product of the
// chart lookups across the defender's one or two types.
func (c *Chart) DefensiveMultipliers(types []string) (map[string]float64, error) {
	if len(types) == 0 || len(types) > 2 {
		return nil, dnderr.InvalidTypef("a defender must have 1 or 2 types, got %d", len(types)).
			WithMeta("types", types)
	}

	rows := make([]map[string]float64, len(types))
	for i, t := range types {
		row, ok := c.matrix[normalize(t)]
		if !ok {
			return nil, dnderr.InvalidTypef("unknown type %q", t).WithMeta("types", types)
		}
		rows[i] = row
	}

	out := make(map[string]float64, len(c.types))
	for _, attack := range c.types {
		mult := 1.0
		for _, row := range rows {
			mult *= row[attack]
		}
		out[attack] = mult
	}
	return out, nil
}

// Vulnerabilities lists attack types dealing more than normal damage
func (c *Chart) Vulnerabilities(types []string) ([]string, error) {
	return c.filter(types, func(m float64) bool { return m > 1 })
}

// Resistances lists attack types dealing reduced, non-zero damage
func (c *Chart) Resistances(types []string) ([]string, error) {
	return c.filter(types, func(m float64) bool { return m > 0 && m < 1 })
}

// Immunities lists attack types dealing no damage, or the single entry
// ImmunitiesNone when there are none.
func (c *Chart) Immunities(types []string) ([]string, error) {
	imm, err := c.filter(types, func(m float64) bool { return m == 0 })
	if err != nil {
		return nil, err
	}
	if len(imm) == 0 {
		return []string{ImmunitiesNone}, nil
	}
	return imm, nil
}

// Profile resolves all three defensive lists in one pass
func (c *Chart) Profile(types []string) (*Profile, error) {
	mults, err := c.DefensiveMultipliers(types)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Multipliers:     mults,
		Vulnerabilities: []string{},
		Resistances:     []string{},
		Immunities:      []string{},
	}
	for _, attack := range c.types {
		switch m := mults[attack]; {
		case m == 0:
			p.Immunities = append(p.Immunities, attack)
		case m < 1:
			p.Resistances = append(p.Resistances, attack)
		case m > 1:
			p.Vulnerabilities = append(p.Vulnerabilities, attack)
		}
	}
	if len(p.Immunities) == 0 {
		p.Immunities = []string{ImmunitiesNone}
	}
	return p, nil
}

func (c *Chart) filter(types []string, keep func(float64) bool) ([]string, error) {
	mults, err := c.DefensiveMultipliers(types)
	if err != nil {
		return nil, err
	}

	out := []string{}
	// c.types is sorted so the result is too
	for _, attack := range c.types {
		if keep(mults[attack]) {
			out = append(out, attack)
		}
	}
	return out, nil
}

func normalize(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
