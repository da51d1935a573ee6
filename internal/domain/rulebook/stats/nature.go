package stats

import (
	"fmt"

	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/entities"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
)

// Nature owns a 4-value slice of a d100 roll and nudges up to two scores
type Nature struct {
	Name     string
	Min      int
	Max      int
	Increase entities.Attribute
	Decrease entities.Attribute
}

// IsNeutral reports whether the nature changes nothing
func (n Nature) IsNeutral() bool {
	return n.Increase == "" && n.Decrease == ""
}

// Text renders the descriptor shown on the record, e.g.
// "Lonely (+1 Str, -1 Con)" or "Hardy".
func (n Nature) Text() string {
	if n.IsNeutral() {
		return n.Name
	}

	var incr, decr string
	if n.Increase != "" {
		incr = "+1 " + n.Increase.Title()
	}
	if n.Decrease != "" {
		decr = "-1 " + n.Decrease.Title()
	}

	switch {
	case incr != "" && decr != "":
		return fmt.Sprintf("%s (%s, %s)", n.Name, incr, decr)
	case incr != "":
		return fmt.Sprintf("%s (%s)", n.Name, incr)
	default:
		return fmt.Sprintf("%s (%s)", n.Name, decr)
	}
}

const (
	str = entities.AttributeStrength
	dex = entities.AttributeDexterity
	con = entities.AttributeConstitution
	wis = entities.AttributeWisdom
	cha = entities.AttributeCharisma
)

var natureTable = []Nature{
	{Name: "Hardy", Min: 1, Max: 4},
	{Name: "Lonely", Min: 5, Max: 8, Increase: str, Decrease: con},
	{Name: "Brave", Min: 9, Max: 12, Increase: str, Decrease: dex},
	{Name: "Adamant", Min: 13, Max: 16, Increase: str, Decrease: wis},
	{Name: "Naughty", Min: 17, Max: 20, Increase: str, Decrease: cha},
	{Name: "Bold", Min: 21, Max: 24, Increase: con, Decrease: str},
	{Name: "Docile", Min: 25, Max: 28},
	{Name: "Relaxed", Min: 29, Max: 32, Increase: con, Decrease: dex},
	{Name: "Impish", Min: 33, Max: 36, Increase: con, Decrease: wis},
	{Name: "Lax", Min: 37, Max: 40, Increase: con, Decrease: cha},
	{Name: "Timid", Min: 41, Max: 44, Increase: dex, Decrease: str},
	{Name: "Hasty", Min: 45, Max: 48, Increase: dex, Decrease: con},
	{Name: "Serious", Min: 49, Max: 52},
	{Name: "Jolly", Min: 53, Max: 56, Increase: dex, Decrease: wis},
	{Name: "Naive", Min: 57, Max: 60, Increase: dex, Decrease: cha},
	{Name: "Modest", Min: 61, Max: 64, Increase: wis, Decrease: str},
	{Name: "Mild", Min: 65, Max: 68, Increase: wis, Decrease: con},
	{Name: "Quiet", Min: 69, Max: 72, Increase: wis, Decrease: dex},
	{Name: "Bashful", Min: 73, Max: 76},
	{Name: "Rash", Min: 77, Max: 80, Increase: wis, Decrease: cha},
	{Name: "Calm", Min: 81, Max: 84, Increase: cha, Decrease: str},
	{Name: "Gentle", Min: 85, Max: 88, Increase: cha, Decrease: con},
	{Name: "Sassy", Min: 89, Max: 92, Increase: cha, Decrease: dex},
	{Name: "Careful", Min: 93, Max: 96, Increase: cha, Decrease: wis},
	{Name: "Quirky", Min: 97, Max: 100},
}

func init() {
	if err := ValidateNatureTable(natureTable); err != nil {
		panic(err)
	}
}

// Natures returns a copy of the nature table in roll order
func Natures() []Nature {
	out := make([]Nature, len(natureTable))
	copy(out, natureTable)
	return out
}

// ValidateNatureTable checks that table partitions 1..100 with no gaps or
// overlaps and that no nature raises and lowers the same ability.
func ValidateNatureTable(table []Nature) error {
	owner := make(map[int]string, 100)
	for _, n := range table {
		if n.Min > n.Max {
			return fmt.Errorf("nature %s has an empty range %d-%d", n.Name, n.Min, n.Max)
		}
		if n.Increase != "" && n.Increase == n.Decrease {
			return fmt.Errorf("nature %s raises and lowers %s", n.Name, n.Increase)
		}
		for v := n.Min; v <= n.Max; v++ {
			if v < 1 || v > 100 {
				return fmt.Errorf("nature %s covers %d, outside 1-100", n.Name, v)
			}
			if prev, taken := owner[v]; taken {
				return fmt.Errorf("natures %s and %s both cover %d", prev, n.Name, v)
			}
			owner[v] = n.Name
		}
	}
	for v := 1; v <= 100; v++ {
		if _, ok := owner[v]; !ok {
			return fmt.Errorf("no nature covers %d", v)
		}
	}
	return nil
}

// NatureFor returns the nature owning a d100 value
func NatureFor(roll int) (Nature, error) {
	for _, n := range natureTable {
		if roll >= n.Min && roll <= n.Max {
			return n, nil
		}
	}
	return Nature{}, dnderr.InvalidArgumentf("nature roll %d is outside 1-100", roll)
}

// ApplyNature rolls a d100, picks the owning nature and applies it to a copy
// of scores. The decreased score is not clamped.
func ApplyNature(r dice.Roller, scores entities.AbilityScores) (Nature, entities.AbilityScores, string, error) {
	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return Nature{}, nil, "", dnderr.Wrap(err, "failed to roll nature")
	}

	nature, err := NatureFor(result.Total)
	if err != nil {
		return Nature{}, nil, "", err
	}

	modified := scores.Clone()
	if nature.Increase != "" {
		modified[nature.Increase] = modified.Get(nature.Increase) + 1
	}
	if nature.Decrease != "" {
		modified[nature.Decrease] = modified.Get(nature.Decrease) - 1
	}

	return nature, modified, nature.Text(), nil
}
