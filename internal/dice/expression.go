package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Expression is a parsed "NdS+B" dice string. A flat number parses to
// Count 0 and Bonus N.
type Expression struct {
	Count int
	Sides int
	Bonus int
}

var (
	expressionPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:([+-])(\d+))?$`)
	flatPattern       = regexp.MustCompile(`^[+-]?\d+$`)
)

// ParseExpression parses dice notation such as "2d6", "1d8 + 2" or "4"
func ParseExpression(s string) (Expression, error) {
	compact := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if compact == "" {
		return Expression{}, fmt.Errorf("empty dice expression")
	}

	if flatPattern.MatchString(compact) {
		bonus, err := strconv.Atoi(compact)
		if err != nil {
			return Expression{}, fmt.Errorf("invalid dice expression %q: %w", s, err)
		}
		return Expression{Bonus: bonus}, nil
	}

	m := expressionPattern.FindStringSubmatch(compact)
	if m == nil {
		return Expression{}, fmt.Errorf("invalid dice expression %q", s)
	}

	count := 1
	if m[1] != "" {
		count, _ = strconv.Atoi(m[1])
	}
	sides, _ := strconv.Atoi(m[2])
	if count < 1 || sides < 1 {
		return Expression{}, fmt.Errorf("invalid dice expression %q", s)
	}

	bonus := 0
	if m[4] != "" {
		bonus, _ = strconv.Atoi(m[4])
		if m[3] == "-" {
			bonus = -bonus
		}
	}

	return Expression{Count: count, Sides: sides, Bonus: bonus}, nil
}

// String renders the expression in compact notation
func (e Expression) String() string {
	if e.Count == 0 {
		return strconv.Itoa(e.Bonus)
	}

	base := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	switch {
	case e.Bonus > 0:
		return fmt.Sprintf("%s+%d", base, e.Bonus)
	case e.Bonus < 0:
		return fmt.Sprintf("%s%d", base, e.Bonus)
	default:
		return base
	}
}

// Roll rolls the expression with r
func (e Expression) Roll(r Roller) (*RollResult, error) {
	if e.Count == 0 {
		return NewRollResult(0, 0, e.Bonus, nil), nil
	}
	return r.Roll(e.Count, e.Sides, e.Bonus)
}

// RollString parses and rolls diceString in one step
func RollString(r Roller, diceString string) (*RollResult, error) {
	expr, err := ParseExpression(diceString)
	if err != nil {
		return nil, err
	}
	return expr.Roll(r)
}
