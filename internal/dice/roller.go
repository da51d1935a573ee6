package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the one source of randomness shared by stat generation,
// encounter generation and combat resolution. Inject a seeded or mocked
// implementation to make every decision reproducible.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// Choose returns a uniformly distributed index in [0, n)
	Choose(n int) (int, error)
}

// RollResult is the outcome of a single Roll call
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
	IsCrit   bool
	IsFumble bool
}

// NewRollResult totals rolls and flags natural 20 / natural 1 on a lone d20.
func NewRollResult(count, sides, bonus int, rolls []int) *RollResult {
	rawTotal := 0
	for _, roll := range rolls {
		rawTotal += roll
	}

	result := &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}

	if count == 1 && sides == 20 && len(rolls) == 1 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}

	return result
}
