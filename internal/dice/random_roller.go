package dice

import (
	"errors"
	"math/rand/v2"
	"time"
)

// randomRoller implements Roller on top of a PCG generator
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(uint64(time.Now().UnixNano()))
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rng.IntN(sides) + 1
	}

	return NewRollResult(count, sides, bonus, rolls), nil
}

// Choose implements Roller.Choose
func (r *randomRoller) Choose(n int) (int, error) {
	if n < 1 {
		return 0, errors.New("cannot choose from an empty set")
	}
	return r.rng.IntN(n), nil
}
