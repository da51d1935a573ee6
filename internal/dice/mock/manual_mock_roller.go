package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/wilran/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined
// results. Roll consumes one queued face per die; Choose consumes one queued
// index.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues one more result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queue
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Remaining reports how many queued results have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
	}

	return dice.NewRollResult(count, sides, bonus, rolls), nil
}

// Choose implements dice.Roller.Choose
func (m *ManualMockRoller) Choose(n int) (int, error) {
	idx, err := m.getNextRoll()
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("invalid choice %d for %d options", idx, n)
	}
	return idx, nil
}
