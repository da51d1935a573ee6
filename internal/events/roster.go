package events

import (
	"github.com/KirkDiggler/wilran/internal/entities"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
)

// MoveUsedEvent is emitted after a move has been resolved and its PP spent
type MoveUsedEvent struct {
	BaseEvent
	Slot   *entities.MoveSlot
	Result *attack.Result
}

// HPChange says how an HP adjustment was requested
type HPChange string

const (
	HPChangeSet    HPChange = "set"
	HPChangeHeal   HPChange = "heal"
	HPChangeDamage HPChange = "damage"
)

// HPChangedEvent is emitted after an HP adjustment, including ones that
// changed nothing
type HPChangedEvent struct {
	BaseEvent
	Change  HPChange
	Amount  int
	OldHP   int
	NewHP   int
	MaxHP   int
	Applied int
}

// PPResetEvent is emitted after every move slot is restored
type PPResetEvent struct {
	BaseEvent
}

// CheckRolledEvent is emitted after an ability check, save or skill check
type CheckRolledEvent struct {
	BaseEvent
	Result *attack.CheckResult
}

// RosterAction says what happened to the roster
type RosterAction string

const (
	RosterActionAdded   RosterAction = "added"
	RosterActionRemoved RosterAction = "removed"
)

// RosterChangedEvent is emitted when a record joins or leaves the roster
type RosterChangedEvent struct {
	BaseEvent
	Action RosterAction
}
