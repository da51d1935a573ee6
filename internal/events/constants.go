package events

// Event type constants
const (
	EventTypeMoveUsed      EventType = "move_used"
	EventTypeHPChanged     EventType = "hp_changed"
	EventTypePPReset       EventType = "pp_reset"
	EventTypeCheckRolled   EventType = "check_rolled"
	EventTypeRosterChanged EventType = "roster_changed"
)

// AllEventTypes lists every event the roster emits
var AllEventTypes = []EventType{
	EventTypeMoveUsed,
	EventTypeHPChanged,
	EventTypePPReset,
	EventTypeCheckRolled,
	EventTypeRosterChanged,
}

// Priority levels for listener order
const (
	PriorityRules   = 100 // Listeners that may cancel or adjust an event
	PriorityLogging = 500 // Battle log output, after everything else
)
