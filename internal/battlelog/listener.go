package battlelog

import (
	"context"
	"log"

	"github.com/KirkDiggler/wilran/internal/events"
)

// Listener renders roster events and forwards them to every sink
type Listener struct {
	id    string
	sinks []Sink
}

// NewListener creates a listener writing to sinks
func NewListener(id string, sinks ...Sink) *Listener {
	return &Listener{id: id, sinks: sinks}
}

// ID implements events.EventListener
func (l *Listener) ID() string { return l.id }

// Priority implements events.EventListener
func (l *Listener) Priority() int { return events.PriorityLogging }

// Subscribe registers the listener for every roster event on bus
func (l *Listener) Subscribe(bus *events.Bus) {
	bus.Subscribe(l, events.AllEventTypes...)
}

// HandleEvent renders the event and writes it to each sink. A failing sink
// is logged and does not stop the others.
func (l *Listener) HandleEvent(event events.Event) error {
	ctx := context.Background()

	message, ok := Render(event)
	if !ok {
		return nil
	}

	for _, sink := range l.sinks {
		if err := sink.Write(ctx, message); err != nil {
			log.Printf("BattleLog: sink write failed for %s: %v", event.GetType(), err)
		}
	}

	changed, isRoster := event.(*events.RosterChangedEvent)
	if !isRoster || changed.Action != events.RosterActionAdded {
		return nil
	}
	for _, sink := range l.sinks {
		rs, ok := sink.(RecordSink)
		if !ok {
			continue
		}
		if err := rs.WriteRecord(ctx, event.GetActor()); err != nil {
			log.Printf("BattleLog: record write failed for %s: %v", event.GetActor().ID, err)
		}
	}
	return nil
}

// Render turns a roster event into its battle log text. ok is false for
// events the log does not show.
func Render(event events.Event) (string, bool) {
	switch e := event.(type) {
	case *events.MoveUsedEvent:
		return FormatMessage(e.Result), true
	case *events.HPChangedEvent:
		return FormatHPChange(e), true
	case *events.PPResetEvent:
		return FormatPPReset(e), true
	case *events.CheckRolledEvent:
		return FormatCheckRoll(e.Result), true
	case *events.RosterChangedEvent:
		return FormatRosterChange(e), true
	default:
		return "", false
	}
}
