package events

import (
	"github.com/KirkDiggler/wilran/internal/entities"
)

// EventType represents the type of roster event
type EventType string

// Event is the base interface for all roster events
type Event interface {
	GetType() EventType
	GetActor() *entities.Encounter
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Actor     *entities.Encounter
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType            { return e.Type }
func (e *BaseEvent) GetActor() *entities.Encounter { return e.Actor }
func (e *BaseEvent) IsCancelled() bool             { return e.Cancelled }
func (e *BaseEvent) Cancel()                       { e.Cancelled = true }
