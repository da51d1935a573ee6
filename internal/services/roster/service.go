// Package roster manages the records in play: adding generated encounters,
// spending PP, adjusting HP and rolling checks. Every change is announced
// on the event bus for the battle log.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=mockrosterservice -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/KirkDiggler/wilran/internal/domain/rulebook/stats"
	"github.com/KirkDiggler/wilran/internal/entities"
	"github.com/KirkDiggler/wilran/internal/entities/attack"
	dnderr "github.com/KirkDiggler/wilran/internal/errors"
	"github.com/KirkDiggler/wilran/internal/events"
	rosterRepo "github.com/KirkDiggler/wilran/internal/repositories/roster"
	"github.com/KirkDiggler/wilran/internal/services/combat"
	"github.com/KirkDiggler/wilran/internal/services/encounter"
)

// Service manages the active roster
type Service interface {
	// Add generates a record in areaName and stores it
	Add(ctx context.Context, areaName string) (*entities.Encounter, error)

	// Save stores an already generated record
	Save(ctx context.Context, enc *entities.Encounter) error

	// List returns every record, oldest first
	List(ctx context.Context) ([]*entities.Encounter, error)

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*entities.Encounter, error)

	// Remove drops a record from the roster
	Remove(ctx context.Context, id string) error

	// UseMove spends one PP of move and resolves it. A move at 0 PP is
	// rejected with a validation error and nothing is rolled.
	UseMove(ctx context.Context, id, move string) (*UseMoveResult, error)

	// ResetPP restores every move of the record to full PP
	ResetPP(ctx context.Context, id string) (*entities.Encounter, error)

	// AdjustHP applies "=X", "+X", "-X" or a bare "X" to current HP
	AdjustHP(ctx context.Context, id, input string) (*HPResult, error)

	// RollCheck rolls an ability check, saving throw or skill check
	RollCheck(ctx context.Context, id string, input *combat.CheckInput) (*attack.CheckResult, error)

	// SetAbilityScores replaces the scores with those read from a sheet
	SetAbilityScores(ctx context.Context, id, sheet string) (*entities.Encounter, error)
}

// UseMoveResult is a resolved move use
type UseMoveResult struct {
	Record *entities.Encounter
	Slot   *entities.MoveSlot
	Result *attack.Result
}

// HPResult is an applied HP adjustment
type HPResult struct {
	Record  *entities.Encounter
	Change  events.HPChange
	Amount  int
	OldHP   int
	Applied int
}

type service struct {
	repository rosterRepo.Repository
	generator  encounter.Service
	combat     combat.Service
	bus        *events.Bus

	// serializes read-modify-write cycles on records
	mu sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository rosterRepo.Repository
	Generator  encounter.Service
	Combat     combat.Service
	EventBus   *events.Bus
}

// NewService creates a new roster service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Generator == nil {
		panic("encounter generator is required")
	}
	if cfg.Combat == nil {
		panic("combat service is required")
	}

	return &service{
		repository: cfg.Repository,
		generator:  cfg.Generator,
		combat:     cfg.Combat,
		bus:        cfg.EventBus,
	}
}

// Add generates a record and stores it
func (s *service) Add(ctx context.Context, areaName string) (*entities.Encounter, error) {
	enc, err := s.generator.GenerateInArea(ctx, areaName)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to generate encounter in %s", areaName)
	}

	if err := s.Save(ctx, enc); err != nil {
		return nil, err
	}
	return enc, nil
}

// Save stores a record and announces it
func (s *service) Save(ctx context.Context, enc *entities.Encounter) error {
	if err := s.repository.Create(ctx, enc); err != nil {
		return dnderr.Wrap(err, "failed to add record to roster")
	}

	log.Printf("Roster: added %s (%s)", enc.Name, enc.ID)
	s.emit(&events.RosterChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeRosterChanged, Actor: enc},
		Action:    events.RosterActionAdded,
	})
	return nil
}

// List returns every record
func (s *service) List(ctx context.Context) ([]*entities.Encounter, error) {
	return s.repository.List(ctx)
}

// Get retrieves a record by ID
func (s *service) Get(ctx context.Context, id string) (*entities.Encounter, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("record ID is required")
	}
	return s.repository.Get(ctx, id)
}

// Remove drops a record and announces it
func (s *service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return dnderr.Wrapf(err, "failed to remove record %s", id)
	}

	log.Printf("Roster: removed %s (%s)", enc.Name, enc.ID)
	s.emit(&events.RosterChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeRosterChanged, Actor: enc},
		Action:    events.RosterActionRemoved,
	})
	return nil
}

// UseMove spends PP first and then resolves the move. Resolution failures
// are reported through the result kind, not as errors, so the PP stays
// spent.
func (s *service) UseMove(ctx context.Context, id, move string) (*UseMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	slot := enc.FindMove(move)
	if slot == nil {
		return nil, dnderr.NotFoundf("%s does not know %s", enc.Name, move).
			WithMeta("record_id", id).
			WithMeta("move", move)
	}

	if !enc.SpendPP(slot.Key) {
		return nil, dnderr.Validationf("%s has no PP left for %s", enc.Name, slot.Name).
			WithMeta("record_id", id).
			WithMeta("move", slot.Key)
	}

	result := s.combat.ResolveAttack(ctx, enc, slot.Key)

	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save PP for %s", enc.Name)
	}

	log.Printf("Roster: %s used %s (%d/%d PP left), result %s", enc.Name, slot.Name, slot.PP, slot.MaxPP, result.Kind)
	s.emit(&events.MoveUsedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeMoveUsed, Actor: enc},
		Slot:      slot,
		Result:    result,
	})

	return &UseMoveResult{Record: enc, Slot: slot, Result: result}, nil
}

// ResetPP restores every move to full PP
func (s *service) ResetPP(ctx context.Context, id string) (*entities.Encounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	enc.ResetPP()
	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrapf(err, "failed to reset PP for %s", enc.Name)
	}

	s.emit(&events.PPResetEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypePPReset, Actor: enc},
	})
	return enc, nil
}

// AdjustHP parses input and applies it, clamping to [0, max]
func (s *service) AdjustHP(ctx context.Context, id, input string) (*HPResult, error) {
	change, amount, err := ParseHPInput(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	res := &HPResult{Record: enc, Change: change, Amount: amount, OldHP: enc.CurrentHP}
	switch change {
	case events.HPChangeHeal:
		res.Applied = enc.Heal(amount)
	case events.HPChangeDamage:
		res.Applied = enc.TakeDamage(amount)
	default:
		res.Applied = enc.SetHP(amount)
	}

	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save HP for %s", enc.Name)
	}

	s.emit(&events.HPChangedEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeHPChanged, Actor: enc},
		Change:    res.Change,
		Amount:    res.Amount,
		OldHP:     res.OldHP,
		NewHP:     enc.CurrentHP,
		MaxHP:     enc.MaxHP,
		Applied:   res.Applied,
	})
	return res, nil
}

// ParseHPInput reads "=X" (set), "+X" (heal), "-X" (damage) or a bare "X"
// (set). X must be a non-negative integer.
func ParseHPInput(input string) (events.HPChange, int, error) {
	text := strings.TrimSpace(input)

	change := events.HPChangeSet
	digits := text
	switch {
	case strings.HasPrefix(text, "="):
		digits = text[1:]
	case strings.HasPrefix(text, "+"):
		change = events.HPChangeHeal
		digits = text[1:]
	case strings.HasPrefix(text, "-"):
		change = events.HPChangeDamage
		digits = text[1:]
	}

	amount, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || amount < 0 {
		return "", 0, dnderr.Validation(InvalidHPInputMessage(input))
	}
	return change, amount, nil
}

// InvalidHPInputMessage is the log line for unreadable HP input
func InvalidHPInputMessage(input string) string {
	return fmt.Sprintf("Invalid HP input: '%s'. Use +X, -X, or =X format.", input)
}

// RollCheck rolls a d20 check for the record
func (s *service) RollCheck(ctx context.Context, id string, input *combat.CheckInput) (*attack.CheckResult, error) {
	enc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.combat.RollCheck(ctx, enc, input)
	if err != nil {
		return nil, err
	}

	s.emit(&events.CheckRolledEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeCheckRolled, Actor: enc},
		Result:    result,
	})
	return result, nil
}

// SetAbilityScores reads sheet with stats.ParseAbilityScores and stores
// the result. HP and proficiency are left as they are.
func (s *service) SetAbilityScores(ctx context.Context, id, sheet string) (*entities.Encounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	enc.AbilityScores = stats.ParseAbilityScores(sheet)
	if err := s.repository.Update(ctx, enc); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save ability scores for %s", enc.Name)
	}

	log.Printf("Roster: updated ability scores of %s (%s)", enc.Name, enc.ID)
	return enc, nil
}

// emit publishes event when a bus is configured. Listener failures are
// logged; the record change has already been saved.
func (s *service) emit(event events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(event); err != nil {
		log.Printf("Roster: failed to emit %s: %v", event.GetType(), err)
	}
}
