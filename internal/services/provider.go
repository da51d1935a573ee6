package services

import (
	"github.com/KirkDiggler/wilran/internal/catalog"
	"github.com/KirkDiggler/wilran/internal/dice"
	"github.com/KirkDiggler/wilran/internal/events"
	rosterRepo "github.com/KirkDiggler/wilran/internal/repositories/roster"
	combatService "github.com/KirkDiggler/wilran/internal/services/combat"
	encounterService "github.com/KirkDiggler/wilran/internal/services/encounter"
	rosterService "github.com/KirkDiggler/wilran/internal/services/roster"
	"github.com/KirkDiggler/wilran/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	Catalog          *catalog.Catalog
	EventBus         *events.Bus
	CombatService    combatService.Service
	EncounterService encounterService.Service
	RosterService    rosterService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Catalog          *catalog.Catalog
	Roller           dice.Roller
	UUIDGenerator    uuid.Generator
	RosterRepository rosterRepo.Repository
	EventBus         *events.Bus
}

// NewProvider creates a new service provider with all services initialized.
// Every service shares one roller so a seeded run is reproducible end to end.
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	// Use in-memory repository if none provided
	repo := cfg.RosterRepository
	if repo == nil {
		repo = rosterRepo.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	combatSvc := combatService.NewService(&combatService.ServiceConfig{
		Moves:  cfg.Catalog,
		Roller: roller,
	})

	encounterSvc := encounterService.NewService(&encounterService.ServiceConfig{
		Catalog:       cfg.Catalog,
		Roller:        roller,
		UUIDGenerator: cfg.UUIDGenerator,
	})

	rosterSvc := rosterService.NewService(&rosterService.ServiceConfig{
		Repository: repo,
		Generator:  encounterSvc,
		Combat:     combatSvc,
		EventBus:   bus,
	})

	return &Provider{
		Catalog:          cfg.Catalog,
		EventBus:         bus,
		CombatService:    combatSvc,
		EncounterService: encounterSvc,
		RosterService:    rosterSvc,
	}
}
