// Package roster stores the active encounter records of a session.
package roster

//go:generate mockgen -destination=mock/mock_repository.go -package=mockroster -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/wilran/internal/entities"
)

// Repository defines the interface for roster persistence
type Repository interface {
	// Create stores a new record
	Create(ctx context.Context, enc *entities.Encounter) error

	// Get retrieves a record by ID
	Get(ctx context.Context, id string) (*entities.Encounter, error)

	// List returns every record, oldest first
	List(ctx context.Context) ([]*entities.Encounter, error)

	// Update replaces an existing record
	Update(ctx context.Context, enc *entities.Encounter) error

	// Delete removes a record
	Delete(ctx context.Context, id string) error
}

func validate(enc *entities.Encounter) error {
	if enc == nil {
		return errInvalid("record cannot be nil")
	}
	if enc.ID == "" {
		return errInvalid("record ID is required")
	}
	return nil
}
