package roster

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/wilran/internal/entities"
)

// InMemoryRepository keeps the roster in process memory. Records are cloned
// on the way in and out.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*entities.Encounter
}

// NewInMemoryRepository creates a new in-memory roster
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]*entities.Encounter),
	}
}

// Create stores a new record
func (r *InMemoryRepository) Create(_ context.Context, enc *entities.Encounter) error {
	if err := validate(enc); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[enc.ID]; exists {
		return errExists(enc.ID)
	}
	r.records[enc.ID] = enc.Clone()
	return nil
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Encounter, error) {
	if id == "" {
		return nil, errInvalid("record ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, exists := r.records[id]
	if !exists {
		return nil, errNotFound(id)
	}
	return enc.Clone(), nil
}

// List returns every record, oldest first
func (r *InMemoryRepository) List(_ context.Context) ([]*entities.Encounter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Encounter, 0, len(r.records))
	for _, enc := range r.records {
		out = append(out, enc.Clone())
	}
	sortRecords(out)
	return out, nil
}

// Update replaces an existing record
func (r *InMemoryRepository) Update(_ context.Context, enc *entities.Encounter) error {
	if err := validate(enc); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[enc.ID]; !exists {
		return errNotFound(enc.ID)
	}
	r.records[enc.ID] = enc.Clone()
	return nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return errInvalid("record ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return errNotFound(id)
	}
	delete(r.records, id)
	return nil
}

// sortRecords orders by creation time, then ID
func sortRecords(records []*entities.Encounter) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.Before(records[j].CreatedAt)
		}
		return records[i].ID < records[j].ID
	})
}
