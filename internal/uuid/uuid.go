// Package uuid generates roster record IDs behind a mockable interface.
package uuid

//go:generate mockgen -destination=mock/mock_uuid.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// ShortLength is the length of IDs from the short generator
const ShortLength = 8

// Generator is an interface for generating record IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator returns full random UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ShortGenerator returns the first ShortLength hex digits of a random UUID,
// short enough to type at a prompt
type ShortGenerator struct{}

// New generates a short ID
func (g *ShortGenerator) New() string {
	return uuid.New().String()[:ShortLength]
}

// NewShortGenerator creates a new ShortGenerator
func NewShortGenerator() *ShortGenerator {
	return &ShortGenerator{}
}
